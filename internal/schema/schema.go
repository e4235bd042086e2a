// Package schema defines the structural contract of each artifact type: its
// ordered required H2 headings, the optional headings it may carry after its
// anchor, its strictness, and the template and agent files that produce it.
package schema

import (
	"strings"

	"github.com/jonathan-vella/rebel-ops/internal/diag"
	"github.com/jonathan-vella/rebel-ops/internal/markdown"
)

// Strictness selects how hard an instance check fails.
type Strictness string

const (
	// StrictnessStandard turns missing required headings into errors and
	// reports unrecognized headings.
	StrictnessStandard Strictness = "standard"
	// StrictnessRelaxed downgrades missing required headings to warnings.
	StrictnessRelaxed Strictness = "relaxed"
)

// IsStandard reports whether s is exactly the standard level. Any other value,
// including unknown tags passed through from the environment, behaves as
// relaxed.
func (s Strictness) IsStandard() bool {
	return s == StrictnessStandard
}

// ResolveStrictness returns the strictness that applies to one check. A
// non-empty override wins, then the schema's own level, then relaxed.
func ResolveStrictness(override Strictness, s ArtifactSchema) Strictness {
	if override != "" {
		return override
	}
	if s.Strictness != "" {
		return s.Strictness
	}
	return StrictnessRelaxed
}

// Titles used to label diagnostics.
const (
	TitleTemplateDrift  = "Artifact Template Drift"
	TitleMissingFile    = "Missing Template or Agent"
	TitleCostDrift      = "Cost Estimate Drift"
	TitleMissingAsBuilt = "Missing As-Built Examples"
)

// DefaultSkeletonThreshold is how many schema headings inside one fenced block
// mark it as an embedded skeleton.
const DefaultSkeletonThreshold = 3

// Marker is a literal that a template must contain verbatim.
type Marker struct {
	Literal     string `yaml:"literal" validate:"required"`
	Description string `yaml:"description" validate:"required"`
}

// ArtifactSchema is the contract for one artifact type. Name is the filename
// suffix that identifies instances of the type.
type ArtifactSchema struct {
	Name             string     `yaml:"name" validate:"required,endswith=.md"`
	RequiredHeadings []string   `yaml:"required" validate:"required,min=1,unique,dive,h2"`
	OptionalHeadings []string   `yaml:"optional,omitempty" validate:"omitempty,unique,dive,h2"`
	Strictness       Strictness `yaml:"strictness,omitempty" validate:"omitempty,oneof=standard relaxed"`
	TemplatePath     string     `yaml:"template" validate:"required"`
	AgentPath        string     `yaml:"agent,omitempty"`

	DriftTitle        string   `yaml:"drift_title,omitempty"`
	MissingTitle      string   `yaml:"missing_title,omitempty"`
	RequiredMarkers   []Marker `yaml:"required_markers,omitempty" validate:"dive"`
	SkeletonNeedles   []string `yaml:"skeleton_needles,omitempty" validate:"dive,required"`
	SkeletonThreshold int      `yaml:"skeleton_threshold,omitempty" validate:"omitempty,min=1"`
	ForbiddenPhrases  []string `yaml:"forbidden_phrases,omitempty" validate:"dive,required"`
	ExampleTitle      string   `yaml:"example_title,omitempty"`
}

// Anchor returns the last required heading. Optional headings belong after it.
func (s ArtifactSchema) Anchor() string {
	if len(s.RequiredHeadings) == 0 {
		return ""
	}
	return s.RequiredHeadings[len(s.RequiredHeadings)-1]
}

// IsRequired reports whether heading is one of the required headings.
func (s ArtifactSchema) IsRequired(heading string) bool {
	return contains(s.RequiredHeadings, heading)
}

// IsOptional reports whether heading is on the optional allow-list.
func (s ArtifactSchema) IsOptional(heading string) bool {
	return contains(s.OptionalHeadings, heading)
}

// IsAllowed reports whether heading is required or optional.
func (s ArtifactSchema) IsAllowed(heading string) bool {
	return s.IsRequired(heading) || s.IsOptional(heading)
}

// Matches reports whether filename ends with the schema name.
func (s ArtifactSchema) Matches(filename string) bool {
	return strings.HasSuffix(filename, s.Name)
}

// Drift returns the diagnostic title for structural drift.
func (s ArtifactSchema) Drift() string {
	if s.DriftTitle != "" {
		return s.DriftTitle
	}
	return TitleTemplateDrift
}

// Missing returns the diagnostic title for a missing agent file.
func (s ArtifactSchema) Missing() string {
	if s.MissingTitle != "" {
		return s.MissingTitle
	}
	return TitleMissingFile
}

// Needles returns the strings searched for inside agent fenced blocks.
func (s ArtifactSchema) Needles() []string {
	if len(s.SkeletonNeedles) > 0 {
		return s.SkeletonNeedles
	}
	return s.RequiredHeadings
}

// Threshold returns how many needles one fenced block may hold before it
// counts as an embedded skeleton.
func (s ArtifactSchema) Threshold() int {
	if s.SkeletonThreshold > 0 {
		return s.SkeletonThreshold
	}
	return DefaultSkeletonThreshold
}

// StandardsDoc is a reference document that must point authors at the
// templates.
type StandardsDoc struct {
	Path         string     `yaml:"path" validate:"required"`
	Title        string     `yaml:"title,omitempty"`
	MissingTitle string     `yaml:"missing_title,omitempty"`
	MissingLevel diag.Level `yaml:"missing_level" validate:"required,oneof=warning error"`
	RefLevel     diag.Level `yaml:"ref_level" validate:"required,oneof=warning error"`
	RequiredRefs []string   `yaml:"required_refs,omitempty" validate:"dive,required"`
	AnyOf        []string   `yaml:"any_of,omitempty" validate:"dive,required"`
	AnyOfTopic   string     `yaml:"any_of_topic,omitempty"`
}

// Drift returns the diagnostic title for reference problems.
func (d StandardsDoc) Drift() string {
	if d.Title != "" {
		return d.Title
	}
	return TitleTemplateDrift
}

// Missing returns the diagnostic title for a missing standards file.
func (d StandardsDoc) Missing() string {
	if d.MissingTitle != "" {
		return d.MissingTitle
	}
	return d.Drift()
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func isH2(s string) bool {
	return strings.HasPrefix(s, markdown.H2Prefix) && strings.TrimSpace(s) == s
}
