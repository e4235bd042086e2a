package validation

import (
	"fmt"
	"path"

	"github.com/jonathan-vella/rebel-ops/internal/diag"
	"github.com/jonathan-vella/rebel-ops/internal/logging"
	"github.com/jonathan-vella/rebel-ops/internal/schema"
	"go.uber.org/zap"
)

// Observer receives progress from Run. StepFinished gets only the
// diagnostics produced by that step.
type Observer interface {
	StepStarted(number, total int, name string) error
	StepFinished(res *diag.Result) error
	Note(format string, args ...any)
}

// NopObserver discards all progress.
type NopObserver struct{}

func (NopObserver) StepStarted(int, int, string) error { return nil }
func (NopObserver) StepFinished(*diag.Result) error    { return nil }
func (NopObserver) Note(string, ...any)                {}

// Step is one stage of a full run.
type Step struct {
	Name string
	run  func(c *Checker, obs Observer) (*diag.Result, error)
}

// Steps returns the stages of a full run in execution order.
func (c *Checker) Steps() []Step {
	return []Step{
		{Name: "Validating templates", run: (*Checker).runTemplates},
		{Name: "Validating agent links", run: func(c *Checker, _ Observer) (*diag.Result, error) {
			return c.ValidateAgentLinks()
		}},
		{Name: "Checking for embedded skeletons", run: func(c *Checker, _ Observer) (*diag.Result, error) {
			return c.ValidateNoEmbeddedSkeletons()
		}},
		{Name: "Validating standards documentation", run: func(c *Checker, _ Observer) (*diag.Result, error) {
			return c.ValidateStandards()
		}},
		{Name: fmt.Sprintf("Validating artifacts in %s/", c.outputDir), run: (*Checker).runArtifacts},
	}
}

// Run executes every step in order and returns the merged result. An error
// is returned only for environment faults, and stops the run.
func (c *Checker) Run(obs Observer) (*diag.Result, error) {
	if obs == nil {
		obs = NopObserver{}
	}
	steps := c.Steps()
	total := &diag.Result{}
	for i, step := range steps {
		if err := obs.StepStarted(i+1, len(steps), step.Name); err != nil {
			return nil, err
		}
		c.log.Debug("running step", zap.Int(logging.FieldStep, i+1), zap.String("name", step.Name))

		res, err := step.run(c, obs)
		if err != nil {
			return nil, err
		}
		if err := obs.StepFinished(res); err != nil {
			return nil, err
		}
		total.Merge(res)
	}
	return total, nil
}

func (c *Checker) runTemplates(_ Observer) (*diag.Result, error) {
	res := &diag.Result{}
	for _, s := range c.registry.Schemas() {
		r, err := c.ValidateTemplate(s)
		if err != nil {
			return nil, err
		}
		res.Merge(r)
	}
	return res, nil
}

func (c *Checker) runArtifacts(obs Observer) (*diag.Result, error) {
	res := &diag.Result{}

	paths, err := c.DiscoverArtifacts()
	if err != nil {
		return nil, err
	}

	if len(paths) == 0 {
		res.Warn(fmt.Sprintf("No artifacts found in %s/ (expected for new workflow).", c.outputDir),
			diag.Location{Title: schema.TitleTemplateDrift})
	} else {
		obs.Note("Found %d artifacts to validate", len(paths))
		r, err := c.CheckFiles(paths)
		if err != nil {
			return nil, err
		}
		res.Merge(r)
	}

	res.Merge(c.checkExamples(paths))
	return res, nil
}

// CheckFiles validates each path as an artifact instance, in the order
// given.
func (c *Checker) CheckFiles(paths []string) (*diag.Result, error) {
	res := &diag.Result{}
	for _, p := range paths {
		r, err := c.ValidateInstance(p)
		if err != nil {
			return nil, err
		}
		res.Merge(r)
	}
	return res, nil
}

// checkExamples warns for every schema that expects at least one generated
// example when discovery found none. Examples must carry the schema name
// exactly; a prefixed file does not count.
func (c *Checker) checkExamples(paths []string) *diag.Result {
	res := &diag.Result{}
	for _, s := range c.registry.Schemas() {
		if s.ExampleTitle == "" {
			continue
		}
		found := false
		for _, p := range paths {
			if path.Base(p) == s.Name {
				found = true
				break
			}
		}
		if !found {
			res.Warn(fmt.Sprintf("No %s/**/%s examples found yet (warning-only).", c.outputDir, s.Name),
				diag.Location{Title: s.ExampleTitle})
		}
	}
	return res
}
