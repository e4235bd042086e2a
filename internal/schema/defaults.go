package schema

import "github.com/jonathan-vella/rebel-ops/internal/diag"

// Paths of the canonical files the default registry checks.
const (
	templatesDir = ".github/templates/"
	agentsDir    = ".github/agents/"

	AgentProjectPlanner  = agentsDir + "project-planner.agent.md"
	AgentArchitect       = agentsDir + "azure-principal-architect.agent.md"
	AgentBicepPlan       = agentsDir + "bicep-plan.agent.md"
	AgentBicepImplement  = agentsDir + "bicep-implement.agent.md"
	AgentDeploy          = agentsDir + "deploy.agent.md"
	AgentDocumentation   = agentsDir + "workload-documentation-generator.agent.md"
	MarkdownStandardsDoc = ".github/instructions/markdown.instructions.md"
	CostStandardsDoc     = ".github/instructions/cost-estimate.instructions.md"
	DesCostTemplate      = templatesDir + "03-des-cost-estimate.template.md"
	AsBuiltCostTemplate  = templatesDir + "07-ab-cost-estimate.template.md"
)

// CostMermaidInit is the themed pie chart init directive every cost template
// must carry verbatim.
const CostMermaidInit = "%%{init: {'theme':'base','themeVariables':{pie1:'#0078D4',pie2:'#107C10',pie3:'#5C2D91',pie4:'#D83B01',pie5:'#FFB900'}}}%%"

// CostPieShowData is the pie directive that renders values next to slices.
const CostPieShowData = "pie showData"

// CostHeadings is the core H2 contract shared by both cost estimate templates.
var CostHeadings = []string{
	"## 💰 Cost At-a-Glance",
	"## ✅ Decision Summary",
	"## 🔁 Requirements → Cost Mapping",
	"## 📊 Top 5 Cost Drivers",
	"## Architecture Overview",
	"## 🧾 What We Are Not Paying For (Yet)",
	"## ⚠️ Cost Risk Indicators",
	"## 🎯 Quick Decision Matrix",
	"## 💰 Savings Opportunities",
	"## Detailed Cost Breakdown",
}

func templatePathFor(name string) string {
	return templatesDir + name[:len(name)-len(".md")] + ".template.md"
}

func artifact(name string, strictness Strictness, agent string, required, optional []string) ArtifactSchema {
	return ArtifactSchema{
		Name:             name,
		RequiredHeadings: required,
		OptionalHeadings: optional,
		Strictness:       strictness,
		TemplatePath:     templatePathFor(name),
		AgentPath:        agent,
	}
}

func costArtifact(name, agent string) ArtifactSchema {
	return ArtifactSchema{
		Name:             name,
		RequiredHeadings: CostHeadings,
		TemplatePath:     templatePathFor(name),
		AgentPath:        agent,
		DriftTitle:       TitleCostDrift,
		MissingTitle:     TitleCostDrift,
		RequiredMarkers: []Marker{
			{Literal: CostMermaidInit, Description: "the required colored Mermaid pie init line"},
			{Literal: CostPieShowData, Description: "'pie showData' in the Mermaid pie section"},
		},
		SkeletonNeedles:   append([]string{"# Azure Cost Estimate:", "# As-Built Cost Estimate:"}, CostHeadings...),
		SkeletonThreshold: 1,
		ForbiddenPhrases:  []string{"Cost Estimate File Structure"},
	}
}

// DefaultSchemas returns the built-in artifact schemas.
func DefaultSchemas() []ArtifactSchema {
	asBuilt := costArtifact("07-ab-cost-estimate.md", AgentDocumentation)
	asBuilt.ExampleTitle = TitleMissingAsBuilt

	return []ArtifactSchema{
		artifact("01-requirements.md", StrictnessStandard, AgentProjectPlanner,
			[]string{
				"## Project Overview",
				"## Functional Requirements",
				"## Non-Functional Requirements (NFRs)",
				"## Compliance & Security Requirements",
				"## Budget",
				"## Operational Requirements",
				"## Regional Preferences",
			},
			[]string{"## Summary for Architecture Assessment"}),
		artifact("02-architecture-assessment.md", StrictnessStandard, AgentArchitect,
			[]string{
				"## Requirements Validation ✅",
				"## Executive Summary",
				"## WAF Pillar Assessment",
				"## Resource SKU Recommendations",
				"## Architecture Decision Summary",
				"## Implementation Handoff",
				"## Approval Gate",
			}, nil),
		artifact("04-implementation-plan.md", StrictnessStandard, AgentBicepPlan,
			[]string{
				"## Overview",
				"## Resource Inventory",
				"## Module Structure",
				"## Implementation Tasks",
				"## Dependency Graph",
				"## Naming Conventions",
				"## Security Configuration",
				"## Estimated Implementation Time",
				"## Approval Gate",
			}, nil),
		artifact("04-governance-constraints.md", StrictnessStandard, AgentBicepPlan,
			[]string{
				"## Azure Policy Compliance",
				"## Required Tags",
				"## Security Policies",
				"## Cost Policies",
				"## Network Policies",
			}, nil),
		artifact("06-deployment-summary.md", StrictnessStandard, AgentDeploy,
			[]string{
				"## Deployment Details",
				"## Deployed Resources",
				"## Outputs (Expected)",
				"## To Actually Deploy",
				"## Post-Deployment Tasks",
			}, nil),
		artifact("05-implementation-reference.md", StrictnessStandard, AgentBicepImplement,
			[]string{
				"## Bicep Templates Location",
				"## File Structure",
				"## Validation Status",
				"## Resources Created",
				"## Deployment Instructions",
			},
			[]string{"## Key Implementation Notes", "## Next Steps"}),
		artifact("07-design-document.md", StrictnessStandard, AgentDocumentation,
			[]string{
				"## 1. Introduction",
				"## 2. Azure Architecture Overview",
				"## 3. Networking",
				"## 4. Storage",
				"## 5. Compute",
				"## 6. Identity & Access",
				"## 7. Security & Compliance",
				"## 8. Backup & Disaster Recovery",
				"## 9. Management & Monitoring",
				"## 10. Appendix",
			}, nil),
		artifact("07-operations-runbook.md", StrictnessStandard, AgentDocumentation,
			[]string{
				"## Quick Reference",
				"## 1. Daily Operations",
				"## 2. Incident Response",
				"## 3. Common Procedures",
				"## 4. Maintenance Windows",
				"## 5. Contacts & Escalation",
				"## 6. Change Log",
			}, nil),
		artifact("07-resource-inventory.md", StrictnessStandard, AgentDocumentation,
			[]string{"## Summary", "## Resource Listing"},
			[]string{
				"## Resource Configuration Details",
				"## Tags Applied",
				"## Resource Dependencies",
				"## Cost Summary by Resource",
				"## Cost by Resource",
				"## Private DNS Zones",
				"## IP Address Allocation",
				"## Module Summary",
				"## Validation Commands",
			}),
		artifact("07-backup-dr-plan.md", StrictnessStandard, AgentDocumentation,
			[]string{
				"## Executive Summary",
				"## 1. Recovery Objectives",
				"## 2. Backup Strategy",
				"## 3. Disaster Recovery Procedures",
				"## 4. Testing Schedule",
				"## 5. Communication Plan",
				"## 6. Roles and Responsibilities",
				"## 7. Dependencies",
				"## 8. Recovery Runbooks",
				"## 9. Appendix",
			},
			[]string{"## 3. Disaster Recovery Architecture"}),
		artifact("07-compliance-matrix.md", StrictnessStandard, AgentDocumentation,
			[]string{
				"## Executive Summary",
				"## 1. Control Mapping",
				"## 2. Gap Analysis",
				"## 3. Evidence Collection",
				"## 4. Audit Trail",
				"## 5. Remediation Tracker",
				"## 6. Appendix",
			},
			[]string{"## Security Controls Summary"}),
		artifact("07-documentation-index.md", StrictnessStandard, AgentDocumentation,
			[]string{
				"## 1. Document Package Contents",
				"## 2. Source Artifacts",
				"## 3. Project Summary",
				"## 4. Related Resources",
				"## 5. Quick Links",
			},
			[]string{"## Architecture Overview"}),
		costArtifact("03-des-cost-estimate.md", AgentArchitect),
		asBuilt,
	}
}

// DefaultStandards returns the built-in standards documents.
func DefaultStandards() []StandardsDoc {
	return []StandardsDoc{
		{
			Path:         MarkdownStandardsDoc,
			MissingTitle: TitleMissingFile,
			MissingLevel: diag.LevelWarning,
			RefLevel:     diag.LevelWarning,
			AnyOf:        []string{"template", ".template.md"},
			AnyOfTopic:   "template-first approach",
		},
		{
			Path:         CostStandardsDoc,
			Title:        TitleCostDrift,
			MissingLevel: diag.LevelError,
			RefLevel:     diag.LevelError,
			RequiredRefs: []string{DesCostTemplate, AsBuiltCostTemplate},
		},
	}
}

// Default returns the built-in registry.
func Default() *Registry {
	return MustNew(DefaultSchemas(), DefaultStandards())
}
