package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan-vella/rebel-ops/internal/diag"
	"github.com/jonathan-vella/rebel-ops/internal/schema"
)

// ValidateStandards checks that each standards document exists and cites
// the references it is expected to carry.
func (c *Checker) ValidateStandards() (*diag.Result, error) {
	res := &diag.Result{}
	for _, doc := range c.registry.Standards() {
		r, err := c.validateStandardsDoc(doc)
		if err != nil {
			return nil, err
		}
		res.Merge(r)
	}
	return res, nil
}

func (c *Checker) validateStandardsDoc(doc schema.StandardsDoc) (*diag.Result, error) {
	res := &diag.Result{}

	if !c.exists(doc.Path) {
		res.Report(doc.MissingLevel, fmt.Sprintf("Standards file not found: %s", doc.Path),
			diag.Location{Title: doc.Missing(), File: doc.Path, Line: 1})
		return res, nil
	}

	text, err := c.readText(doc.Path)
	if err != nil {
		return nil, err
	}
	CheckStandardsDoc(text, doc, res)
	return res, nil
}

// CheckStandardsDoc applies the reference rules of doc to its text.
func CheckStandardsDoc(text string, doc schema.StandardsDoc, res *diag.Result) {
	loc := diag.Location{Title: doc.Drift(), File: doc.Path, Line: 1}

	for _, ref := range doc.RequiredRefs {
		if !strings.Contains(text, ref) {
			res.Report(doc.RefLevel, fmt.Sprintf("Standards file %s must reference %s", doc.Path, ref), loc)
		}
	}

	if len(doc.AnyOf) == 0 {
		return
	}
	for _, needle := range doc.AnyOf {
		if strings.Contains(text, needle) {
			return
		}
	}
	topic := doc.AnyOfTopic
	if topic == "" {
		topic = strings.Join(doc.AnyOf, " or ")
	}
	res.Report(doc.RefLevel, fmt.Sprintf("Standards file %s should reference %s", doc.Path, topic), loc)
}
