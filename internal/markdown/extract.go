// Package markdown extracts the structural pieces of a Markdown document that
// artifact checks care about: level-2 headings and fenced code block bodies.
// Nothing else of Markdown is interpreted.
package markdown

import (
	"regexp"
	"strings"
	"unicode"
)

// H2Prefix is the marker that starts a level-2 heading line.
const H2Prefix = "## "

var (
	// lineSplit matches LF and CRLF line endings.
	lineSplit = regexp.MustCompile(`\r?\n`)
	// fenceOpenPattern matches an opening fence: three or more backticks,
	// optionally followed by an info string that contains no backticks.
	fenceOpenPattern = regexp.MustCompile("^(`{3,})[^`]*$")
)

// Lines splits text into lines on LF or CRLF boundaries.
func Lines(text string) []string {
	return lineSplit.Split(text, -1)
}

// ExtractH2Headings returns every level-2 heading line in document order,
// with trailing whitespace removed. Duplicates are kept.
func ExtractH2Headings(text string) []string {
	var headings []string
	for _, line := range Lines(text) {
		line = strings.TrimRightFunc(line, unicode.IsSpace)
		if strings.HasPrefix(line, H2Prefix) {
			headings = append(headings, line)
		}
	}
	return headings
}

// ExtractFencedBlocks returns the bodies of all terminated fenced code blocks.
// A fence closes on the first line that starts with the same backtick run
// that opened it. An unterminated fence at end of text yields no block.
func ExtractFencedBlocks(text string) []string {
	var (
		blocks  []string
		inFence bool
		fence   string
		current []string
	)

	for _, line := range Lines(text) {
		if !inFence {
			if m := fenceOpenPattern.FindStringSubmatch(line); m != nil {
				inFence = true
				fence = m[1]
				current = nil
			}
			continue
		}

		if strings.HasPrefix(line, fence) {
			blocks = append(blocks, strings.Join(current, "\n"))
			inFence = false
			fence = ""
			current = nil
			continue
		}

		current = append(current, line)
	}

	return blocks
}

// Document is a parsed view of a Markdown file.
type Document struct {
	Text     string
	Headings []string
}

// Parse extracts the headings of text once so callers can share them.
func Parse(text string) *Document {
	return &Document{
		Text:     text,
		Headings: ExtractH2Headings(text),
	}
}

// Index returns the position of the first occurrence of heading, or -1.
func (d *Document) Index(heading string) int {
	for i, h := range d.Headings {
		if h == heading {
			return i
		}
	}
	return -1
}

// Has reports whether heading appears in the document.
func (d *Document) Has(heading string) bool {
	return d.Index(heading) != -1
}

// FencedBlocks returns the fenced block bodies of the document.
func (d *Document) FencedBlocks() []string {
	return ExtractFencedBlocks(d.Text)
}
