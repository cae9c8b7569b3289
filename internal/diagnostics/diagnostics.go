// Package diagnostics holds the error and message types shared by the
// scanner and the parser. It follows the wrapped-cause shape of the
// teacher repository's server/serr, adapted to carry a source position and one of
// the language's fixed numeric error codes instead of a free-form cause
// chain.
package diagnostics

import "fmt"

// Stage names which phase of the front end produced a Diagnostic.
type Stage string

const (
	StageLexical Stage = "lexico"
	StageSyntax  Stage = "sintatico"
)

// Position is a 1-based line/column pair pointing at the rune that
// triggered a diagnostic.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("Linha [%d] Coluna [%d]", p.Line, p.Column)
}

// Diagnostic is a single reported error. Code is one of the fixed codes
// named for its Stage: 0-6 for StageLexical, 0-8 for StageSyntax.
//
// Diagnostic should not be constructed directly outside this package and
// its two callers; use New.
type Diagnostic struct {
	Stage   Stage
	Code    int
	Message string
	Pos     Position
	Fatal   bool
}

// New builds a Diagnostic. Message should already contain any interpolated
// detail (the offending rune, the expected symbol); Error() appends the
// stage/code prefix and position suffix so callers don't repeat them.
func New(stage Stage, code int, message string, pos Position, fatal bool) Diagnostic {
	return Diagnostic{Stage: stage, Code: code, Message: message, Pos: pos, Fatal: fatal}
}

func (d Diagnostic) Error() string {
	label := "Erro Léxico"
	if d.Stage == StageSyntax {
		label = "Erro Sintático"
	}
	return fmt.Sprintf("%s %d: %s. %s", label, d.Code, d.Message, d.Pos)
}

// Bag accumulates Diagnostics produced over the course of a scan or parse.
// It is not safe for concurrent use; each scanner/parser instance owns one.
type Bag struct {
	items []Diagnostic
}

// Add records d and returns the running total of diagnostics in the bag.
func (b *Bag) Add(d Diagnostic) int {
	b.items = append(b.items, d)
	return len(b.items)
}

// Len returns how many diagnostics have been recorded.
func (b *Bag) Len() int {
	return len(b.items)
}

// All returns every recorded Diagnostic, in the order it was added.
func (b *Bag) All() []Diagnostic {
	return b.items
}

// HasFatal reports whether any recorded Diagnostic is fatal.
func (b *Bag) HasFatal() bool {
	for _, d := range b.items {
		if d.Fatal {
			return true
		}
	}
	return false
}
