// Package parser implements the SLR(1) driver: a stack-based shift/reduce
// loop over internal/slrtable's Action/Goto tables, with the closed set
// of eight numbered error-recovery policies from spec §4.5 layered onto
// the table's error cells.
package parser

import (
	"fmt"

	"github.com/lferreira-dev/analisador/internal/diagnostics"
	"github.com/lferreira-dev/analisador/internal/grammar"
	"github.com/lferreira-dev/analisador/internal/lexis"
	"github.com/lferreira-dev/analisador/internal/slrtable"
	"github.com/lferreira-dev/analisador/internal/util"
)

// DefaultMaxRecoverableErrors is the cap named in spec §4.5: once this
// many recoverable (codes 1-6) errors have been applied in a single
// parse, any further E(*) aborts the parse. It is a field on Parser, not
// a package-level counter — the reference implementation's use of a
// process-static counter is exactly the bug spec §9 calls out to fix.
const DefaultMaxRecoverableErrors = 100

// tokenSource is the minimal surface the parser needs from a scanner:
// a filtered token stream plus a cursor position for diagnostics.
type tokenSource interface {
	SafeScan() lexis.Token
	Pos() diagnostics.Position
}

// Result is what a completed Parse returns.
type Result struct {
	Accepted    bool
	Reductions  []string // one "LHS -> RHS" line per reduction, in application order
	Diagnostics []diagnostics.Diagnostic
}

// Parser drives the shift/reduce loop. A Parser is single-use: construct
// one per parse via New, call Parse once.
type Parser struct {
	table  *slrtable.Table
	gram   *grammar.Grammar
	diags  diagnostics.Bag
	buffer util.Stack[lexis.Token]
	trace  []string

	maxRecoverable   int
	recoverableCount int
}

// New returns a Parser over the given grammar and table, with the default
// recoverable-error cap.
func New(gram *grammar.Grammar, table *slrtable.Table) *Parser {
	return &Parser{
		gram:           gram,
		table:          table,
		maxRecoverable: DefaultMaxRecoverableErrors,
	}
}

// WithMaxRecoverableErrors overrides the recoverable-error cap (config's
// MaxRecoverableErrors, when set).
func (p *Parser) WithMaxRecoverableErrors(n int) *Parser {
	p.maxRecoverable = n
	return p
}

// Diagnostics returns the syntactic diagnostics recorded so far.
func (p *Parser) Diagnostics() []diagnostics.Diagnostic {
	return p.diags.All()
}

// next draws the parser's next look-ahead token: from its own buffer if
// non-empty, otherwise from the scanner.
func (p *Parser) next(src tokenSource) lexis.Token {
	if !p.buffer.Empty() {
		return p.buffer.Pop()
	}
	return src.SafeScan()
}

// Parse runs the shift/reduce loop to completion (Accept, or a fatal
// abort) and returns the outcome.
func (p *Parser) Parse(src tokenSource) Result {
	states := util.Stack[int]{Of: []int{p.table.Initial()}}

	a := p.next(src)

	for {
		s := states.Peek()
		act := p.table.Action(s, string(a.Class))

		switch act.Kind {
		case slrtable.ActionShift:
			states.Push(act.State)
			a = p.next(src)

		case slrtable.ActionReduce:
			rule := p.gram.Rule(act.Rule)
			for i := 0; i < len(rule.Right); i++ {
				states.Pop()
			}
			top := states.Peek()
			next, ok := p.table.Goto(top, rule.Left.Text)
			if !ok {
				// the grammar guarantees Goto is defined for any
				// (top, A) reachable by a valid reduction; reaching
				// here means the tables and grammar drifted apart.
				return p.fatal(fmt.Sprintf("no goto defined for state %d on %q", top, rule.Left.Text), src)
			}
			states.Push(next)
			p.trace = append(p.trace, rule.String())

		case slrtable.ActionAccept:
			// Acc on eof is the reduction by the augmented start rule 0.
			p.trace = append(p.trace, p.gram.Rule(0).String())
			return Result{Accepted: true, Reductions: p.trace, Diagnostics: p.diags.All()}

		case slrtable.ActionError:
			cont, nextTok := p.recover(act.Code, a, src)
			if !cont {
				return Result{Accepted: false, Reductions: p.trace, Diagnostics: p.diags.All()}
			}
			a = nextTok
		}
	}
}

func (p *Parser) fatal(msg string, src tokenSource) Result {
	p.diags.Add(diagnostics.New(diagnostics.StageSyntax, 0, msg, src.Pos(), true))
	return Result{Accepted: false, Reductions: p.trace, Diagnostics: p.diags.All()}
}
