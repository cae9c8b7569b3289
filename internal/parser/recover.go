package parser

import (
	"fmt"

	"github.com/lferreira-dev/analisador/internal/diagnostics"
	"github.com/lferreira-dev/analisador/internal/lexis"
	"github.com/lferreira-dev/analisador/internal/util"
)

func syntheticEOF() lexis.Token {
	return lexis.Token{Class: lexis.ClassEOF, Lexeme: "EOF"}
}

func syntheticSemicolon() lexis.Token {
	return lexis.Token{Class: lexis.ClassPtv, Lexeme: ";"}
}

func syntheticOpenParen() lexis.Token {
	return lexis.Token{Class: lexis.ClassAbP, Lexeme: "("}
}

// recover applies the numbered recovery policy for code against the
// current look-ahead a, per spec §4.5's table. It reports whether the
// parse should continue and, if so, the token to resume parsing with.
//
// Once the recoverable-error cap has been checked (exceeding it aborts
// before the buffer is touched), a is pushed into the buffer
// first (the same "push the current look-ahead into the buffer" step the
// outer loop performs for every E(*) action), then the policy adjusts the
// buffer from there — popping to discard, pushing a synthetic token, or
// clearing entirely.
func (p *Parser) recover(code int, a lexis.Token, src tokenSource) (bool, lexis.Token) {
	pos := src.Pos()

	if code >= 1 && code <= 6 && p.recoverableCount >= p.maxRecoverable {
		p.diags.Add(diagnostics.New(diagnostics.StageSyntax, code,
			fmt.Sprintf("recoverable error limit (%d) exceeded", p.maxRecoverable), pos, true))
		return false, lexis.Token{}
	}

	p.buffer.Push(a)

	switch code {
	case 1:
		p.buffer = util.Stack[lexis.Token]{}
		p.buffer.Push(syntheticEOF())
		p.reportRecoverable(code, "tokens found after 'fim'; discarding remainder of input", pos)
		return true, p.next(src)

	case 2:
		p.buffer.Push(syntheticSemicolon())
		p.reportRecoverable(code, "missing ';'; inserting one", pos)
		return true, p.next(src)

	case 3:
		p.buffer.Pop() // discard the duplicate ';' (the just-pushed a)
		p.reportRecoverable(code, "extraneous ';'; discarding it", pos)
		return true, p.next(src)

	case 4:
		offender := p.buffer.Pop()
		p.reportRecoverable(code, fmt.Sprintf("invalid token %q after ';'; discarding it", offender.Lexeme), pos)
		return true, p.next(src)

	case 5:
		offender := p.buffer.Pop()
		p.buffer.Push(syntheticOpenParen())
		p.reportRecoverable(code, fmt.Sprintf("expected '(' after 'se', found %q; discarding it and inserting '('", offender.Lexeme), pos)
		return true, p.next(src)

	case 6:
		p.buffer.Push(syntheticOpenParen())
		p.reportRecoverable(code, "missing '(' after 'se'; inserting one", pos)
		return true, p.next(src)

	case 7:
		p.diags.Add(diagnostics.New(diagnostics.StageSyntax, code,
			fmt.Sprintf("invalid token %q following an identifier", a.Lexeme), pos, true))
		return false, lexis.Token{}

	case 8:
		p.diags.Add(diagnostics.New(diagnostics.StageSyntax, code,
			fmt.Sprintf("invalid token %q following a number", a.Lexeme), pos, true))
		return false, lexis.Token{}

	default:
		p.diags.Add(diagnostics.New(diagnostics.StageSyntax, code,
			fmt.Sprintf("unexpected token %q", a.Lexeme), pos, true))
		return false, lexis.Token{}
	}
}

func (p *Parser) reportRecoverable(code int, msg string, pos diagnostics.Position) {
	p.diags.Add(diagnostics.New(diagnostics.StageSyntax, code, msg, pos, false))
	p.recoverableCount++
}
