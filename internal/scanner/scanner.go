// Package scanner implements the lexical analyser: it drives the afd state
// machine rune by rune over a source reader and assembles the recognised
// runs into lexis.Tokens, recording a symtab entry for every identifier it
// meets along the way.
package scanner

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lferreira-dev/analisador/internal/diagnostics"
	"github.com/lferreira-dev/analisador/internal/lexis"
	"github.com/lferreira-dev/analisador/internal/symtab"
)

// Scanner reads runes from an underlying source and produces Tokens on
// demand. A Scanner owns exactly one symtab.Table, shared with anything
// that later wants to print the program's symbol table.
type Scanner struct {
	r      *bufio.Reader
	table  *symtab.Table
	diags  *diagnostics.Bag
	line   int
	col    int
	peeked bool
	peekR  rune
	atEOF  bool
}

// New returns a Scanner reading from r, with a freshly seeded symbol table.
func New(r io.Reader) *Scanner {
	return &Scanner{
		r:     bufio.NewReader(r),
		table: symtab.New(),
		diags: &diagnostics.Bag{},
		line:  1,
		col:   0,
	}
}

// NewWithTable is like New but lets the caller supply a pre-existing symbol
// table, used by tooling that wants to scan more than one source into a
// shared table.
func NewWithTable(r io.Reader, table *symtab.Table) *Scanner {
	s := New(r)
	s.table = table
	return s
}

// SymbolTable returns the table the scanner has been populating.
func (s *Scanner) SymbolTable() *symtab.Table {
	return s.table
}

// Pos returns the scanner's current cursor position, used by the parser
// to tag syntactic diagnostics with a (line, column) location.
func (s *Scanner) Pos() diagnostics.Position {
	return diagnostics.Position{Line: s.line, Column: s.col}
}

// Diagnostics returns every lexical error recorded so far.
func (s *Scanner) Diagnostics() *diagnostics.Bag {
	return s.diags
}

// readRune returns the next input rune, or ok=false at end of input. It
// tracks line/column for diagnostic messages and honors a single rune of
// pushback for the automaton's GoBack action.
func (s *Scanner) readRune() (rune, bool) {
	if s.peeked {
		s.peeked = false
		return s.advancePos(s.peekR), true
	}
	if s.atEOF {
		return 0, false
	}

	c, _, err := s.r.ReadRune()
	if err != nil {
		s.atEOF = true
		return 0, false
	}

	return s.advancePos(c), true
}

func (s *Scanner) advancePos(c rune) rune {
	if c == '\n' {
		s.line++
		s.col = 0
	} else {
		s.col++
	}
	return c
}

// pushBack rewinds the cursor by one rune, implementing the automaton's
// GoBack action; the rewound rune will be re-read (and re-counted into
// line/col) on the next readRune call.
func (s *Scanner) pushBack(c rune) {
	s.peeked = true
	s.peekR = c
	if c == '\n' {
		s.line--
	} else {
		s.col--
	}
}

// Scan reads and returns the next token, including lexical-error tokens.
// Use SafeScan to get a stream the parser can consume directly.
func (s *Scanner) Scan() lexis.Token {
	var lexeme []rune
	a := newAFD()

	for {
		c, ok := s.readRune()
		if !ok {
			break
		}

		pos := diagnostics.Position{Line: s.line, Column: s.col}
		a.advance(c)

		switch a.act {
		case actionGoBack:
			s.pushBack(c)
		case actionStandard:
			lexeme = append(lexeme, c)
		case actionClear:
			lexeme = lexeme[:0]
		case actionShowErrMessage:
			s.reportLexicalError(c, a.state, pos)
		case actionIdle:
			// whitespace consumed, nothing buffered
		}

		if a.done {
			return s.assembleToken(string(lexeme), a.state)
		}
	}

	// input ran out mid-token
	if len(lexeme) > 0 {
		switch a.state.kind {
		case stateAccept:
			return s.assembleToken(string(lexeme), a.state)
		case stateNonAccept:
			pos := diagnostics.Position{Line: s.line, Column: s.col}
			a.state = errState(6)
			s.reportLexicalError(0, a.state, pos)
			return s.assembleToken(string(lexeme), a.state)
		}
	}

	return lexis.Token{Class: lexis.ClassEOF, Lexeme: "EOF"}
}

// SafeScan is Scan filtered so that lexical-error tokens are never handed
// to a caller: each is recorded in Diagnostics and silently skipped, and
// scanning resumes with the next token. This mirrors the scanner-side
// wrapper the reference analyser uses to keep parse-time error reporting
// independent of lexical recovery.
func (s *Scanner) SafeScan() lexis.Token {
	for {
		tok := s.Scan()
		if !tok.IsError() {
			return tok
		}
		if tok.IsEOF() {
			return tok
		}
	}
}

var lexicalErrorMessages = map[int]string{
	0: "%q não pertence ao alfabeto",
	1: "%q não é início de nenhum token",
	2: "após um '.' em um [num] deve-se conter um dígito - %q foi encontrado",
	3: "após um 'e' ou 'E' em um [num] deve-se conter um dígito, um '+' ou um '-' - %q foi encontrado",
	4: "após um 'e+' ou 'E+' em um [num] deve-se conter um dígito - %q foi encontrado",
	5: "após um 'e-' ou 'E-' em um [num] deve-se conter um dígito - %q foi encontrado",
	6: "não foi encontrado o fechamento do comentário ou literal",
}

func (s *Scanner) reportLexicalError(c rune, st afdState, pos diagnostics.Position) {
	tmpl, ok := lexicalErrorMessages[st.code]
	if !ok {
		tmpl = "erro léxico desconhecido"
	}

	var msg string
	if st.code == 6 {
		msg = tmpl
	} else {
		msg = fmt.Sprintf(tmpl, string(c))
	}

	s.diags.Add(diagnostics.New(diagnostics.StageLexical, st.code, msg, pos, false))
}

// assembleToken maps a finished AFD state to the Token it denotes,
// consulting and updating the symbol table for identifiers.
func (s *Scanner) assembleToken(lexeme string, st afdState) lexis.Token {
	if st.kind == stateError {
		// error tokens carry no lexeme; the offending text was already
		// reported through Diagnostics at the point of failure.
		return lexis.Token{Class: lexis.ClassError}
	}

	switch st.code {
	case 1:
		return lexis.Token{Class: lexis.ClassNum, Lexeme: lexeme, Type: lexis.TypeInteiro}
	case 3, 6:
		return lexis.Token{Class: lexis.ClassNum, Lexeme: lexeme, Type: lexis.TypeReal}
	case 25:
		return lexis.Token{Class: lexis.ClassNum, Lexeme: lexeme, Type: lexis.TypeInteiro}
	case 8:
		return lexis.Token{Class: lexis.ClassLit, Lexeme: lexeme}
	case 9:
		if tok, ok := s.table.Get(lexeme); ok {
			return tok
		}
		tok := lexis.Token{Class: lexis.ClassID, Lexeme: lexeme}
		s.table.Insert(lexeme, tok)
		return tok
	case 13, 15, 16, 17:
		return lexis.Token{Class: lexis.ClassOpr, Lexeme: lexeme}
	case 14, 18:
		return lexis.Token{Class: lexis.ClassRcb, Lexeme: lexeme}
	case 19:
		return lexis.Token{Class: lexis.ClassOpm, Lexeme: lexeme}
	case 20:
		return lexis.Token{Class: lexis.ClassAbP, Lexeme: lexeme}
	case 21:
		return lexis.Token{Class: lexis.ClassFcP, Lexeme: lexeme}
	case 22:
		return lexis.Token{Class: lexis.ClassPtv, Lexeme: lexeme}
	case 23:
		return lexis.Token{Class: lexis.ClassVir, Lexeme: lexeme}
	default:
		return lexis.Token{Class: lexis.ClassError, Lexeme: lexeme}
	}
}
