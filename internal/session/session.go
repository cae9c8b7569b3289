// Package session ties the scanner, parser, and symbol table together
// into the single report spec §6 describes a parse producing: a
// reduction trace, the lexical and syntactic diagnostics, and (on
// request) a symbol table dump.
package session

import (
	"io"

	"github.com/dekarrin/rezi"
	"github.com/dekarrin/rosed"
	"github.com/google/uuid"
	"github.com/lferreira-dev/analisador/internal/diagnostics"
	"github.com/lferreira-dev/analisador/internal/grammar"
	"github.com/lferreira-dev/analisador/internal/lexis"
	"github.com/lferreira-dev/analisador/internal/parser"
	"github.com/lferreira-dev/analisador/internal/scanner"
	"github.com/lferreira-dev/analisador/internal/slrtable"
)

// Session is one run of the front end over a single source. Its ID is a
// diagnostic label only — logs and the HTTP API use it to tell concurrent
// sessions apart — and never affects scanning or parsing.
type Session struct {
	ID uuid.UUID

	TokenTrace         []lexis.Token
	Result             parser.Result
	LexicalDiagnostics []diagnostics.Diagnostic
	symbolTable        []symbolEntry
}

// Diagnostics returns every diagnostic the session produced, lexical
// diagnostics first in the order the scanner raised them, followed by the
// parser's syntactic diagnostics — the full report spec §6 Outputs (c) and
// §7 call for.
func (s *Session) Diagnostics() []diagnostics.Diagnostic {
	all := make([]diagnostics.Diagnostic, 0, len(s.LexicalDiagnostics)+len(s.Result.Diagnostics))
	all = append(all, s.LexicalDiagnostics...)
	all = append(all, s.Result.Diagnostics...)
	return all
}

type symbolEntry struct {
	Lexeme string
	Class  lexis.Class
	Type   lexis.WordType
}

// Options configures a Run.
type Options struct {
	Grammar              *grammar.Grammar
	Table                *slrtable.Table
	MaxRecoverableErrors int
	CollectTokenTrace    bool
}

// tracingScanner wraps a *scanner.Scanner so every token the parser pulls
// through SafeScan is also recorded, reviving the per-token trace the
// reference main.rs has commented out.
type tracingScanner struct {
	*scanner.Scanner
	trace *[]lexis.Token
}

func (t tracingScanner) SafeScan() lexis.Token {
	tok := t.Scanner.SafeScan()
	*t.trace = append(*t.trace, tok)
	return tok
}

// Run scans and parses r to completion, returning the finished Session.
func Run(r io.Reader, opts Options) (*Session, error) {
	gram := opts.Grammar
	if gram == nil {
		gram = grammar.New()
	}

	tab := opts.Table
	if tab == nil {
		loaded, err := slrtable.Load()
		if err != nil {
			return nil, err
		}
		tab = loaded
	}

	scn := scanner.New(r)
	p := parser.New(gram, tab)
	if opts.MaxRecoverableErrors > 0 {
		p = p.WithMaxRecoverableErrors(opts.MaxRecoverableErrors)
	}

	sess := &Session{ID: uuid.New()}

	var src interface {
		SafeScan() lexis.Token
		Pos() diagnostics.Position
	}
	if opts.CollectTokenTrace {
		src = tracingScanner{Scanner: scn, trace: &sess.TokenTrace}
	} else {
		src = scn
	}

	sess.Result = p.Parse(src)
	sess.LexicalDiagnostics = scn.Diagnostics().All()

	scn.SymbolTable().Each(func(lexeme string, tok lexis.Token) {
		sess.symbolTable = append(sess.symbolTable, symbolEntry{Lexeme: lexeme, Class: tok.Class, Type: tok.Type})
	})

	return sess, nil
}

// SymbolTableReport renders the symbol table as a "Classe | Lexema | Tipo"
// table, matching the reference scanner's show_symbol_table in spirit.
func (s *Session) SymbolTableReport() string {
	rows := [][]string{{"Classe", "Lexema", "Tipo"}}
	for _, e := range s.symbolTable {
		rows = append(rows, []string{string(e.Class), e.Lexeme, string(e.Type)})
	}

	opts := rosed.Options{TableHeaders: true, NoTrailingLineSeparators: true}
	return rosed.Edit("").InsertTableOpts(0, rows, 100, opts).String()
}

// TraceReport renders the reduction trace, wrapped to a terminal-friendly
// width via rosed, the same way internal/game renders its debug tables.
func (s *Session) TraceReport() string {
	opts := rosed.Options{ParagraphSeparator: "\n", NoTrailingLineSeparators: true}
	return rosed.Edit(joinLines(s.Result.Reductions)).WithOptions(opts).String()
}

func joinLines(lines []string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}

// dumpRecord is the shape rezi encodes for Session.Dump.
type dumpRecord struct {
	Accepted    bool
	Reductions  []string
	Diagnostics []string
}

// Dump binary-encodes the session's outcome via rezi, for tooling that
// wants a compact artifact instead of the human-readable reports.
func (s *Session) Dump() []byte {
	rec := dumpRecord{Accepted: s.Result.Accepted, Reductions: s.Result.Reductions}
	for _, d := range s.Diagnostics() {
		rec.Diagnostics = append(rec.Diagnostics, d.Error())
	}
	return rezi.EncBinary(rec)
}
