package parser

import (
	"strings"
	"testing"

	"github.com/lferreira-dev/analisador/internal/diagnostics"
	"github.com/lferreira-dev/analisador/internal/grammar"
	"github.com/lferreira-dev/analisador/internal/lexis"
	"github.com/lferreira-dev/analisador/internal/scanner"
	"github.com/lferreira-dev/analisador/internal/slrtable"
	"github.com/stretchr/testify/assert"
)

func parse(t *testing.T, src string) Result {
	t.Helper()
	tab, err := slrtable.Load()
	if err != nil {
		t.Fatalf("slrtable.Load: %v", err)
	}
	p := New(grammar.New(), tab)
	s := scanner.New(strings.NewReader(src))
	return p.Parse(s)
}

func codes(diags []diagnostics.Diagnostic) []int {
	out := make([]int, len(diags))
	for i, d := range diags {
		out[i] = d.Code
	}
	return out
}

func Test_Parse_minimalValidProgram(t *testing.T) {
	assert := assert.New(t)

	res := parse(t, "inicio varinicio inteiro x ; varfim ; fim")

	assert.True(res.Accepted)
	assert.Empty(res.Diagnostics)
	assert.NotEmpty(res.Reductions)
	assert.Equal("P' -> P", res.Reductions[len(res.Reductions)-1])
}

func Test_Parse_missingSemicolon(t *testing.T) {
	assert := assert.New(t)

	res := parse(t, "inicio varinicio inteiro x varfim ; fim")

	assert.True(res.Accepted)
	assert.Equal([]int{2}, codes(res.Diagnostics))
}

func Test_Parse_doubleSemicolon(t *testing.T) {
	assert := assert.New(t)

	res := parse(t, "inicio varinicio inteiro x ;; varfim ; fim")

	assert.True(res.Accepted)
	assert.Equal([]int{3}, codes(res.Diagnostics))
}

func Test_Parse_tokensAfterFim(t *testing.T) {
	assert := assert.New(t)

	res := parse(t, `inicio varinicio inteiro x ; varfim ; fim escreva "a" ;`)

	assert.True(res.Accepted)
	assert.Equal([]int{1}, codes(res.Diagnostics))
}

func Test_Parse_missingOpenParenAfterSe(t *testing.T) {
	assert := assert.New(t)

	res := parse(t, "inicio varinicio inteiro x ; varfim ; se x > 1 ) entao fimse fim")

	assert.True(res.Accepted)
	assert.Equal([]int{6}, codes(res.Diagnostics))
}

func Test_Parse_emptyInputIsRejected(t *testing.T) {
	assert := assert.New(t)

	res := parse(t, "")

	assert.False(res.Accepted)
}

func Test_recover_code7IsFatalAndReportsOffender(t *testing.T) {
	assert := assert.New(t)

	tab, err := slrtable.Load()
	assert.NoError(err)

	p := New(grammar.New(), tab)
	s := scanner.New(strings.NewReader(""))

	cont, _ := p.recover(7, lexis.Token{Class: lexis.ClassOpm, Lexeme: "*"}, s)

	assert.False(cont)
	diags := p.Diagnostics()
	assert.Len(diags, 1)
	assert.True(diags[0].Fatal)
	assert.Equal(7, diags[0].Code)
}

func Test_recover_code8IsFatalAndReportsOffender(t *testing.T) {
	assert := assert.New(t)

	tab, err := slrtable.Load()
	assert.NoError(err)

	p := New(grammar.New(), tab)
	s := scanner.New(strings.NewReader(""))

	cont, _ := p.recover(8, lexis.Token{Class: lexis.ClassID, Lexeme: "y"}, s)

	assert.False(cont)
	diags := p.Diagnostics()
	assert.Len(diags, 1)
	assert.True(diags[0].Fatal)
	assert.Equal(8, diags[0].Code)
}

func Test_recover_code3DiscardsDuplicateAndContinues(t *testing.T) {
	assert := assert.New(t)

	tab, err := slrtable.Load()
	assert.NoError(err)

	p := New(grammar.New(), tab)
	s := scanner.New(strings.NewReader("x"))

	cont, next := p.recover(3, lexis.Token{Class: lexis.ClassPtv, Lexeme: ";"}, s)

	assert.True(cont)
	assert.True(p.buffer.Empty())
	assert.Equal(lexis.ClassID, next.Class)
}

func Test_recover_respectsMaxRecoverableErrors(t *testing.T) {
	assert := assert.New(t)

	tab, err := slrtable.Load()
	assert.NoError(err)

	p := New(grammar.New(), tab).WithMaxRecoverableErrors(1)
	s := scanner.New(strings.NewReader(""))

	cont, _ := p.recover(2, lexis.Token{Class: lexis.ClassID, Lexeme: "x"}, s)
	assert.True(cont)

	cont, _ = p.recover(2, lexis.Token{Class: lexis.ClassID, Lexeme: "y"}, s)
	assert.False(cont, "exceeding the cap should abort even on a recoverable code")
}
