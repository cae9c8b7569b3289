// Package symtab holds the canonical store of identifiers and reserved
// words consulted by the scanner during token assembly.
package symtab

import "github.com/lferreira-dev/analisador/internal/lexis"

// Table is a mapping from lexeme to the Token on record for it. It is
// pre-seeded at construction with the language's reserved words and is
// otherwise grown by the scanner as new identifiers are encountered.
//
// Table is not safe for concurrent use; the scanner is its only writer
// and nothing reads it while a scan is in progress.
type Table struct {
	entries map[string]lexis.Token
}

// New returns a Table pre-seeded with the fourteen reserved words.
func New() *Table {
	t := &Table{entries: make(map[string]lexis.Token, len(lexis.ReservedWords)*2)}
	t.seedReservedWords()
	return t
}

func (t *Table) seedReservedWords() {
	for _, word := range lexis.ReservedWords {
		class, _ := lexis.ClassOfReserved(word)
		wordType, _ := lexis.TypeOfReserved(word)
		t.entries[word] = lexis.Token{Class: class, Lexeme: word, Type: wordType}
	}
}

// Get returns the Token stored for lexeme and whether one was found.
func (t *Table) Get(lexeme string) (lexis.Token, bool) {
	tok, ok := t.entries[lexeme]
	return tok, ok
}

// Insert unconditionally stores tok under lexeme, replacing any existing
// entry.
func (t *Table) Insert(lexeme string, tok lexis.Token) {
	t.entries[lexeme] = tok
}

// Update overwrites the entry for lexeme only if it already exists. It
// reports whether an entry was found and updated.
func (t *Table) Update(lexeme string, tok lexis.Token) bool {
	if _, ok := t.entries[lexeme]; !ok {
		return false
	}
	t.entries[lexeme] = tok
	return true
}

// Len returns the number of entries currently stored, including the
// pre-seeded reserved words.
func (t *Table) Len() int {
	return len(t.entries)
}

// Each calls fn once per entry. Iteration order is unspecified, matching
// the underlying map.
func (t *Table) Each(fn func(lexeme string, tok lexis.Token)) {
	for lexeme, tok := range t.entries {
		fn(lexeme, tok)
	}
}
