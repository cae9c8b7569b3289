package symtab

import (
	"testing"

	"github.com/lferreira-dev/analisador/internal/lexis"
	"github.com/stretchr/testify/assert"
)

func Test_New_seedsReservedWords(t *testing.T) {
	assert := assert.New(t)

	tab := New()

	assert.Equal(len(lexis.ReservedWords), tab.Len())

	for _, word := range lexis.ReservedWords {
		tok, ok := tab.Get(word)
		assert.True(ok, "expected reserved word %q to be pre-seeded", word)

		wantClass, _ := lexis.ClassOfReserved(word)
		wantType, _ := lexis.TypeOfReserved(word)
		assert.Equal(wantClass, tok.Class)
		assert.Equal(wantType, tok.Type)
		assert.Equal(word, tok.Lexeme)
	}
}

func Test_Table_Insert_doesNotDuplicateReservedWord(t *testing.T) {
	assert := assert.New(t)

	tab := New()
	before := tab.Len()

	class, _ := lexis.ClassOfReserved("fim")
	tab.Insert("fim", lexis.Token{Class: class, Lexeme: "fim"})

	assert.Equal(before, tab.Len())
}

func Test_Table_Insert_addsNewIdentifier(t *testing.T) {
	assert := assert.New(t)

	tab := New()
	before := tab.Len()

	tab.Insert("contador", lexis.Token{Class: lexis.ClassID, Lexeme: "contador"})

	assert.Equal(before+1, tab.Len())

	tok, ok := tab.Get("contador")
	assert.True(ok)
	assert.Equal(lexis.ClassID, tok.Class)
}

func Test_Table_Update_onlyOverwritesExisting(t *testing.T) {
	assert := assert.New(t)

	tab := New()

	ok := tab.Update("naoexiste", lexis.Token{Class: lexis.ClassID, Lexeme: "naoexiste"})
	assert.False(ok)
	_, found := tab.Get("naoexiste")
	assert.False(found)

	tab.Insert("x", lexis.Token{Class: lexis.ClassID, Lexeme: "x"})
	ok = tab.Update("x", lexis.Token{Class: lexis.ClassID, Lexeme: "x", Type: lexis.TypeReal})
	assert.True(ok)

	tok, _ := tab.Get("x")
	assert.Equal(lexis.TypeReal, tok.Type)
}

func Test_Table_Get_missing(t *testing.T) {
	assert := assert.New(t)

	tab := New()
	_, ok := tab.Get("nunca_declarado")
	assert.False(ok)
}

func Test_buildingTwiceYieldsIdenticalMaps(t *testing.T) {
	assert := assert.New(t)

	a := New()
	b := New()

	assert.Equal(a.Len(), b.Len())
	a.Each(func(lexeme string, tok lexis.Token) {
		bTok, ok := b.Get(lexeme)
		assert.True(ok)
		assert.Equal(tok, bTok)
	})
}
