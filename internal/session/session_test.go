package session

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Run_acceptsMinimalValidProgram(t *testing.T) {
	assert := assert.New(t)

	sess, err := Run(strings.NewReader("inicio varinicio inteiro x ; varfim ; fim"), Options{})
	assert.NoError(err)
	assert.True(sess.Result.Accepted)
	assert.NotEqual(sess.ID.String(), "00000000-0000-0000-0000-000000000000")
}

func Test_Run_collectsTokenTraceWhenRequested(t *testing.T) {
	assert := assert.New(t)

	sess, err := Run(strings.NewReader("inicio varinicio inteiro x ; varfim ; fim"), Options{CollectTokenTrace: true})
	assert.NoError(err)
	assert.NotEmpty(sess.TokenTrace)
	assert.True(sess.TokenTrace[len(sess.TokenTrace)-1].IsEOF())
}

func Test_Run_omitsTokenTraceByDefault(t *testing.T) {
	assert := assert.New(t)

	sess, err := Run(strings.NewReader("inicio varinicio inteiro x ; varfim ; fim"), Options{})
	assert.NoError(err)
	assert.Empty(sess.TokenTrace)
}

func Test_SymbolTableReport_listsDeclaredIdentifier(t *testing.T) {
	assert := assert.New(t)

	sess, err := Run(strings.NewReader("inicio varinicio inteiro x ; varfim ; fim"), Options{})
	assert.NoError(err)

	report := sess.SymbolTableReport()
	assert.Contains(report, "x")
}

func Test_Run_surfacesLexicalDiagnosticsEvenWhenParseAccepts(t *testing.T) {
	assert := assert.New(t)

	sess, err := Run(strings.NewReader("inicio # varinicio inteiro x ; varfim ; fim"), Options{})
	assert.NoError(err)
	assert.True(sess.Result.Accepted)
	assert.Empty(sess.Result.Diagnostics)
	assert.NotEmpty(sess.LexicalDiagnostics)
	assert.NotEmpty(sess.Diagnostics())
}

func Test_Dump_roundTripsThroughRezi(t *testing.T) {
	assert := assert.New(t)

	sess, err := Run(strings.NewReader("inicio varinicio inteiro x ; varfim ; fim"), Options{})
	assert.NoError(err)

	data := sess.Dump()
	assert.NotEmpty(data)
}
