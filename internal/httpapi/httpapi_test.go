package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lferreira-dev/analisador/internal/config"
)

func Test_handleVersion_returnsCurrentVersion(t *testing.T) {
	assert := assert.New(t)

	srv := httptest.NewServer(New(config.Default()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/v1/version")
	assert.NoError(err)
	defer resp.Body.Close()
	assert.Equal(http.StatusOK, resp.StatusCode)
}

func Test_handleParse_acceptsValidProgram(t *testing.T) {
	assert := assert.New(t)

	srv := httptest.NewServer(New(config.Default()))
	defer srv.Close()

	body := `{"source": "inicio varinicio inteiro x ; varfim ; fim"}`
	resp, err := http.Post(srv.URL+"/v1/parse", "application/json", strings.NewReader(body))
	assert.NoError(err)
	defer resp.Body.Close()
	assert.Equal(http.StatusOK, resp.StatusCode)

	var parsed ParseResponse
	assert.NoError(json.NewDecoder(resp.Body).Decode(&parsed))
	assert.True(parsed.Accepted)
	assert.NotEmpty(parsed.ID)
}

func Test_handleParse_reportsLexicalDiagnosticsEvenWhenAccepted(t *testing.T) {
	assert := assert.New(t)

	srv := httptest.NewServer(New(config.Default()))
	defer srv.Close()

	body := `{"source": "inicio # varinicio inteiro x ; varfim ; fim"}`
	resp, err := http.Post(srv.URL+"/v1/parse", "application/json", strings.NewReader(body))
	assert.NoError(err)
	defer resp.Body.Close()
	assert.Equal(http.StatusOK, resp.StatusCode)

	var parsed ParseResponse
	assert.NoError(json.NewDecoder(resp.Body).Decode(&parsed))
	assert.True(parsed.Accepted)
	assert.NotEmpty(parsed.Diagnostics)
}

func Test_handleParse_rejectsMalformedBody(t *testing.T) {
	assert := assert.New(t)

	srv := httptest.NewServer(New(config.Default()))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/v1/parse", "application/json", strings.NewReader("not json"))
	assert.NoError(err)
	defer resp.Body.Close()
	assert.Equal(http.StatusBadRequest, resp.StatusCode)
}
