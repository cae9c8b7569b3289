// Package httpapi exposes the parse front end over HTTP, grounded in the
// reference server's response/logging conventions but routed with
// go-chi/chi/v5 rather than a hand-rolled path-parsing ServeMux.
package httpapi

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lferreira-dev/analisador/internal/config"
	"github.com/lferreira-dev/analisador/internal/session"
	"github.com/lferreira-dev/analisador/internal/slrtable"
	"github.com/lferreira-dev/analisador/internal/version"
)

// ParseRequest is the body expected by POST /v1/parse.
type ParseRequest struct {
	Source        string `json:"source"`
	CollectTokens bool   `json:"collect_tokens"`
}

// ParseResponse is returned by POST /v1/parse.
type ParseResponse struct {
	ID          string   `json:"id"`
	Accepted    bool     `json:"accepted"`
	Reductions  []string `json:"reductions"`
	Diagnostics []string `json:"diagnostics"`
	Tokens      []string `json:"tokens,omitempty"`
}

// New builds a chi.Router serving the analisador HTTP API.
func New(cfg config.Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(logRequests)

	r.Get("/v1/version", handleVersion)
	r.Route("/v1/parse", func(r chi.Router) {
		r.Post("/", handleParse(cfg))
	})

	return r
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		next.ServeHTTP(w, req)
		log.Printf("%s %s", req.Method, req.URL.Path)
	})
}

func handleVersion(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": version.Current})
}

func handleParse(cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		var parseReq ParseRequest
		if err := parseJSON(req, &parseReq); err != nil {
			terminateWithError(w, req, http.StatusBadRequest, "malformed request body", err.Error())
			return
		}

		opts := session.Options{
			MaxRecoverableErrors: cfg.MaxRecoverableErrors,
			CollectTokenTrace:    parseReq.CollectTokens,
		}
		if !cfg.UsesEmbeddedTables() {
			tab, err := slrtable.LoadFrom(cfg.ActionTable, cfg.GotoTable)
			if err != nil {
				terminateWithError(w, req, http.StatusInternalServerError, "could not load parse tables", err.Error())
				return
			}
			opts.Table = tab
		}

		sess, err := session.Run(strings.NewReader(parseReq.Source), opts)
		if err != nil {
			terminateWithError(w, req, http.StatusInternalServerError, "parse failed", err.Error())
			return
		}

		resp := ParseResponse{
			ID:       sess.ID.String(),
			Accepted: sess.Result.Accepted,
		}
		resp.Reductions = sess.Result.Reductions
		for _, d := range sess.Diagnostics() {
			resp.Diagnostics = append(resp.Diagnostics, d.Error())
		}
		for _, t := range sess.TokenTrace {
			resp.Tokens = append(resp.Tokens, t.String())
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// v must be a pointer to a type.
func parseJSON(req *http.Request, v interface{}) error {
	bodyData, err := io.ReadAll(req.Body)
	if err != nil {
		return fmt.Errorf("could not read request body: %w", err)
	}

	if err := json.Unmarshal(bodyData, v); err != nil {
		return fmt.Errorf("malformed JSON in request")
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	respJSON, err := json.Marshal(v)
	if err != nil {
		log.Printf("ERROR: could not marshal response: %s", err.Error())
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if status != http.StatusNoContent {
		w.Write(respJSON)
	}
}

func terminateWithError(w http.ResponseWriter, req *http.Request, status int, userMsg, internalMsg string) {
	log.Printf("ERROR: %s %s: HTTP-%d: %s", req.Method, req.URL.Path, status, internalMsg)
	http.Error(w, userMsg, status)
}
