// Package http exposes a process library over a JSON HTTP API: definition
// listing, transition relations, maximal traces, and trace checking.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/aretw0/tracery"
	"github.com/aretw0/tracery/pkg/event"
	"github.com/aretw0/tracery/pkg/loader"
)

var errNotFound = errors.New("definition not found")

// Server serves trace queries over a loaded process library.
type Server struct {
	library  *loader.Library
	explorer *tracery.Explorer[event.Name]
	logger   *slog.Logger
}

// NewHandler creates the HTTP handler for a library.
func NewHandler(library *loader.Library, explorer *tracery.Explorer[event.Name], logger *slog.Logger) http.Handler {
	s := &Server{library: library, explorer: explorer, logger: logger}

	r := chi.NewRouter()
	r.Get("/definitions", s.ListDefinitions)
	r.Get("/definitions/{name}", s.GetDefinition)
	r.Get("/definitions/{name}/transitions", s.GetTransitions)
	r.Get("/definitions/{name}/traces", s.GetTraces)
	r.Post("/definitions/{name}/satisfies", s.CheckTrace)
	return r
}

// LibraryResponse is the body of GET /definitions.
type LibraryResponse struct {
	Root        string   `json:"root"`
	Definitions []string `json:"definitions"`
}

// DefinitionResponse is the body of GET /definitions/{name}.
type DefinitionResponse struct {
	Name    string `json:"name"`
	Process string `json:"process"`
}

// TransitionsResponse maps each initial event to the terms the process can
// become by performing it.
type TransitionsResponse struct {
	Name        string              `json:"name"`
	Transitions map[string][]string `json:"transitions"`
}

// TracesResponse is the body of GET /definitions/{name}/traces.
type TracesResponse struct {
	Name   string     `json:"name"`
	Traces [][]string `json:"traces"`
}

// CheckTraceRequest is the body of POST /definitions/{name}/satisfies.
// Events are given by name; "τ" and "✔" denote the hidden events.
type CheckTraceRequest struct {
	Trace []string `json:"trace"`
}

// CheckTraceResponse reports whether the definition can perform the trace.
type CheckTraceResponse struct {
	Name      string   `json:"name"`
	Trace     []string `json:"trace"`
	Satisfied bool     `json:"satisfied"`
}

// ListDefinitions handles GET /definitions.
func (s *Server) ListDefinitions(w http.ResponseWriter, r *http.Request) {
	s.respond(w, LibraryResponse{
		Root:        s.library.RootName(),
		Definitions: s.library.Names(),
	})
}

// GetDefinition handles GET /definitions/{name}.
func (s *Server) GetDefinition(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	p, ok := s.library.Process(name)
	if !ok {
		s.notFound(w, name)
		return
	}
	s.respond(w, DefinitionResponse{Name: name, Process: p.String()})
}

// GetTransitions handles GET /definitions/{name}/transitions.
func (s *Server) GetTransitions(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	p, ok := s.library.Process(name)
	if !ok {
		s.notFound(w, name)
		return
	}

	transitions := make(map[string][]string)
	for e, afters := range s.explorer.Transitions(p) {
		rendered := make([]string, 0, len(afters))
		for _, after := range afters {
			rendered = append(rendered, after.String())
		}
		sort.Strings(rendered)
		transitions[e.String()] = rendered
	}
	s.respond(w, TransitionsResponse{Name: name, Transitions: transitions})
}

// GetTraces handles GET /definitions/{name}/traces.
func (s *Server) GetTraces(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	p, ok := s.library.Process(name)
	if !ok {
		s.notFound(w, name)
		return
	}

	traces := make([][]string, 0)
	for _, tr := range s.explorer.MaximalTraces(p).Traces() {
		rendered := make([]string, 0, len(tr))
		for _, e := range tr {
			rendered = append(rendered, e.String())
		}
		traces = append(traces, rendered)
	}
	sort.Slice(traces, func(i, j int) bool {
		return traceLess(traces[i], traces[j])
	})
	s.respond(w, TracesResponse{Name: name, Traces: traces})
}

// CheckTrace handles POST /definitions/{name}/satisfies.
func (s *Server) CheckTrace(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	p, ok := s.library.Process(name)
	if !ok {
		s.notFound(w, name)
		return
	}

	var body CheckTraceRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("CheckTrace: invalid request body", "error", err)
		return
	}

	tr := make([]event.Name, 0, len(body.Trace))
	for _, raw := range body.Trace {
		tr = append(tr, event.Parse(raw))
	}
	s.respond(w, CheckTraceResponse{
		Name:      name,
		Trace:     body.Trace,
		Satisfied: s.explorer.Satisfies(p, tr),
	})
}

func (s *Server) notFound(w http.ResponseWriter, name string) {
	http.Error(w, errNotFound.Error(), http.StatusNotFound)
	s.logger.Warn("definition not found", "name", name)
}

func (s *Server) respond(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}

// traceLess orders traces lexicographically for stable response bodies.
func traceLess(a, b []string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
