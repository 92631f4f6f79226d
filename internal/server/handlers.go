package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meltforce/pwf"
	"github.com/meltforce/pwf/internal/convert"
)

// maxDocumentBytes bounds request bodies; PWF documents are hand-edited
// text and never approach this.
const maxDocumentBytes = 4 << 20

// validateResponse is the wire shape for validation results.
type validateResponse struct {
	Valid  bool                  `json:"valid"`
	Issues []pwf.ValidationIssue `json:"issues"`
}

func (s *Server) handleValidatePlan(w http.ResponseWriter, r *http.Request) {
	text, ok := s.readDocument(w, r)
	if !ok {
		return
	}
	result := pwf.ParsePlan(text)
	writeJSON(w, http.StatusOK, validateResponse{
		Valid:  result.Valid(),
		Issues: emptyNotNull(result.Issues),
	})
}

func (s *Server) handleValidateHistory(w http.ResponseWriter, r *http.Request) {
	text, ok := s.readDocument(w, r)
	if !ok {
		return
	}
	result := pwf.ParseHistory(text)
	writeJSON(w, http.StatusOK, validateResponse{
		Valid:  result.Valid(),
		Issues: emptyNotNull(result.Issues),
	})
}

func (s *Server) handleParsePlan(w http.ResponseWriter, r *http.Request) {
	text, ok := s.readDocument(w, r)
	if !ok {
		return
	}
	result := pwf.ParsePlan(text)
	if !result.Valid() {
		writeJSON(w, http.StatusUnprocessableEntity, validateResponse{Issues: result.Issues})
		return
	}
	writeJSON(w, http.StatusOK, result.Plan)
}

func (s *Server) handleParseHistory(w http.ResponseWriter, r *http.Request) {
	text, ok := s.readDocument(w, r)
	if !ok {
		return
	}
	result := pwf.ParseHistory(text)
	if !result.Valid() {
		writeJSON(w, http.StatusUnprocessableEntity, validateResponse{Issues: result.Issues})
		return
	}
	writeJSON(w, http.StatusOK, result.History)
}

func (s *Server) handleSchemas(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"plan_version":    pwf.PlanVersion,
		"history_version": pwf.HistoryVersion,
		"modalities":      pwf.Modalities(),
		"convert_formats": convert.Supported(),
	})
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	format := convert.Format(chi.URLParam(r, "format"))
	data, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "reading body: " + err.Error()})
		return
	}

	result, err := convert.Convert(r.Context(), format, data)
	if err != nil {
		s.log.Error("conversion failed", "format", format, "error", err)
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// readDocument reads the request body as document text. Responds with 400
// and returns ok=false when the body cannot be read.
func (s *Server) readDocument(w http.ResponseWriter, r *http.Request) (string, bool) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "reading body: " + err.Error()})
		return "", false
	}
	return string(data), true
}

// emptyNotNull keeps the issues field a JSON array even when empty.
func emptyNotNull(issues []pwf.ValidationIssue) []pwf.ValidationIssue {
	if issues == nil {
		return []pwf.ValidationIssue{}
	}
	return issues
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
