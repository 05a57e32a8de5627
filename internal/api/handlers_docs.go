package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleListDocuments lists summaries of all stored analyses.
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	results := s.orchestrator.Results().List()

	docs := make([]map[string]any, 0, len(results))
	for _, res := range results {
		docs = append(docs, map[string]any{
			"doc_id":     res.DocID,
			"filename":   res.Filename,
			"title":      res.Title,
			"created_at": res.CreatedAt,
			"sections":   len(res.Sections),
			"overall":    res.Scorecard.Overall,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"documents": docs})
}

// handleGetDocument returns the full analysis for one document.
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	res := s.orchestrator.Results().Get(docID)
	if res == nil {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// handleDeleteDocument removes a stored analysis.
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	if !s.orchestrator.Results().Delete(docID) {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"deleted": docID})
}
