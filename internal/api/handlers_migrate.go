package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dgallion1/taskshift/internal/dates"
	"github.com/dgallion1/taskshift/internal/movelog"
	"github.com/dgallion1/taskshift/internal/pipeline"
	"github.com/go-chi/chi/v5/middleware"
)

type migrateResponse struct {
	RunID   string          `json:"run_id"`
	Content string          `json:"content"`
	Changed bool            `json:"changed"`
	Moves   []movelog.Entry `json:"moves"`
	Dates   []dates.Rewrite `json:"dates"`
}

func (s *Server) handleMigrate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, fmt.Sprintf("document exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
			return
		}
		jsonError(w, "failed to read document", http.StatusBadRequest)
		return
	}

	normalizer := s.normalizer
	if r.URL.Query().Get("dates") == "false" {
		normalizer = nil
	}

	runID := pipeline.NewRunID()
	log := s.log.With("run_id", runID, "request_id", middleware.GetReqID(r.Context()))

	runner := pipeline.NewRunner(log, normalizer, nil, pipeline.Options{DryRun: true})
	doc, err := runner.Transform(string(data))
	if err != nil {
		log.Error("migration failed", "error", err)
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	log.Info("document migrated", "moves", len(doc.Moves), "dates", len(doc.Dates), "changed", doc.Changed)

	resp := migrateResponse{
		RunID:   runID,
		Content: doc.Content,
		Changed: doc.Changed,
		Moves:   doc.Moves,
		Dates:   doc.Dates,
	}
	if resp.Moves == nil {
		resp.Moves = []movelog.Entry{}
	}
	if resp.Dates == nil {
		resp.Dates = []dates.Rewrite{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
