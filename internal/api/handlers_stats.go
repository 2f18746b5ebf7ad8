package api

import (
	"encoding/json"
	"net/http"
)

// handleStats reports processing counters.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.proc.Stats().Snapshot())
}
