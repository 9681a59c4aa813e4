package mtatracker

import (
	"encoding/json"
	"net/http"
)

type healthResponse struct {
	Status         string `json:"status"`
	StationsMapped int    `json:"stations_mapped"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	resp := healthResponse{
		Status:         "ok",
		StationsMapped: s.directory.Len(),
	}
	_ = json.NewEncoder(w).Encode(resp)
}
