package mtatracker

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/LS122800/MTA-Tracker/formatter"
)

func (s *Server) handlePositions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	session, ok := s.loadSession(w, r, s.cfg.Feed.URL)
	if !ok {
		return
	}
	_, _ = w.Write(formatter.BuildJSON(session.FeedTimestamp(), session.TrainPositions()))
}

func (s *Server) handleArrivals(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	stopID, err := validateStopID(r.URL.Query().Get("stopId"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write(buildErrorPayload(err.Error()))
		return
	}
	session, ok := s.loadSession(w, r, s.cfg.Feed.URL)
	if !ok {
		return
	}
	_, _ = w.Write(formatter.BuildJSON(session.FeedTimestamp(), session.ArrivalsAt(stopID)))
}

func (s *Server) handleAlerts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	session, ok := s.loadSession(w, r, s.cfg.Feed.AlertsURL)
	if !ok {
		return
	}
	_, _ = w.Write(formatter.BuildJSON(session.FeedTimestamp(), session.Alerts()))
}

// loadSession fetches and decodes one snapshot for the request. A fetch or
// decode failure means no snapshot is available this cycle; the client gets
// a 502 and may retry.
func (s *Server) loadSession(w http.ResponseWriter, r *http.Request, feedURL string) (*Session, bool) {
	b, err := s.client.Fetch(r.Context(), feedURL)
	if err != nil {
		log.Error().Err(err).Str("url", feedURL).Msg("feed fetch failed")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write(buildErrorPayload("feed unavailable"))
		return nil, false
	}
	session := NewSession(s.directory)
	if err := session.LoadSnapshot(b); err != nil {
		log.Error().Err(err).Msg("feed decode failed")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write(buildErrorPayload("feed could not be decoded"))
		return nil, false
	}
	return session, true
}

func buildErrorPayload(msg string) []byte {
	b, _ := json.Marshal(map[string]string{"error": msg})
	return b
}
