package web

import (
	"encoding/json"
	"net/http"

	"Pindexa/internal/auth"
	"Pindexa/internal/view"
)

func (s *Server) apiPredictions(w http.ResponseWriter, r *http.Request) {
	count := view.ParseCount(r.URL.Query().Get("show"))
	writeJSON(w, http.StatusOK, s.pages.Predictions(r.Context(), count))
}

func (s *Server) apiInsights(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.pages.Insights(r.Context()))
}

func (s *Server) apiAnalytics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.pages.Analytics(r.Context()))
}

func (s *Server) apiStandings(w http.ResponseWriter, r *http.Request) {
	if s.league == nil {
		writeError(w, http.StatusServiceUnavailable, "league data is not configured")
		return
	}
	writeJSON(w, http.StatusOK, s.league.Standings(r.Context()))
}

func (s *Server) apiTopScorer(w http.ResponseWriter, r *http.Request) {
	if s.league == nil {
		writeError(w, http.StatusServiceUnavailable, "league data is not configured")
		return
	}
	writeJSON(w, http.StatusOK, s.league.TopScorer(r.Context()))
}

func (s *Server) apiNextFixture(w http.ResponseWriter, r *http.Request) {
	if s.league == nil {
		writeError(w, http.StatusServiceUnavailable, "league data is not configured")
		return
	}
	writeJSON(w, http.StatusOK, s.league.NextFixture(r.Context()))
}

func (s *Server) apiSignup(w http.ResponseWriter, r *http.Request) {
	var in auth.SignupInput
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if s.auth == nil {
		writeError(w, http.StatusServiceUnavailable, messageServerError)
		return
	}

	if _, err := s.auth.Signup(r.Context(), in); err != nil {
		status, message := signupFailure(err)
		if status == http.StatusInternalServerError {
			s.logError("signup failed", err)
		}
		writeError(w, status, message)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Account created successfully"})
}
