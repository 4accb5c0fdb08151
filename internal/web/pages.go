package web

import (
	"net/http"

	"Pindexa/internal/view"
)

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "home.html", pageData{
		Active: "home",
		Page:   s.pages.Home(r.Context()),
	})
}

func (s *Server) predictions(w http.ResponseWriter, r *http.Request) {
	count := view.ParseCount(r.URL.Query().Get("show"))
	s.render(w, r, http.StatusOK, "predictions.html", pageData{
		Title:  "Predictions",
		Active: "predictions",
		Page:   s.pages.Predictions(r.Context(), count),
	})
}

func (s *Server) about(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "about.html", pageData{Title: "About", Active: "about"})
}

func (s *Server) dashboard(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "dashboard.html", pageData{
		Title:  "Dashboard",
		Active: "overview",
		Page:   s.pages.Overview(r.Context()),
	})
}

func (s *Server) dashboardPredictions(w http.ResponseWriter, r *http.Request) {
	count := view.ParseCount(r.URL.Query().Get("show"))
	s.render(w, r, http.StatusOK, "dashboard_predictions.html", pageData{
		Title:  "Predictions",
		Active: "predictions",
		Page:   s.pages.Predictions(r.Context(), count),
	})
}

func (s *Server) insights(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "insights.html", pageData{
		Title:  "Insights",
		Active: "insights",
		Page:   s.pages.Insights(r.Context()),
	})
}

func (s *Server) analytics(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "analytics.html", pageData{
		Title:  "Analytics",
		Active: "analytics",
		Page:   s.pages.Analytics(r.Context()),
	})
}

func (s *Server) alerts(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "alerts.html", pageData{Title: "Alerts", Active: "alerts"})
}
