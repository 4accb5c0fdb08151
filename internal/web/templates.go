package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"Pindexa/internal/analytics"
	"Pindexa/internal/domain"
	"Pindexa/internal/view"
)

//go:embed templates/*.html static/*
var assets embed.FS

var pageFiles = []string{
	"home.html",
	"predictions.html",
	"about.html",
	"login.html",
	"signup.html",
	"dashboard.html",
	"dashboard_predictions.html",
	"insights.html",
	"analytics.html",
	"alerts.html",
}

type templateSet struct {
	pages map[string]*template.Template
}

var templateFuncs = template.FuncMap{
	"band": func(probability int) string {
		return string(analytics.BandOf(probability))
	},
	"letters": func(form string) []string {
		return strings.Split(form, "")
	},
	"pct": func(f float64) string {
		return strconv.FormatFloat(f, 'f', 1, 64)
	},
	"updated": func(raw string) string {
		t, ok := domain.ParseTimestamp(raw)
		if !ok {
			return raw
		}
		return t.Format("2 Jan 2006, 15:04 UTC")
	},
	"sameCount": func(a, b view.Count) bool {
		return a == b
	},
	"initials": func(team string) string {
		runes := []rune(strings.ToUpper(team))
		if len(runes) > 2 {
			runes = runes[:2]
		}
		return string(runes)
	},
}

func loadTemplates() (*templateSet, error) {
	set := &templateSet{pages: make(map[string]*template.Template, len(pageFiles))}
	for _, name := range pageFiles {
		tmpl, err := template.New("layout").Funcs(templateFuncs).ParseFS(assets,
			"templates/layout.html",
			"templates/partials.html",
			"templates/"+name,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		set.pages[name] = tmpl
	}
	return set, nil
}

// pageData is the envelope every template renders.
type pageData struct {
	Title    string
	User     *domain.User
	Active   string
	Error    string
	Form     formValues
	Callback string
	Page     any
}

type formValues struct {
	Name  string
	Email string
}

// FirstName greets the signed-in user, falling back to a neutral word.
func (d pageData) FirstName() string {
	if d.User == nil || d.User.FirstName() == "" {
		return "there"
	}
	return d.User.FirstName()
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, data pageData) {
	tmpl, ok := s.templates.pages[name]
	if !ok {
		http.Error(w, "page not found", http.StatusNotFound)
		return
	}

	if user, ok := userFromContext(r.Context()); ok {
		data.User = &user
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		if s.logger != nil {
			s.logger.Error("render page", slog.String("page", name), slog.Any("error", err))
		}
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
