package web

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"Pindexa/internal/auth"
	"Pindexa/internal/domain"
	"Pindexa/internal/ports"
	"Pindexa/internal/usecase"
)

// Authenticator is the account workflow used by the handlers.
type Authenticator interface {
	Signup(ctx context.Context, in auth.SignupInput) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.Session, domain.User, error)
	Authenticate(ctx context.Context, token string) (domain.User, error)
	Logout(ctx context.Context, token string) error
}

// CookieConfig describes the session cookie.
type CookieConfig struct {
	Name   string
	Secure bool
}

// Deps wires the server collaborators.
type Deps struct {
	Pages          *usecase.Pages
	League         ports.LeagueData
	Auth           Authenticator
	Logger         *slog.Logger
	Cookie         CookieConfig
	AllowedOrigins []string
}

// Server serves the public site, the gated dashboard and the JSON API.
type Server struct {
	pages     *usecase.Pages
	league    ports.LeagueData
	auth      Authenticator
	logger    *slog.Logger
	cookie    CookieConfig
	origins   []string
	templates *templateSet
}

// NewServer parses the embedded templates and wires dependencies.
func NewServer(deps Deps) (*Server, error) {
	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	if deps.Cookie.Name == "" {
		deps.Cookie.Name = "pindexa_session"
	}
	if deps.Pages == nil {
		deps.Pages = usecase.NewPages(usecase.PagesDeps{League: deps.League})
	}

	return &Server{
		pages:     deps.Pages,
		league:    deps.League,
		auth:      deps.Auth,
		logger:    deps.Logger,
		cookie:    deps.Cookie,
		origins:   deps.AllowedOrigins,
		templates: templates,
	}, nil
}

// Routes builds the HTTP handler tree.
func (s *Server) Routes() http.Handler {
	r := mux.NewRouter()
	r.Use(s.logRequests)
	r.Use(s.loadSession)

	static, _ := fs.Sub(assets, "static")
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	r.HandleFunc("/health", s.health).Methods(http.MethodGet)

	r.HandleFunc("/", s.home).Methods(http.MethodGet)
	r.HandleFunc("/predictions", s.predictions).Methods(http.MethodGet)
	r.HandleFunc("/about", s.about).Methods(http.MethodGet)
	r.HandleFunc("/login", s.loginForm).Methods(http.MethodGet)
	r.HandleFunc("/login", s.login).Methods(http.MethodPost)
	r.HandleFunc("/signup", s.signupForm).Methods(http.MethodGet)
	r.HandleFunc("/signup", s.signup).Methods(http.MethodPost)
	r.HandleFunc("/logout", s.logout).Methods(http.MethodPost)

	dashboard := r.PathPrefix("/dashboard").Subrouter()
	dashboard.Use(s.requireUser)
	dashboard.HandleFunc("", s.dashboard).Methods(http.MethodGet)
	dashboard.HandleFunc("/predictions", s.dashboardPredictions).Methods(http.MethodGet)
	dashboard.HandleFunc("/insights", s.insights).Methods(http.MethodGet)
	dashboard.HandleFunc("/analytics", s.analytics).Methods(http.MethodGet)
	dashboard.HandleFunc("/alerts", s.alerts).Methods(http.MethodGet)

	origins := s.origins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	api := r.PathPrefix("/api").Subrouter()
	api.Use(cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}).Handler)

	read := []string{http.MethodGet, http.MethodOptions}
	api.HandleFunc("/predictions", s.apiPredictions).Methods(read...)
	api.HandleFunc("/insights", s.apiInsights).Methods(read...)
	api.HandleFunc("/analytics", s.apiAnalytics).Methods(read...)
	api.HandleFunc("/league/standings", s.apiStandings).Methods(read...)
	api.HandleFunc("/league/top-scorer", s.apiTopScorer).Methods(read...)
	api.HandleFunc("/league/next-fixture", s.apiNextFixture).Methods(read...)
	api.HandleFunc("/auth/signup", s.apiSignup).Methods(http.MethodPost, http.MethodOptions)

	return r
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
