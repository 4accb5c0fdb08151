package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"Pindexa/internal/auth"
	"Pindexa/internal/domain"
)

const (
	messageMissingFields   = "Name, email, and password are required"
	messagePasswordShort   = "Password must be at least 6 characters"
	messageAccountExists   = "An account with this email already exists"
	messageInvalidLogin    = "Invalid email or password"
	messagePasswordsDiffer = "Passwords do not match"
	messageSignedUpNoLogin = "Account created but sign-in failed. Please log in manually."
	messageServerError     = "Something went wrong. Please try again."
)

// signupFailure maps a signup error to its status code and user message.
func signupFailure(err error) (int, string) {
	switch {
	case errors.Is(err, auth.ErrMissingFields):
		return http.StatusBadRequest, messageMissingFields
	case errors.Is(err, auth.ErrPasswordTooShort):
		return http.StatusBadRequest, messagePasswordShort
	case errors.Is(err, auth.ErrAccountExists):
		return http.StatusConflict, messageAccountExists
	default:
		return http.StatusInternalServerError, messageServerError
	}
}

func (s *Server) loginForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := userFromContext(r.Context()); ok {
		http.Redirect(w, r, safeRedirect(r.URL.Query().Get("callbackUrl")), http.StatusFound)
		return
	}
	s.render(w, r, http.StatusOK, "login.html", pageData{
		Title:    "Log in",
		Active:   "login",
		Callback: r.URL.Query().Get("callbackUrl"),
	})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	email := r.PostFormValue("email")
	callback := r.PostFormValue("callbackUrl")
	data := pageData{
		Title:    "Log in",
		Active:   "login",
		Form:     formValues{Email: email},
		Callback: callback,
	}

	if s.auth == nil {
		data.Error = messageServerError
		s.render(w, r, http.StatusServiceUnavailable, "login.html", data)
		return
	}

	session, _, err := s.auth.Login(r.Context(), email, r.PostFormValue("password"))
	if errors.Is(err, auth.ErrInvalidCredentials) {
		data.Error = messageInvalidLogin
		s.render(w, r, http.StatusUnauthorized, "login.html", data)
		return
	}
	if err != nil {
		s.logError("login failed", err)
		data.Error = messageServerError
		s.render(w, r, http.StatusInternalServerError, "login.html", data)
		return
	}

	s.setSessionCookie(w, session)
	http.Redirect(w, r, safeRedirect(callback), http.StatusSeeOther)
}

func (s *Server) signupForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "signup.html", pageData{Title: "Sign up", Active: "signup"})
}

func (s *Server) signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	in := auth.SignupInput{
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	data := pageData{
		Title:  "Sign up",
		Active: "signup",
		Form:   formValues{Name: in.Name, Email: in.Email},
	}

	if in.Password != r.PostFormValue("confirmPassword") {
		data.Error = messagePasswordsDiffer
		s.render(w, r, http.StatusBadRequest, "signup.html", data)
		return
	}
	if s.auth == nil {
		data.Error = messageServerError
		s.render(w, r, http.StatusServiceUnavailable, "signup.html", data)
		return
	}

	if _, err := s.auth.Signup(r.Context(), in); err != nil {
		status, message := signupFailure(err)
		if status == http.StatusInternalServerError {
			s.logError("signup failed", err)
		}
		data.Error = message
		s.render(w, r, status, "signup.html", data)
		return
	}

	session, _, err := s.auth.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		s.logError("login after signup failed", err)
		data.Error = messageSignedUpNoLogin
		s.render(w, r, http.StatusOK, "signup.html", data)
		return
	}

	s.setSessionCookie(w, session)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	if token := tokenFromContext(r.Context()); token != "" && s.auth != nil {
		if err := s.auth.Logout(r.Context(), token); err != nil {
			s.logError("logout failed", err)
		}
	}
	s.clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) setSessionCookie(w http.ResponseWriter, session domain.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookie.Name,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   s.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookie.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// safeRedirect keeps post-login redirects on this site.
func safeRedirect(target string) string {
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/dashboard"
	}
	return target
}

func (s *Server) logError(msg string, err error) {
	if s.logger != nil {
		s.logger.Error(msg, slog.Any("error", err))
	}
}
