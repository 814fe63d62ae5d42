// Package stubapi is a local stand-in for the domain suggester
// backend. It answers /check and /notify with the real wire shapes but
// deterministic data, so the front-end can be developed and demoed
// without registry credentials.
package stubapi

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Server struct {
	Logger *zap.Logger
	Subs   *SubscriptionStore
}

func NewServer(l *zap.Logger, subs *SubscriptionStore) *Server {
	if l == nil {
		l = zap.NewNop()
	}
	return &Server{Logger: l, Subs: subs}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Post("/check", s.handleCheck)
	r.Post("/notify", s.handleNotify)
	r.Get("/subscriptions", s.handleListSubscriptions)

	return r
}

type candidateJSON struct {
	FQDN      string `json:"fqdn"`
	Available bool   `json:"available"`
}

type checkRequest struct {
	InputText string `json:"input_text"`
}

type checkResponse struct {
	Status            string          `json:"status"`
	Domain            string          `json:"domain,omitempty"`
	Keyword           string          `json:"keyword,omitempty"`
	Message           string          `json:"message,omitempty"`
	Alternatives      []candidateJSON `json:"alternatives,omitempty"`
	Results           []candidateJSON `json:"results,omitempty"`
	AllowNotification bool            `json:"allow_notification,omitempty"`
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad payload")
		return
	}
	input := strings.ToLower(strings.TrimSpace(req.InputText))
	if input == "" {
		writeError(w, http.StatusBadRequest, "input_text required")
		return
	}

	var resp checkResponse
	if strings.Contains(input, ".") {
		// Full-domain mode.
		if availability(input) {
			resp = checkResponse{
				Status:  "available",
				Domain:  input,
				Message: input + " is available!",
			}
		} else {
			resp = checkResponse{
				Status:            "unavailable",
				Domain:            input,
				Message:           input + " is not available.",
				Alternatives:      alternativesFor(input),
				AllowNotification: true,
			}
		}
	} else {
		resp = checkResponse{
			Status:  "suggestions",
			Keyword: input,
			Results: ideasFor(input),
		}
	}

	s.Logger.Info("check",
		zap.String("input", input),
		zap.String("status", resp.Status),
	)
	writeJSON(w, http.StatusOK, resp)
}

type notifyRequest struct {
	Domain string `json:"domain"`
	Email  string `json:"email"`
}

func (s *Server) handleNotify(w http.ResponseWriter, r *http.Request) {
	var req notifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad payload")
		return
	}
	domain := strings.ToLower(strings.TrimSpace(req.Domain))
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if domain == "" || email == "" {
		writeError(w, http.StatusBadRequest, "domain and email required")
		return
	}
	if !emailPattern.MatchString(email) {
		writeError(w, http.StatusBadRequest, "invalid email")
		return
	}

	if err := s.Subs.Add(domain, email); err != nil {
		writeError(w, http.StatusConflict, "already subscribed")
		return
	}

	s.Logger.Info("notify_subscribed",
		zap.String("domain", domain),
		zap.String("email", email),
	)
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "You will be notified when " + domain + " becomes available.",
	})
}

func (s *Server) handleListSubscriptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Subs.List())
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
