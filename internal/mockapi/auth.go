package mockapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/vijayaragavan-dev/storefront/internal/client"
)

func (s *Server) authResponse(a *account) client.AuthResponse {
	return client.AuthResponse{
		Token:     s.issueToken(a.email),
		Email:     a.email,
		FirstName: a.firstName,
		LastName:  a.lastName,
		Role:      a.role,
		ID:        a.id,
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req client.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[strings.ToLower(strings.TrimSpace(req.Email))]
	if !ok || a.password != req.Password {
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	writeJSON(w, http.StatusOK, s.authResponse(a))
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req client.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed request body")
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") || len(req.Password) < 6 || req.FirstName == "" {
		writeError(w, http.StatusBadRequest, "Validation failed")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[email]; exists {
		writeError(w, http.StatusBadRequest, "Email already exists")
		return
	}
	a := s.addAccount(email, req.Password, req.FirstName, req.LastName, "USER")
	writeJSON(w, http.StatusOK, s.authResponse(a))
}
