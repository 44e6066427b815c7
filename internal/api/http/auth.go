package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"restaurant-backend/internal/service"
)

type authedHandler func(w http.ResponseWriter, r *http.Request, claims *service.Claims)

// withAuth resolves the caller from the Authorization header before the
// wrapped handler runs. Every ownership-scoped operation goes through
// here; an order or basket is never addressable by id alone.
func (h *Handler) withAuth(next authedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			http.Error(w, "Missing bearer token", http.StatusUnauthorized)
			return
		}
		claims, err := h.Auth.VerifyToken(r.Context(), token)
		if err != nil {
			writeError(w, err)
			return
		}
		next(w, r, claims)
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.Auth.Register(req, r.URL.Query().Get("adminSecretKey"))
	if err != nil {
		writeError(w, err)
		return
	}

	body := map[string]interface{}{"username": user.Email}
	if user.IsAdmin {
		body["admin"] = true
	}
	writeJSON(w, http.StatusCreated, body)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, err := h.Auth.Login(req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request, claims *service.Claims) {
	if err := h.Auth.Logout(r.Context(), claims); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logout successful"})
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request, claims *service.Claims) {
	profile, err := h.Auth.GetProfile(claims.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request, claims *service.Claims) {
	var req service.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	profile, err := h.Auth.UpdateProfile(claims.Email, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
