// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"imoguru/internal/middleware"
	"imoguru/internal/models"
	"imoguru/internal/store"
)

// Users groups the operator account management handlers. All routes are
// admin only, enforced by the router.
type Users struct {
	users *store.UserStore
}

// NewUsers creates a new Users handler group.
func NewUsers(users *store.UserStore) *Users {
	return &Users{users: users}
}

// List returns the company's operator accounts.
func (h *Users) List(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	users, err := h.users.List(sess.CompanyID)
	if err != nil {
		slog.Error("list users failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if users == nil {
		users = []models.User{}
	}
	respondJSON(w, http.StatusOK, users)
}

type createUserRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

// Create adds a new operator account to the company.
func (h *Users) Create(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	switch {
	case req.Email == "" || !strings.Contains(req.Email, "@"):
		respondError(w, http.StatusUnprocessableEntity, "a valid email is required")
		return
	case len(req.Password) < 8:
		respondError(w, http.StatusUnprocessableEntity, "password must be at least 8 characters")
		return
	}

	role := models.Role(req.Role)
	if role != models.RoleAdmin && role != models.RoleAgent {
		respondError(w, http.StatusUnprocessableEntity, "role must be admin or agent")
		return
	}

	if existing, err := h.users.FindByEmail(req.Email); err != nil {
		slog.Error("check user email failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	} else if existing != nil {
		respondError(w, http.StatusConflict, "a user with this email already exists")
		return
	}

	user, err := h.users.Create(sess.CompanyID, req.Email, req.Password, req.DisplayName, role)
	if err != nil {
		slog.Error("create user failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	respondJSON(w, http.StatusCreated, user)
}

// Reset2FA clears a user's TOTP enrollment, forcing a fresh setup on
// their next login.
func (h *Users) Reset2FA(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	id, err := uuidParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := h.users.FindByID(id)
	if err != nil {
		slog.Error("find user failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if user == nil || user.CompanyID != sess.CompanyID {
		respondError(w, http.StatusNotFound, "user not found")
		return
	}

	if err := h.users.ResetTOTP(id); err != nil {
		slog.Error("reset totp failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Delete removes an operator account. Admins cannot delete themselves.
func (h *Users) Delete(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	id, err := uuidParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if id == sess.UserID {
		respondError(w, http.StatusConflict, "cannot delete your own account")
		return
	}

	user, err := h.users.FindByID(id)
	if err != nil {
		slog.Error("find user failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if user == nil || user.CompanyID != sess.CompanyID {
		respondError(w, http.StatusNotFound, "user not found")
		return
	}

	if err := h.users.Delete(id); err != nil {
		slog.Error("delete user failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
