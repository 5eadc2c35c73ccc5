package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"bookreviews/internal/auth"
	"bookreviews/internal/entity"
	"bookreviews/internal/httpx"
	"bookreviews/internal/usecase"
)

type AuthHandler struct {
	users  usecase.UserRepository
	secret string
}

func NewAuthHandler(users usecase.UserRepository, secret string) *AuthHandler {
	return &AuthHandler{users: users, secret: secret}
}

type signupReq struct {
	Firstname string `json:"firstname" validate:"required,max=100"`
	Lastname  string `json:"lastname" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
}

// Signup handles POST /signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Firstname = strings.TrimSpace(req.Firstname)
	req.Lastname = strings.TrimSpace(req.Lastname)
	req.Email = strings.TrimSpace(req.Email)

	if details := ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("signup: hash password: %v", err)
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	user := &entity.User{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Email:     req.Email,
		Password:  hashed,
	}
	if err := h.users.Create(r.Context(), user); err != nil {
		if errors.Is(err, usecase.ErrAlreadyExists) {
			httpx.JSONError(r, w, http.StatusConflict, "ALREADY_EXISTS", "Email already exists", nil)
			return
		}
		log.Printf("signup: create user: %v", err)
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccessCreated(r, w, user.Public())
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /login. Authentication failure is always a 401
// with success=false.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Email = strings.TrimSpace(req.Email)

	if details := ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	user, err := h.users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			httpx.JSONError(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid email or password", nil)
			return
		}
		log.Printf("login: get user: %v", err)
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if !auth.VerifyPassword(user.Password, req.Password) {
		httpx.JSONError(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid email or password", nil)
		return
	}

	token, err := auth.GenerateToken(h.secret, user.ID, user.Firstname, user.Email, auth.TokenTTL)
	if err != nil {
		log.Printf("login: sign token: %v", err)
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(r, w, map[string]any{
		"token": token,
		"user":  user.Public(),
	}, nil)
}
