package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"edumarket/internal/api/v1/dto"
	"edumarket/internal/model"
	"edumarket/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type AuthHandler struct {
	authService service.AuthService
	validate    *validator.Validate
	logger      zerolog.Logger
}

func NewAuthHandler(authService service.AuthService, v *validator.Validate, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, validate: v, logger: logger}
}

// RegisterRoutes mounts the auth routes
func (h *AuthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/auth/register", http.HandlerFunc(h.register))
	mux.Handle("/auth/login", http.HandlerFunc(h.login))
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	token, account, err := h.authService.Register(r.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeError(w, http.StatusBadRequest, "User already exists")
			return
		}
		h.logger.Error().Err(err).Msg("Failed to register account")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusCreated, dto.AuthResponseDTO{
		Token:   token,
		Account: toAccountDTO(account),
	})
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	token, account, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		// Unknown email and wrong password share one response so the API
		// does not reveal which part failed.
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusBadRequest, "Invalid credentials")
			return
		}
		h.logger.Error().Err(err).Msg("Failed to log in account")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, dto.AuthResponseDTO{
		Token:   token,
		Account: toAccountDTO(account),
	})
}

func toAccountDTO(a *model.Account) dto.AccountResponseDTO {
	return dto.AccountResponseDTO{
		ID:        a.ID,
		Name:      a.FullName,
		Email:     a.Email,
		Role:      a.Role,
		AvatarURL: a.AvatarURL,
	}
}
