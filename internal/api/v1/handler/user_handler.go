package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"edumarket/internal/api/v1/dto"
	"edumarket/internal/middleware"
	"edumarket/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type UserHandler struct {
	userService service.UserService
	validate    *validator.Validate
	logger      zerolog.Logger
}

func NewUserHandler(userService service.UserService, v *validator.Validate, logger zerolog.Logger) *UserHandler {
	return &UserHandler{userService: userService, validate: v, logger: logger}
}

// RegisterRoutes mounts the authenticated account routes
func (h *UserHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("/me", authMw(http.HandlerFunc(h.getMe)))
	mux.Handle("/me/saved", authMw(http.HandlerFunc(h.toggleSaved)))
	mux.Handle("/me/registrations", authMw(http.HandlerFunc(h.registerCourse)))
}

func (h *UserHandler) getMe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	accountID, ok := r.Context().Value(middleware.AccountContextKey).(string)
	if !ok || accountID == "" {
		writeError(w, http.StatusUnauthorized, "Account ID not found in context")
		return
	}

	profile, err := h.userService.GetProfile(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		h.logger.Error().Err(err).Msg("Failed to assemble profile")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	certs := make([]dto.CertificateResponseDTO, 0, len(profile.Certificates))
	for _, c := range profile.Certificates {
		certs = append(certs, dto.CertificateResponseDTO{
			ID:       c.ID,
			CourseID: c.CourseID,
			URL:      c.URL,
			Date:     c.Date,
		})
	}
	saved := profile.SavedCourses
	if saved == nil {
		saved = []int64{}
	}
	registered := profile.RegisteredCourses
	if registered == nil {
		registered = []int64{}
	}

	writeJSON(w, http.StatusOK, dto.ProfileResponseDTO{
		ID:                profile.Account.ID,
		Name:              profile.Account.FullName,
		Email:             profile.Account.Email,
		Role:              profile.Account.Role,
		AvatarURL:         profile.Account.AvatarURL,
		SavedCourses:      saved,
		RegisteredCourses: registered,
		Certificates:      certs,
	})
}

func (h *UserHandler) toggleSaved(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	accountID, ok := r.Context().Value(middleware.AccountContextKey).(string)
	if !ok || accountID == "" {
		writeError(w, http.StatusUnauthorized, "Account ID not found in context")
		return
	}

	var req dto.ToggleSavedRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	saved, err := h.userService.ToggleSaved(r.Context(), accountID, req.CourseID)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to toggle saved course")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	message := "Removed from saved"
	if saved {
		message = "Added to saved"
	}
	writeJSON(w, http.StatusOK, dto.ToggleSavedResponseDTO{Message: message, Saved: saved})
}

func (h *UserHandler) registerCourse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	accountID, ok := r.Context().Value(middleware.AccountContextKey).(string)
	if !ok || accountID == "" {
		writeError(w, http.StatusUnauthorized, "Account ID not found in context")
		return
	}

	var req dto.RegisterCourseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	if err := h.userService.RegisterCourse(r.Context(), accountID, req.CourseID); err != nil {
		h.logger.Error().Err(err).Msg("Failed to register for course")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, dto.RegisterCourseResponseDTO{Message: "Enrolled successfully", Enrolled: true})
}
