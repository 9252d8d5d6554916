package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"edumarket/internal/api/v1/dto"
	"edumarket/internal/service"

	"github.com/rs/zerolog"
)

type InstitutionHandler struct {
	institutionService service.InstitutionService
	logger             zerolog.Logger
}

func NewInstitutionHandler(institutionService service.InstitutionService, logger zerolog.Logger) *InstitutionHandler {
	return &InstitutionHandler{institutionService: institutionService, logger: logger}
}

// RegisterRoutes mounts the institution routes
func (h *InstitutionHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/institutions", http.HandlerFunc(h.listInstitutions))
	mux.Handle("/institutions/", http.HandlerFunc(h.getInstitution))
}

func (h *InstitutionHandler) listInstitutions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	institutions, err := h.institutionService.List(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list institutions")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	resp := make([]dto.InstitutionResponseDTO, 0, len(institutions))
	for _, i := range institutions {
		resp = append(resp, dto.InstitutionResponseDTO{
			ID:          i.ID,
			Name:        i.Name,
			LogoURL:     i.LogoURL,
			Description: i.Description,
			Rating:      i.Rating,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *InstitutionHandler) getInstitution(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/institutions/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	institution, err := h.institutionService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrInstitutionNotFound) {
			writeError(w, http.StatusNotFound, "Not found")
			return
		}
		h.logger.Error().Err(err).Msg("Failed to get institution")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, dto.InstitutionResponseDTO{
		ID:          institution.ID,
		Name:        institution.Name,
		LogoURL:     institution.LogoURL,
		Description: institution.Description,
		Rating:      institution.Rating,
	})
}
