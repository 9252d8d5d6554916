package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"edumarket/internal/api/v1/dto"
	"edumarket/internal/model"
	"edumarket/internal/service"

	"github.com/rs/zerolog"
)

type CourseHandler struct {
	courseService service.CourseService
	logger        zerolog.Logger
}

func NewCourseHandler(courseService service.CourseService, logger zerolog.Logger) *CourseHandler {
	return &CourseHandler{courseService: courseService, logger: logger}
}

// RegisterRoutes mounts the catalog course routes
func (h *CourseHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/courses", http.HandlerFunc(h.listCourses))
	mux.Handle("/courses/", http.HandlerFunc(h.getCourse))
}

func (h *CourseHandler) listCourses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	filter := model.CourseFilter{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
	}

	courses, err := h.courseService.List(r.Context(), filter)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list courses")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	resp := make([]dto.CourseResponseDTO, 0, len(courses))
	for _, c := range courses {
		resp = append(resp, toCourseDTO(&c))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *CourseHandler) getCourse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/courses/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Course not found")
		return
	}

	course, err := h.courseService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			writeError(w, http.StatusNotFound, "Course not found")
			return
		}
		h.logger.Error().Err(err).Msg("Failed to get course")
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, toCourseDTO(course))
}

func toCourseDTO(c *model.Course) dto.CourseResponseDTO {
	return dto.CourseResponseDTO{
		ID:              c.ID,
		InstitutionID:   c.InstitutionID,
		Title:           c.Title,
		Price:           c.Price,
		Currency:        c.Currency,
		Rating:          c.Rating,
		ReviewsCount:    c.ReviewsCount,
		Category:        c.Category,
		ImageURL:        c.ImageURL,
		Description:     c.Description,
		FullDescription: c.FullDescription,
		Syllabus:        c.Syllabus,
		Dates:           c.Dates,
		Mode:            c.Mode,
		Duration:        c.Duration,
	}
}
