package dto

import "time"

// AccountResponseDTO is the public account projection. It never carries the
// password hash.
type AccountResponseDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatar_url"`
}

// ProfileResponseDTO is the aggregated user-state document returned by /me
type ProfileResponseDTO struct {
	ID                string                   `json:"id"`
	Name              string                   `json:"name"`
	Email             string                   `json:"email"`
	Role              string                   `json:"role"`
	AvatarURL         string                   `json:"avatar_url"`
	SavedCourses      []int64                  `json:"savedCourses"`
	RegisteredCourses []int64                  `json:"registeredCourses"`
	Certificates      []CertificateResponseDTO `json:"certificates"`
}

type CertificateResponseDTO struct {
	ID       int64     `json:"id"`
	CourseID int64     `json:"course_id"`
	URL      string    `json:"url"`
	Date     time.Time `json:"date"`
}

// ToggleSavedRequestDTO is the payload for the bookmark toggle
type ToggleSavedRequestDTO struct {
	CourseID int64 `json:"courseId" validate:"required"`
}

type ToggleSavedResponseDTO struct {
	Message string `json:"message"`
	Saved   bool   `json:"saved"`
}

// RegisterCourseRequestDTO is the payload for course enrollment
type RegisterCourseRequestDTO struct {
	CourseID int64 `json:"courseId" validate:"required"`
}

type RegisterCourseResponseDTO struct {
	Message  string `json:"message"`
	Enrolled bool   `json:"enrolled"`
}
