package dto

// CourseResponseDTO is returned in API responses for catalog courses
type CourseResponseDTO struct {
	ID              int64    `json:"id"`
	InstitutionID   int64    `json:"institution_id"`
	Title           string   `json:"title"`
	Price           float64  `json:"price"`
	Currency        string   `json:"currency"`
	Rating          float64  `json:"rating"`
	ReviewsCount    int      `json:"reviews_count"`
	Category        string   `json:"category"`
	ImageURL        string   `json:"image_url"`
	Description     string   `json:"description"`
	FullDescription string   `json:"full_description"`
	Syllabus        []string `json:"syllabus"`
	Dates           []string `json:"dates"`
	Mode            string   `json:"mode"`
	Duration        string   `json:"duration"`
}
