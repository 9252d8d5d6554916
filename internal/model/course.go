package model

// Course is a catalog entry owned by exactly one institution. Courses are
// seeded/imported and read-only at runtime.
type Course struct {
	ID              int64    `db:"id" json:"id"`
	InstitutionID   int64    `db:"institution_id" json:"institution_id"`
	Title           string   `db:"title" json:"title"`
	Price           float64  `db:"price" json:"price"`
	Currency        string   `db:"currency" json:"currency"`
	Rating          float64  `db:"rating" json:"rating"`
	ReviewsCount    int      `db:"reviews_count" json:"reviews_count"`
	Category        string   `db:"category" json:"category"`
	ImageURL        string   `db:"image_url" json:"image_url"`
	Description     string   `db:"description" json:"description"`
	FullDescription string   `db:"full_description" json:"full_description"`
	Syllabus        []string `db:"syllabus" json:"syllabus"`
	Dates           []string `db:"dates" json:"dates"`
	Mode            string   `db:"mode" json:"mode"`
	Duration        string   `db:"duration" json:"duration"`
}

// CourseFilter narrows a catalog listing. Zero values mean "no constraint";
// both constraints together are conjunctive.
type CourseFilter struct {
	// Category must match the stored category exactly.
	Category string
	// Search matches case-insensitively against title or description.
	Search string
}
