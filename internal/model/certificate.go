package model

import "time"

// Certificate records a completion artifact for one account and one course.
// Append-only: no API endpoint creates or deletes certificates.
type Certificate struct {
	ID        int64     `db:"id" json:"id"`
	AccountID string    `db:"account_id" json:"-"`
	CourseID  int64     `db:"course_id" json:"course_id"`
	URL       string    `db:"url" json:"url"`
	Date      time.Time `db:"date" json:"date"`
}
