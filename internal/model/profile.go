package model

// ProfileView is the aggregated, client-facing representation of an account
// plus its saved/registered/certificate collections.
type ProfileView struct {
	Account           Account
	SavedCourses      []int64
	RegisteredCourses []int64
	Certificates      []Certificate
}
