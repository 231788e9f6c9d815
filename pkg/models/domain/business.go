package domain

// Business is one client business visible to a practice profile.
type Business struct {
	ID       string
	Name     string
	Provider string
}
