package domain

type Job struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organization_id"`
	Title          string `json:"title"`
	Slug           string `json:"slug"`
	IsActive       bool   `json:"is_active"`
}
