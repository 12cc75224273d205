package domain

type Organization struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	OwnerProfileID string `json:"owner_profile_id"`
	CreatedOn      string `json:"created_on"`
}
