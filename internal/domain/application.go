package domain

import (
	"strings"
	"time"
)

type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusViewed    ApplicationStatus = "viewed"
	ApplicationStatusContacted ApplicationStatus = "contacted"
	ApplicationStatusArchived  ApplicationStatus = "archived"
)

// ApplicationStatuses lists every valid status in lifecycle order.
var ApplicationStatuses = []ApplicationStatus{
	ApplicationStatusPending,
	ApplicationStatusViewed,
	ApplicationStatusContacted,
	ApplicationStatusArchived,
}

// ParseApplicationStatus normalizes raw input and reports whether it names a valid status.
func ParseApplicationStatus(raw string) (ApplicationStatus, bool) {
	status := ApplicationStatus(strings.ToLower(strings.TrimSpace(raw)))
	return status, status.Valid()
}

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusViewed, ApplicationStatusContacted, ApplicationStatusArchived:
		return true
	default:
		return false
	}
}

// Application is one applicant's submission against one job.
// JobID and ApplicantID never change after creation.
type Application struct {
	ID          string            `json:"id"`
	JobID       string            `json:"job_id"`
	ApplicantID string            `json:"applicant_id"`
	Message     string            `json:"message"`
	Status      ApplicationStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// ApplicationDetail is an application joined with the job and applicant
// summary shown to the owning organization.
type ApplicationDetail struct {
	Application
	JobTitle       string `json:"job_title"`
	OrganizationID string `json:"organization_id"`
	ApplicantName  string `json:"applicant_name"`
	ApplicantEmail string `json:"applicant_email"`
}
