package models

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationDB represents a job application record in the database
type ApplicationDB struct {
	ApplicationID   uuid.UUID  `json:"id" db:"application_id"`                 // Primary key
	UserID          uuid.UUID  `json:"-" db:"user_id"`                         // Owning user
	CompanyName     string     `json:"company_name" db:"company_name"`         // Required
	JobTitle        string     `json:"job_title" db:"job_title"`               // Required
	JobURL          *string    `json:"job_url" db:"job_url"`
	JobDescription  *string    `json:"job_description" db:"job_description"`
	Location        *string    `json:"location" db:"location"`
	SalaryMin       *int       `json:"salary_min" db:"salary_min"`
	SalaryMax       *int       `json:"salary_max" db:"salary_max"`
	Currency        string     `json:"currency" db:"currency"`                 // 3-letter code
	JobType         *string    `json:"job_type" db:"job_type"`
	RemoteType      *string    `json:"remote_type" db:"remote_type"`
	ApplicationDate *time.Time `json:"application_date" db:"application_date"`
	Deadline        *time.Time `json:"deadline" db:"deadline"`
	Status          string     `json:"status" db:"status"`
	Priority        string     `json:"priority" db:"priority"`
	Notes           *string    `json:"notes" db:"notes"`
	ReferralName    *string    `json:"referral_name" db:"referral_name"`
	ContactEmail    *string    `json:"contact_email" db:"contact_email"`
	ContactPerson   *string    `json:"contact_person" db:"contact_person"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at" db:"updated_at"`
}

// DaysSinceApplied returns the number of days since the application date,
// or nil when no application date is set.
func (a *ApplicationDB) DaysSinceApplied() *int {
	if a.ApplicationDate == nil {
		return nil
	}
	days := int(time.Since(*a.ApplicationDate).Hours() / 24)
	return &days
}

// ApplicationPatch carries the optional fields of a partial update.
// Nil fields are left unchanged.
type ApplicationPatch struct {
	CompanyName     *string
	JobTitle        *string
	JobURL          *string
	JobDescription  *string
	Location        *string
	SalaryMin       *int
	SalaryMax       *int
	Currency        *string
	JobType         *string
	RemoteType      *string
	ApplicationDate *time.Time
	Deadline        *time.Time
	Status          *string
	Priority        *string
	Notes           *string
	ReferralName    *string
	ContactEmail    *string
	ContactPerson   *string
}

// IsEmpty reports whether the patch carries no fields at all.
func (p *ApplicationPatch) IsEmpty() bool {
	return p.CompanyName == nil && p.JobTitle == nil && p.JobURL == nil &&
		p.JobDescription == nil && p.Location == nil && p.SalaryMin == nil &&
		p.SalaryMax == nil && p.Currency == nil && p.JobType == nil &&
		p.RemoteType == nil && p.ApplicationDate == nil && p.Deadline == nil &&
		p.Status == nil && p.Priority == nil && p.Notes == nil &&
		p.ReferralName == nil && p.ContactEmail == nil && p.ContactPerson == nil
}

// ApplicationStats summarizes a user's applications.
type ApplicationStats struct {
	Total    int64            `json:"total_applications"`
	ByStatus map[string]int64 `json:"applications_by_status"`
}

// ApplicationFilter narrows application listings.
type ApplicationFilter struct {
	Status      *string // exact status match
	CompanyName *string // case-insensitive substring match
	Limit       int
	Offset      int
}
