package models

// Application status values.
const (
	StatusApplied            = "applied"
	StatusReviewing          = "reviewing"
	StatusPhoneScreen        = "phone_screen"
	StatusTechnicalInterview = "technical_interview"
	StatusOnsiteInterview    = "onsite_interview"
	StatusFinalRound         = "final_round"
	StatusOffer              = "offer"
	StatusRejected           = "rejected"
	StatusWithdrawn          = "withdrawn"
	StatusAccepted           = "accepted"
)

// ApplicationStatuses lists every valid application status.
var ApplicationStatuses = []string{
	StatusApplied,
	StatusReviewing,
	StatusPhoneScreen,
	StatusTechnicalInterview,
	StatusOnsiteInterview,
	StatusFinalRound,
	StatusOffer,
	StatusRejected,
	StatusWithdrawn,
	StatusAccepted,
}

// Job type values.
const (
	JobTypeFullTime   = "full_time"
	JobTypePartTime   = "part_time"
	JobTypeContract   = "contract"
	JobTypeInternship = "internship"
	JobTypeFreelance  = "freelance"
)

// Remote work values.
const (
	RemoteOnSite = "on_site"
	RemoteRemote = "remote"
	RemoteHybrid = "hybrid"
)

// Priority values.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// IsValidStatus reports whether s is a known application status.
func IsValidStatus(s string) bool {
	for _, v := range ApplicationStatuses {
		if v == s {
			return true
		}
	}
	return false
}
