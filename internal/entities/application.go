package entities

import (
	"errors"
	"time"
)

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

func ToApplicationStatus(s string) (ApplicationStatus, error) {
	switch s {
	case string(ApplicationPending):
		return ApplicationPending, nil
	case string(ApplicationAccepted):
		return ApplicationAccepted, nil
	case string(ApplicationRejected):
		return ApplicationRejected, nil
	default:
		return "", errors.New("invalid application status")
	}
}

// MaxApplicationsPerJob caps how many applications one service request may
// collect; admission is enforced inside the insert transaction.
const MaxApplicationsPerJob = 5

type Application struct {
	ID                int
	JobID             int    `gorm:"index"`
	FreelancerClerkID string `gorm:"index"`
	FreelancerName    string
	FreelancerEmail   string
	Quotation         string
	Conditions        string
	Status            ApplicationStatus `gorm:"default:pending"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
