package entities

import (
	"strings"
	"time"

	"github.com/samber/lo"
)

type JobStatus string

const (
	JobOpen   JobStatus = "open"
	JobClosed JobStatus = "closed"
)

// ServiceRequest is a job posted by a client. SelectedServices is stored as a
// comma-joined string, same way schedules are stored for searches.
type ServiceRequest struct {
	ID               int
	ClerkID          string `gorm:"index"`
	UserName         string
	ServiceType      string
	SelectedServices string
	StartDate        *time.Time
	EndDate          *time.Time
	MaxPrice         float64
	SpecialistChoice string
	AdditionalInfo   string
	Status           JobStatus `gorm:"default:open"`
	CreatedAt        time.Time
}

func NewServiceRequest(clerkID, userName, serviceType string, selectedServices []string) *ServiceRequest {
	return &ServiceRequest{
		ClerkID:          clerkID,
		UserName:         userName,
		ServiceType:      serviceType,
		SelectedServices: strings.Join(selectedServices, ","),
		Status:           JobOpen,
	}
}

func (s *ServiceRequest) SelectedServicesAsArray() []string {
	if s.SelectedServices == "" {
		return []string{}
	}

	return lo.Map(strings.Split(s.SelectedServices, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	})
}
