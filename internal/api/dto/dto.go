package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type CreateJobRequest struct {
	ServiceType      string     `json:"serviceType" validate:"required"`
	SelectedServices []string   `json:"selectedServices"`
	StartDate        *time.Time `json:"startDate"`
	EndDate          *time.Time `json:"endDate"`
	MaxPrice         float64    `json:"maxPrice" validate:"gte=0"`
	SpecialistChoice string     `json:"specialistChoice"`
	AdditionalInfo   string     `json:"additionalInfo"`
	UserName         string     `json:"userName"`
}

func (r CreateJobRequest) Validate() error {
	return validate.Struct(r)
}

type ApplyRequest struct {
	UserName   string `json:"userName"`
	UserEmail  string `json:"userEmail" validate:"omitempty,email"`
	Quotation  string `json:"quotation"`
	Conditions string `json:"conditions"`
}

func (r ApplyRequest) Validate() error {
	return validate.Struct(r)
}

type UpsertUserRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email" validate:"omitempty,email"`
	Skills         string `json:"skills"`
	TelegramChatID int64  `json:"telegramChatId"`
}

func (r UpsertUserRequest) Validate() error {
	return validate.Struct(r)
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending accepted rejected"`
}

func (r UpdateApplicationStatusRequest) Validate() error {
	return validate.Struct(r)
}

type ApplicationDTO struct {
	ID                int    `json:"id"`
	JobID             int    `json:"jobId"`
	FreelancerClerkID string `json:"freelancerClerkId"`
	FreelancerName    string `json:"freelancerName"`
	FreelancerEmail   string `json:"freelancerEmail"`
	Quotation         string `json:"quotation"`
	Conditions        string `json:"conditions"`
	Status            string `json:"status"`
	CreatedAt         string `json:"createdAt"`
	UpdatedAt         string `json:"updatedAt"`
}

type UserDTO struct {
	ClerkID        string `json:"clerkId"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Skills         string `json:"skills"`
	TelegramChatID int64  `json:"telegramChatId"`
	CreatedAt      string `json:"createdAt"`
}

type JobDTO struct {
	ID               int        `json:"id"`
	ClerkID          string     `json:"clerkId"`
	UserName         string     `json:"userName"`
	ServiceType      string     `json:"serviceType"`
	SelectedServices []string   `json:"selectedServices"`
	StartDate        *time.Time `json:"startDate"`
	EndDate          *time.Time `json:"endDate"`
	MaxPrice         float64    `json:"maxPrice"`
	SpecialistChoice string     `json:"specialistChoice"`
	AdditionalInfo   string     `json:"additionalInfo"`
	Status           string     `json:"status"`
	CreatedAt        string     `json:"createdAt"`
}
