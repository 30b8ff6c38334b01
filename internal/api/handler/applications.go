package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/FlatBushZombies/quickhands/internal/api/dto"
	"github.com/FlatBushZombies/quickhands/internal/domain"
	"github.com/FlatBushZombies/quickhands/internal/entities"
	"github.com/FlatBushZombies/quickhands/internal/logger"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// GetMyApplications handles GET /api/applications/my
func (h *ApplicationHandler) GetMyApplications(c *gin.Context) {

	clerkID := c.GetString(ClerkIDKey)

	applications, err := h.applications.ListByFreelancer(c.Request.Context(), clerkID)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to list own applications: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve your applications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Your applications retrieved successfully",
		"data":    toApplicationDTOs(applications),
	})
}

// UpdateApplicationStatus handles PATCH /api/applications/:id/status
func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {

	appID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Application id must be numeric"})
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Status is required"})
		return
	}
	if err = req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	status, err := entities.ToApplicationStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	clerkID := c.GetString(ClerkIDKey)

	updated, err := h.applications.UpdateStatus(c.Request.Context(), appID, status, clerkID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrApplicationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Application not found"})
		case errors.Is(err, domain.ErrJobNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Job not found"})
		case errors.Is(err, domain.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "You do not have permission to update this application"})
		default:
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to update application status: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update application status"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Application status updated successfully",
		"data":    toApplicationDTO(*updated),
	})
}

func toApplicationDTO(app entities.Application) dto.ApplicationDTO {
	return dto.ApplicationDTO{
		ID:                app.ID,
		JobID:             app.JobID,
		FreelancerClerkID: app.FreelancerClerkID,
		FreelancerName:    app.FreelancerName,
		FreelancerEmail:   app.FreelancerEmail,
		Quotation:         app.Quotation,
		Conditions:        app.Conditions,
		Status:            string(app.Status),
		CreatedAt:         app.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         app.UpdatedAt.Format(time.RFC3339),
	}
}

func toApplicationDTOs(apps []entities.Application) []dto.ApplicationDTO {
	dtos := make([]dto.ApplicationDTO, len(apps))
	for i, app := range apps {
		dtos[i] = toApplicationDTO(app)
	}
	return dtos
}

func toJobDTO(job entities.ServiceRequest) dto.JobDTO {
	return dto.JobDTO{
		ID:               job.ID,
		ClerkID:          job.ClerkID,
		UserName:         job.UserName,
		ServiceType:      job.ServiceType,
		SelectedServices: job.SelectedServicesAsArray(),
		StartDate:        job.StartDate,
		EndDate:          job.EndDate,
		MaxPrice:         job.MaxPrice,
		SpecialistChoice: job.SpecialistChoice,
		AdditionalInfo:   job.AdditionalInfo,
		Status:           string(job.Status),
		CreatedAt:        job.CreatedAt.Format(time.RFC3339),
	}
}
