package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/FlatBushZombies/quickhands/internal/api/dto"
	"github.com/FlatBushZombies/quickhands/internal/domain"
	"github.com/FlatBushZombies/quickhands/internal/entities"
	"github.com/FlatBushZombies/quickhands/internal/logger"
	"github.com/FlatBushZombies/quickhands/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// CreateJob handles POST /api/jobs
func (h *JobHandler) CreateJob(c *gin.Context) {

	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	clerkID := c.GetString(ClerkIDKey)

	job := entities.NewServiceRequest(clerkID, req.UserName, req.ServiceType, req.SelectedServices)
	job.StartDate = req.StartDate
	job.EndDate = req.EndDate
	job.MaxPrice = req.MaxPrice
	job.SpecialistChoice = req.SpecialistChoice
	job.AdditionalInfo = req.AdditionalInfo

	if err := h.jobs.Create(c.Request.Context(), job); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to create job: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create service request"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Service request created successfully",
		"data":    toJobDTO(*job),
	})
}

// ListJobs handles GET /api/jobs
func (h *JobHandler) ListJobs(c *gin.Context) {

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	jobs, err := h.jobs.List(c.Request.Context(), limit, offset)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to list jobs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve service requests"})
		return
	}

	dtos := make([]dto.JobDTO, len(jobs))
	for i, job := range jobs {
		dtos[i] = toJobDTO(job)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Service requests fetched successfully",
		"data":    dtos,
	})
}

// GetJob handles GET /api/jobs/:id
func (h *JobHandler) GetJob(c *gin.Context) {

	jobID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Job id must be numeric"})
		return
	}

	job, err := h.jobs.GetByID(c.Request.Context(), jobID)
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Job not found"})
			return
		}
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to get job %v: %v", jobID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve service request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": toJobDTO(*job)})
}

// ApplyToJob handles POST /api/jobs/:id/apply
func (h *JobHandler) ApplyToJob(c *gin.Context) {

	jobID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Job id must be numeric"})
		return
	}

	// The body only carries display fields; the applicant comes from identity.
	var req dto.ApplyRequest
	if err = c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}
	if err = req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	clerkID := c.GetString(ClerkIDKey)

	application, err := h.applications.Apply(c.Request.Context(), jobID, clerkID, services.ApplicantProfile{
		Name:       req.UserName,
		Email:      req.UserEmail,
		Quotation:  req.Quotation,
		Conditions: req.Conditions,
	})
	if err != nil {
		h.renderApplyError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Application submitted successfully",
		"data":    toApplicationDTO(*application),
	})
}

func (h *JobHandler) renderApplyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrDuplicateApplication):
		// Retried submissions stay idempotent from the client's perspective.
		c.JSON(http.StatusOK, gin.H{
			"success":        true,
			"message":        "You have already applied to this job",
			"alreadyApplied": true,
		})
	case errors.Is(err, domain.ErrCapacityReached):
		c.JSON(http.StatusBadRequest, gin.H{
			"success":      false,
			"message":      "This job already has the maximum number of applications (5). Better luck next time!",
			"limitReached": true,
		})
	case errors.Is(err, domain.ErrJobClosed):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "This job is no longer accepting applications"})
	case errors.Is(err, domain.ErrSelfApplication):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "You cannot apply to your own job"})
	case errors.Is(err, domain.ErrJobNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Job not found"})
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	default:
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to apply: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to submit application"})
	}
}

// GetJobApplications handles GET /api/jobs/:id/applications
func (h *JobHandler) GetJobApplications(c *gin.Context) {

	jobID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Job id must be numeric"})
		return
	}

	clerkID := c.GetString(ClerkIDKey)

	applications, err := h.applications.ListByJob(c.Request.Context(), jobID, clerkID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrJobNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Job not found"})
		case errors.Is(err, domain.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "You do not have permission to view these applications"})
		default:
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to list applications: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve applications"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Applications retrieved successfully",
		"data":    toApplicationDTOs(applications),
	})
}
