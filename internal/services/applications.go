package services

import (
	"context"

	"github.com/FlatBushZombies/quickhands/internal/domain"
	"github.com/FlatBushZombies/quickhands/internal/entities"
	"github.com/FlatBushZombies/quickhands/internal/events"
	"github.com/FlatBushZombies/quickhands/internal/metrics"
	"github.com/asaskevich/EventBus"
	"github.com/pkg/errors"
)

type applicationRepository interface {
	CreateAdmitted(ctx context.Context, app *entities.Application, maxPerJob int) error
	GetByID(ctx context.Context, ID int) (*entities.Application, error)
	GetByJob(ctx context.Context, jobID int) ([]entities.Application, error)
	GetByFreelancer(ctx context.Context, clerkID string) ([]entities.Application, error)
	CountByJob(ctx context.Context, jobID int) (int64, error)
	UpdateStatus(ctx context.Context, ID int, status entities.ApplicationStatus) (*entities.Application, error)
}

type ApplicationService struct {
	bus          EventBus.Bus
	jobs         jobRepository
	applications applicationRepository
}

func NewApplicationService(bus EventBus.Bus, jobs jobRepository, applications applicationRepository) *ApplicationService {
	return &ApplicationService{bus: bus, jobs: jobs, applications: applications}
}

// ApplicantProfile is the display and offer data submitted with an
// application; the applicant identity itself comes from the caller.
type ApplicantProfile struct {
	Name       string
	Email      string
	Quotation  string
	Conditions string
}

// Apply gates an application and persists it. The owner and capacity checks
// here are pre-checks; the store enforces uniqueness and the capacity cap
// atomically with the insert, so two racing requests cannot both land row #6.
func (s *ApplicationService) Apply(ctx context.Context, jobID int, actorID string,
	profile ApplicantProfile) (*entities.Application, error) {

	if actorID == "" {
		return nil, errors.Wrap(domain.ErrValidation, "applicant is required")
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if job.Status == entities.JobClosed {
		metrics.ApplicationsRejectedCounter.WithLabelValues("closed").Inc()
		return nil, domain.ErrJobClosed
	}

	if job.ClerkID == actorID {
		metrics.ApplicationsRejectedCounter.WithLabelValues("self").Inc()
		return nil, domain.ErrSelfApplication
	}

	count, err := s.applications.CountByJob(ctx, jobID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count applications")
	}
	if count >= entities.MaxApplicationsPerJob {
		metrics.ApplicationsRejectedCounter.WithLabelValues("capacity").Inc()
		return nil, domain.ErrCapacityReached
	}

	name := profile.Name
	if name == "" {
		name = "Freelancer"
	}

	app := &entities.Application{
		JobID:             jobID,
		FreelancerClerkID: actorID,
		FreelancerName:    name,
		FreelancerEmail:   profile.Email,
		Quotation:         profile.Quotation,
		Conditions:        profile.Conditions,
		Status:            entities.ApplicationPending,
	}

	if err = s.applications.CreateAdmitted(ctx, app, entities.MaxApplicationsPerJob); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateApplication):
			metrics.ApplicationsRejectedCounter.WithLabelValues("duplicate").Inc()
		case errors.Is(err, domain.ErrCapacityReached):
			metrics.ApplicationsRejectedCounter.WithLabelValues("capacity").Inc()
		}
		return nil, err
	}

	metrics.ApplicationsAdmittedCounter.Inc()
	s.bus.Publish(events.ApplicationSubmittedTopic, events.ApplicationSubmitted{Job: *job, Application: *app})
	return app, nil
}

// UpdateStatus accepts or rejects an application; only the job owner may do it.
func (s *ApplicationService) UpdateStatus(ctx context.Context, appID int, status entities.ApplicationStatus,
	actorID string) (*entities.Application, error) {

	app, err := s.applications.GetByID(ctx, appID)
	if err != nil {
		return nil, err
	}

	job, err := s.jobs.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, err
	}

	if job.ClerkID != actorID {
		return nil, domain.ErrPermissionDenied
	}

	updated, err := s.applications.UpdateStatus(ctx, appID, status)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(events.ApplicationStatusChangedTopic, events.ApplicationStatusChanged{
		Job:         *job,
		Application: *updated,
		NewStatus:   status,
	})
	return updated, nil
}

func (s *ApplicationService) ListByJob(ctx context.Context, jobID int, actorID string) ([]entities.Application, error) {

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.ClerkID != actorID {
		return nil, domain.ErrPermissionDenied
	}

	return s.applications.GetByJob(ctx, jobID)
}

func (s *ApplicationService) ListByFreelancer(ctx context.Context, clerkID string) ([]entities.Application, error) {
	return s.applications.GetByFreelancer(ctx, clerkID)
}
