package services

import (
	"context"

	"github.com/FlatBushZombies/quickhands/internal/domain"
	"github.com/FlatBushZombies/quickhands/internal/entities"
	"github.com/FlatBushZombies/quickhands/internal/events"
	"github.com/asaskevich/EventBus"
	"github.com/pkg/errors"
)

type jobRepository interface {
	Add(ctx context.Context, job *entities.ServiceRequest) error
	GetByID(ctx context.Context, ID int) (*entities.ServiceRequest, error)
	Get(ctx context.Context, limit int, offset int) ([]entities.ServiceRequest, error)
}

type JobService struct {
	bus  EventBus.Bus
	jobs jobRepository
}

func NewJobService(bus EventBus.Bus, jobs jobRepository) *JobService {
	return &JobService{bus: bus, jobs: jobs}
}

// Create persists the service request and announces it on the bus. The job
// itself is committed before any notification work starts; whatever happens
// downstream cannot fail the posting.
func (s *JobService) Create(ctx context.Context, job *entities.ServiceRequest) error {

	if job.ServiceType == "" {
		return errors.Wrap(domain.ErrValidation, "service type is required")
	}
	if job.ClerkID == "" {
		return errors.Wrap(domain.ErrValidation, "owner is required")
	}

	if err := s.jobs.Add(ctx, job); err != nil {
		return errors.Wrap(err, "failed to create service request")
	}

	s.bus.Publish(events.JobPostedTopic, events.JobPosted{Job: *job})
	return nil
}

func (s *JobService) GetByID(ctx context.Context, ID int) (*entities.ServiceRequest, error) {
	return s.jobs.GetByID(ctx, ID)
}

func (s *JobService) List(ctx context.Context, limit int, offset int) ([]entities.ServiceRequest, error) {
	return s.jobs.Get(ctx, limit, offset)
}
