package events

import "github.com/FlatBushZombies/quickhands/internal/entities"

var ApplicationStatusChangedTopic = "ApplicationStatusChangedEvent"

type ApplicationStatusChanged struct {
	Job         entities.ServiceRequest
	Application entities.Application
	NewStatus   entities.ApplicationStatus
}
