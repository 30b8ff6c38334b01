package events

import "github.com/FlatBushZombies/quickhands/internal/entities"

var ApplicationSubmittedTopic = "ApplicationSubmittedEvent"

type ApplicationSubmitted struct {
	Job         entities.ServiceRequest
	Application entities.Application
}
