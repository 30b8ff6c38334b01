package events

import "github.com/FlatBushZombies/quickhands/internal/entities"

var JobPostedTopic = "JobPostedEvent"

type JobPosted struct {
	Job entities.ServiceRequest
}
