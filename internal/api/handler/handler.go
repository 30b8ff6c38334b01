package handler

import (
	"github.com/FlatBushZombies/quickhands/internal/realtime"
	"github.com/FlatBushZombies/quickhands/internal/services"
)

// ClerkIDKey is where the identity middleware stores the authenticated actor.
const ClerkIDKey = "clerkID"

type Dependencies struct {
	Jobs          *services.JobService
	Applications  *services.ApplicationService
	Notifications *services.NotificationService
	Users         *services.UserService
	Hub           *realtime.Hub
}

type JobHandler struct {
	jobs         *services.JobService
	applications *services.ApplicationService
}

func NewJobHandler(deps *Dependencies) *JobHandler {
	return &JobHandler{jobs: deps.Jobs, applications: deps.Applications}
}

type ApplicationHandler struct {
	applications *services.ApplicationService
}

func NewApplicationHandler(deps *Dependencies) *ApplicationHandler {
	return &ApplicationHandler{applications: deps.Applications}
}

type NotificationHandler struct {
	notifications *services.NotificationService
}

func NewNotificationHandler(deps *Dependencies) *NotificationHandler {
	return &NotificationHandler{notifications: deps.Notifications}
}

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(deps *Dependencies) *UserHandler {
	return &UserHandler{users: deps.Users}
}
