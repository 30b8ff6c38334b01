package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/FlatBushZombies/quickhands/internal/api/dto"
	"github.com/FlatBushZombies/quickhands/internal/domain"
	"github.com/FlatBushZombies/quickhands/internal/entities"
	"github.com/FlatBushZombies/quickhands/internal/logger"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// UpsertUser handles POST /api/users
// The same endpoint creates the profile on first contact and updates it on
// every later call; the actor can only write their own profile.
func (h *UserHandler) UpsertUser(c *gin.Context) {

	var req dto.UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	clerkID := c.GetString(ClerkIDKey)

	user := &entities.User{
		ClerkID:        clerkID,
		Name:           req.Name,
		Email:          req.Email,
		Skills:         req.Skills,
		TelegramChatID: req.TelegramChatID,
	}

	saved, err := h.users.Upsert(c.Request.Context(), user)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to save user profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save user profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User profile saved successfully",
		"data":    toUserDTO(*saved),
	})
}

// GetUser handles GET /api/users/:clerkId
func (h *UserHandler) GetUser(c *gin.Context) {

	clerkID := c.Param("clerkId")

	user, err := h.users.GetByClerkID(c.Request.Context(), clerkID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to get user %v: %v", clerkID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": toUserDTO(*user)})
}

func toUserDTO(user entities.User) dto.UserDTO {
	return dto.UserDTO{
		ClerkID:        user.ClerkID,
		Name:           user.Name,
		Email:          user.Email,
		Skills:         user.Skills,
		TelegramChatID: user.TelegramChatID,
		CreatedAt:      user.CreatedAt.Format(time.RFC3339),
	}
}
