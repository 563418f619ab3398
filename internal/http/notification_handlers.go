package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/tazhibayda/jewel-service/internal/domain"
	"github.com/tazhibayda/jewel-service/internal/log"
)

// GetNotifications godoc
// @Summary Role-filtered notifications, newest first
// @Description Admins get every admin-targeted record; a user gets only
// @Description records bound to their own id. No pagination.
// @Tags notifications
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Notification
// @Failure 401 {object} map[string]string
// @Router /api/notifications/getNotifications [get]
func (h *Handler) GetNotifications(c *gin.Context) {
	au, _ := c.Get(authUserKey)
	user := au.(AuthUser)

	var (
		list []domain.Notification
		err  error
	)
	if user.Role == domain.RoleAdmin {
		list, err = h.Store.ListNotifications(c.Request.Context(), domain.RoleAdmin, nil)
	} else {
		uid, perr := primitive.ObjectIDFromHex(user.UID)
		if perr != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user id in token"})
			return
		}
		list, err = h.Store.ListNotifications(c.Request.Context(), domain.RoleUser, &uid)
	}
	if err != nil {
		log.L().Error("list notifications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load notifications"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// MarkNotificationRead godoc
// @Summary Mark one notification as read
// @Tags notifications
// @Security BearerAuth
// @Produce json
// @Param id path string true "notification id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/notifications/{id}/read [put]
func (h *Handler) MarkNotificationRead(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification id"})
		return
	}
	if err := h.Store.MarkNotificationRead(c.Request.Context(), id); err != nil {
		if err == domain.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
			return
		}
		log.L().Error("mark read", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update notification"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "marked read"})
}
