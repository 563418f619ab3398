package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tazhibayda/jewel-service/internal/domain"
	"github.com/tazhibayda/jewel-service/internal/helper"
	"github.com/tazhibayda/jewel-service/internal/log"
	"github.com/tazhibayda/jewel-service/internal/payments"
	"github.com/tazhibayda/jewel-service/internal/queue"
	"github.com/tazhibayda/jewel-service/internal/repo"
	"github.com/tazhibayda/jewel-service/internal/security"
)

const eventsExchange = "jewel.events"

type Handler struct {
	Store           Store
	JWTSecret       string
	AccessTTL       time.Duration
	Admins          map[string]bool
	Gateway         *payments.Gateway
	Events          queue.Publisher
	Redis           *repo.Redis
	RateLimitPerMin int
}

func NewHandler(store Store, jwtSecret string, accessTTLHours int, admins map[string]bool,
	gw *payments.Gateway, rds *repo.Redis, rlPerMin int, pub queue.Publisher) *Handler {
	return &Handler{
		Store:           store,
		JWTSecret:       jwtSecret,
		AccessTTL:       time.Duration(accessTTLHours) * time.Hour,
		Admins:          admins,
		Gateway:         gw,
		Events:          pub,
		Redis:           rds,
		RateLimitPerMin: rlPerMin,
	}
}

func (h *Handler) reqID(c *gin.Context) string {
	if v, ok := c.Get("X-Request-ID"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

type registerReq struct {
	Name         string `json:"name"`
	MobileNumber string `json:"mobileNumber"`
	Location     string `json:"location"`
	Mpin         string `json:"mpin"`
}

// Register godoc
// @Summary Register user
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body registerReq true "register"
// @Success 201 {object} domain.User
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var in registerReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	mobile := strings.TrimSpace(in.MobileNumber)
	if strings.TrimSpace(in.Name) == "" || mobile == "" || strings.TrimSpace(in.Location) == "" || in.Mpin == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, mobileNumber, location and mpin are required"})
		return
	}
	if u, _ := h.Store.FindUserByMobile(c.Request.Context(), mobile); u != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "mobile number already registered"})
		return
	}
	hash, err := security.HashMpin(in.Mpin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "hash failed"})
		return
	}

	// Role is decided once, here, against the injected allowlist. No exposed
	// operation changes it afterwards.
	role := domain.RoleUser
	if h.Admins[mobile] {
		role = domain.RoleAdmin
	}

	u := &domain.User{
		Name:         strings.TrimSpace(in.Name),
		MobileNumber: mobile,
		Location:     strings.TrimSpace(in.Location),
		MpinHash:     hash,
		Role:         role,
	}
	if err := h.Store.CreateUser(c.Request.Context(), u); err != nil {
		if err == domain.ErrDuplicateUser {
			c.JSON(http.StatusConflict, gin.H{"error": "mobile number already registered"})
			return
		}
		log.L().Error("create user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	log.L().Info("user registered",
		zap.String("mobile_hash", helper.Hash8(mobile)),
		zap.String("role", string(role)))
	go h.Events.Publish(c.Request.Context(), eventsExchange, "user.registered",
		queue.UserRegistered{UserID: u.ID, Mobile: u.MobileNumber, Name: u.Name, Role: string(u.Role)},
		h.reqID(c))

	c.JSON(http.StatusCreated, u)
}

type loginReq struct {
	MobileNumber string `json:"mobileNumber"`
	Mpin         string `json:"mpin"`
}

// Login godoc
// @Summary Login with mobile number and MPIN
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body loginReq true "login"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var in loginReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	mobile := strings.TrimSpace(in.MobileNumber)
	u, err := h.Store.FindUserByMobile(c.Request.Context(), mobile)
	if err != nil {
		log.L().Error("find user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}
	if u == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if !security.CheckMpin(u.MpinHash, in.Mpin) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "wrong mpin"})
		return
	}

	tok, err := security.MakeAccess(h.JWTSecret, u.ID.Hex(), u.Role, h.AccessTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": u, "accessToken": tok})
}

type resetMpinReq struct {
	MobileNumber string `json:"mobileNumber"`
	NewMpin      string `json:"newMpin"`
}

// ResetMpin godoc
// @Summary Reset MPIN
// @Description Unauthenticated by observed contract; an out-of-band
// @Description verification step (OTP) belongs in front of this in production.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body resetMpinReq true "reset"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/auth/reset-mpin [post]
func (h *Handler) ResetMpin(c *gin.Context) {
	var in resetMpinReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if strings.TrimSpace(in.MobileNumber) == "" || len(in.NewMpin) != 4 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "newMpin must be exactly 4 digits"})
		return
	}
	hash, err := security.HashMpin(in.NewMpin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "hash failed"})
		return
	}
	if err := h.Store.UpdateMpin(c.Request.Context(), strings.TrimSpace(in.MobileNumber), hash); err != nil {
		if err == domain.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		log.L().Error("update mpin", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "reset failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "mpin updated"})
}

func (h *Handler) Healthz(c *gin.Context) {
	if err := h.Store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
