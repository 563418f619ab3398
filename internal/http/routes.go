package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/tazhibayda/jewel-service/docs"
)

func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(CORS())
	r.Use(Metrics())

	r.GET("/healthz", h.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := r.Group("/api/auth", RateLimit(h.Redis, h.RateLimitPerMin))
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/reset-mpin", h.ResetMpin)
	}

	rates := r.Group("/api/rates")
	{
		rates.GET("", h.GetRates) // public
		rates.PUT("/update", AuthJWT(h.JWTSecret), RequireAdmin(), h.UpdateRates)
	}

	pay := r.Group("/api/payment")
	{
		pay.POST("/create-order", h.CreateOrder)
		pay.POST("/verify", h.VerifyPayment)
		// trusted caller: the client invokes this only after /verify passes
		pay.POST("/recordSuccess", h.RecordSuccess)
	}

	notif := r.Group("/api/notifications", AuthJWT(h.JWTSecret))
	{
		notif.GET("/getNotifications", h.GetNotifications)
		notif.PUT("/:id/read", h.MarkNotificationRead)
	}

	return r
}
