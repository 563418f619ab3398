package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/tazhibayda/jewel-service/internal/domain"
	"github.com/tazhibayda/jewel-service/internal/log"
	"github.com/tazhibayda/jewel-service/internal/metrics"
	"github.com/tazhibayda/jewel-service/internal/queue"
)

type createOrderReq struct {
	Amount int64 `json:"amount"` // major units; the gateway gets paise
}

// CreateOrder godoc
// @Summary Create a Razorpay order
// @Tags payment
// @Accept json
// @Produce json
// @Param payload body createOrderReq true "amount in major units"
// @Success 200 {object} payments.Order
// @Failure 400 {object} map[string]string
// @Router /api/payment/create-order [post]
func (h *Handler) CreateOrder(c *gin.Context) {
	var in createOrderReq
	if err := c.ShouldBindJSON(&in); err != nil || in.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be a positive number"})
		return
	}
	o, err := h.Gateway.CreateOrder(c.Request.Context(), in.Amount)
	if err != nil {
		log.L().Error("create order", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create order"})
		return
	}
	c.JSON(http.StatusOK, o)
}

type verifyReq struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Signature string `json:"signature"`
}

// VerifyPayment godoc
// @Summary Verify a Razorpay checkout signature
// @Tags payment
// @Accept json
// @Produce json
// @Param payload body verifyReq true "orderId, paymentId, signature"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/payment/verify [post]
func (h *Handler) VerifyPayment(c *gin.Context) {
	var in verifyReq
	if err := c.ShouldBindJSON(&in); err != nil || in.OrderID == "" || in.PaymentID == "" || in.Signature == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "orderId, paymentId and signature are required"})
		return
	}
	if !h.Gateway.Verify(in.OrderID, in.PaymentID, in.Signature) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "payment verified"})
}

type recordSuccessReq struct {
	UserID     string  `json:"userId"`
	Amount     float64 `json:"amount"`
	PaymentID  string  `json:"paymentId"`
	UserMobile string  `json:"userMobile"`
	SchemeName string  `json:"schemeName"`
}

// RecordSuccess godoc
// @Summary Record a confirmed payment and fan out notifications
// @Description The payment insert is the unit of success; the two
// @Description notification writes after it are best-effort and a failure
// @Description there is reported without undoing the payment.
// @Tags payment
// @Accept json
// @Produce json
// @Param payload body recordSuccessReq true "payment"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/payment/recordSuccess [post]
func (h *Handler) RecordSuccess(c *gin.Context) {
	var in recordSuccessReq
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if in.UserID == "" || in.Amount <= 0 || in.PaymentID == "" || in.UserMobile == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId, amount, paymentId and userMobile are required"})
		return
	}
	uid, err := primitive.ObjectIDFromHex(in.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid userId"})
		return
	}

	p := &domain.Payment{
		UserID:            uid,
		AmountPaid:        in.Amount,
		RazorpayPaymentID: in.PaymentID,
		SchemeName:        in.SchemeName,
	}
	if err := h.Store.InsertPayment(c.Request.Context(), p); err != nil {
		if err == domain.ErrDuplicatePayment {
			metrics.PaymentDuplicates.Inc()
			c.JSON(http.StatusConflict, gin.H{"error": "payment already recorded"})
			return
		}
		log.L().Error("insert payment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not record payment"})
		return
	}
	metrics.PaymentsRecorded.Inc()

	notified := true
	WithSpan(c.Request.Context(), "payment.notify", func(ctx context.Context) {
		adminMsg := fmt.Sprintf("Payment of ₹%.2f received from %s", in.Amount, in.UserMobile)
		if err := h.Store.InsertNotification(ctx, &domain.Notification{
			Message:    adminMsg,
			TargetRole: domain.RoleAdmin,
			AmountPaid: in.Amount,
			UserMobile: in.UserMobile,
		}); err != nil {
			notified = false
			log.WithDD(ctx, log.L()).Error("admin notification", zap.Error(err))
		}

		userMsg := fmt.Sprintf("Your payment of ₹%.2f was successful", in.Amount)
		if in.SchemeName != "" {
			userMsg = fmt.Sprintf("Your payment of ₹%.2f towards %s was successful", in.Amount, in.SchemeName)
		}
		if err := h.Store.InsertNotification(ctx, &domain.Notification{
			Message:      userMsg,
			TargetRole:   domain.RoleUser,
			TargetUserID: &uid,
			AmountPaid:   in.Amount,
			UserMobile:   in.UserMobile,
		}); err != nil {
			notified = false
			log.WithDD(ctx, log.L()).Error("user notification", zap.Error(err))
		}
	})

	go h.Events.Publish(c.Request.Context(), eventsExchange, "payment.recorded",
		queue.PaymentRecorded{UserID: uid, PaymentID: in.PaymentID, Amount: in.Amount, Mobile: in.UserMobile},
		h.reqID(c))

	c.JSON(http.StatusOK, gin.H{"payment": p, "notified": notified})
}
