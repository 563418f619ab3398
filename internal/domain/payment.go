package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is immutable once written. The unique index on
// razorpay_payment_id makes recording at-most-once.
type Payment struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"       json:"id"`
	UserID            primitive.ObjectID `bson:"user_id"             json:"userId"`
	AmountPaid        float64            `bson:"amount_paid"         json:"amountPaid"`
	RazorpayPaymentID string             `bson:"razorpay_payment_id" json:"razorpayPaymentId"`
	SchemeName        string             `bson:"scheme_name,omitempty" json:"schemeName,omitempty"`
	CreatedAt         time.Time          `bson:"created_at"          json:"createdAt"`
}

// Notification targets either every admin (TargetRole=Admin,
// TargetUserID nil) or one user (TargetRole=User).
type Notification struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty"            json:"id"`
	Message      string              `bson:"message"                  json:"message"`
	TargetRole   Role                `bson:"target_role"              json:"targetRole"`
	TargetUserID *primitive.ObjectID `bson:"target_user_id,omitempty" json:"targetUserId,omitempty"`
	AmountPaid   float64             `bson:"amount_paid"              json:"amountPaid"`
	UserMobile   string              `bson:"user_mobile"              json:"userMobile"`
	IsRead       bool                `bson:"is_read"                  json:"isRead"`
	CreatedAt    time.Time           `bson:"created_at"               json:"createdAt"`
}
