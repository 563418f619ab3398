package queue

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Publisher interface {
	Publish(ctx context.Context, exchange, key string, event any, reqID string) error
	Close() error
}

type NoopPub struct{}

func NewNoop() Publisher { return NoopPub{} }

func (NoopPub) Publish(ctx context.Context, exchange, key string, event any, reqID string) error {
	return nil
}
func (NoopPub) Close() error { return nil }

type UserRegistered struct {
	UserID primitive.ObjectID `json:"user_id"`
	Mobile string             `json:"mobile"`
	Name   string             `json:"name"`
	Role   string             `json:"role"`
}

type PaymentRecorded struct {
	UserID    primitive.ObjectID `json:"user_id"`
	PaymentID string             `json:"payment_id"`
	Amount    float64            `json:"amount"`
	Mobile    string             `json:"mobile"`
}
