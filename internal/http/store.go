package http

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tazhibayda/jewel-service/internal/domain"
)

// Store is the persistence surface the handlers need. *repo.Store is the
// production implementation; tests run against an in-memory fake.
type Store interface {
	Ping(ctx context.Context) error

	CreateUser(ctx context.Context, u *domain.User) error
	FindUserByMobile(ctx context.Context, mobile string) (*domain.User, error)
	FindUserByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	UpdateMpin(ctx context.Context, mobile, mpinHash string) error

	GetCurrentRates(ctx context.Context) (*domain.Rates, error)
	ReplaceCurrentRates(ctx context.Context, gold domain.GoldRate, silver domain.SilverRate) (*domain.Rates, error)

	InsertPayment(ctx context.Context, p *domain.Payment) error
	InsertNotification(ctx context.Context, n *domain.Notification) error
	ListNotifications(ctx context.Context, role domain.Role, userID *primitive.ObjectID) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, id primitive.ObjectID) error
}
