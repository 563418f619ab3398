package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"

	"github.com/tazhibayda/jewel-service/internal/domain"
)

// InsertPayment appends to the ledger. A duplicate razorpay_payment_id
// surfaces as domain.ErrDuplicatePayment via the unique index.
func (s *Store) InsertPayment(ctx context.Context, p *domain.Payment) error {
	sp, ctx := tracer.StartSpanFromContext(ctx, "mongo.payment.insert",
		tracer.Tag("payment_id", p.RazorpayPaymentID),
	)
	defer sp.Finish()

	p.CreatedAt = time.Now().UTC()
	res, err := s.colPayments.InsertOne(ctx, p)
	if err != nil {
		sp.SetTag("error", err)
		if IsDup(err) {
			return domain.ErrDuplicatePayment
		}
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return nil
}

func (s *Store) InsertNotification(ctx context.Context, n *domain.Notification) error {
	sp, ctx := tracer.StartSpanFromContext(ctx, "mongo.notification.insert",
		tracer.Tag("target_role", string(n.TargetRole)),
	)
	defer sp.Finish()

	n.CreatedAt = time.Now().UTC()
	res, err := s.colNotifications.InsertOne(ctx, n)
	if err != nil {
		sp.SetTag("error", err)
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		n.ID = oid
	}
	return nil
}

// ListNotifications returns role-filtered records, newest first, unbounded.
// Admins see every admin-targeted record; a user sees only their own.
func (s *Store) ListNotifications(ctx context.Context, role domain.Role, userID *primitive.ObjectID) ([]domain.Notification, error) {
	filter := bson.M{"target_role": role}
	if role != domain.RoleAdmin && userID != nil {
		filter["target_user_id"] = *userID
	}
	cur, err := s.colNotifications.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []domain.Notification{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) MarkNotificationRead(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.colNotifications.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_read": true}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
