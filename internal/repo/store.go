package repo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	Client           *mongo.Client
	DB               *mongo.Database
	colUsers         *mongo.Collection
	colRates         *mongo.Collection
	colPayments      *mongo.Collection
	colNotifications *mongo.Collection
}

func NewStore(ctx context.Context, uri, dbname string) (*Store, error) {
	cli, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetRetryWrites(true).
		SetMaxPoolSize(50),
	)
	if err != nil {
		return nil, err
	}
	if err := cli.Ping(ctx, nil); err != nil {
		return nil, err
	}
	db := cli.Database(dbname)
	return &Store{
		Client:           cli,
		DB:               db,
		colUsers:         db.Collection("users"),
		colRates:         db.Collection("rates"),
		colPayments:      db.Collection("payments"),
		colNotifications: db.Collection("notifications"),
	}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.Client.Ping(ctx, nil)
}

func (s *Store) Close(ctx context.Context) error { return s.Client.Disconnect(ctx) }

// EnsureIndexes creates the uniqueness and sort indexes the handlers rely on.
// The unique index on razorpay_payment_id is the at-most-once boundary for
// payment recording; mobile_number uniqueness backs registration conflicts.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	if _, err := s.colUsers.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "mobile_number", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_mobile"),
	}); err != nil {
		return err
	}

	if _, err := s.colPayments.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "razorpay_payment_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_razorpay_payment"),
	}); err != nil {
		return err
	}

	_, err := s.colNotifications.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "target_role", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("role_created_desc"),
		},
		{
			Keys:    bson.D{{Key: "target_user_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("user_created_desc"),
		},
	})
	return err
}

func IsDup(err error) bool {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	var ce *mongo.CommandError
	if errors.As(err, &ce) && ce.Code == 11000 {
		return true
	}
	return false
}
