package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tazhibayda/jewel-service/internal/domain"
)

// GetCurrentRates returns the singleton rate document, creating it with
// zero-valued tiers if absent. The upsert makes the lazy init atomic:
// concurrent cold reads cannot produce two singletons.
func (s *Store) GetCurrentRates(ctx context.Context) (*domain.Rates, error) {
	var r domain.Rates
	err := s.colRates.FindOneAndUpdate(ctx,
		bson.M{},
		bson.M{"$setOnInsert": bson.M{
			"gold_rate":   domain.GoldRate{},
			"silver_rate": domain.SilverRate{},
			"updated_at":  time.Now().UTC(),
		}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&r)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ReplaceCurrentRates overwrites the whole nested rate structure in one
// upsert. Full replacement, not a merge: fields missing from the input
// come back zeroed.
func (s *Store) ReplaceCurrentRates(ctx context.Context, gold domain.GoldRate, silver domain.SilverRate) (*domain.Rates, error) {
	var r domain.Rates
	err := s.colRates.FindOneAndUpdate(ctx,
		bson.M{},
		bson.M{"$set": bson.M{
			"gold_rate":   gold,
			"silver_rate": silver,
			"updated_at":  time.Now().UTC(),
		}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&r)
	if err != nil {
		return nil, err
	}
	return &r, nil
}
