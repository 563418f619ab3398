package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GoldRate struct {
	TwentyTwoCarat  float64 `bson:"twenty_two_carat"  json:"twentyTwoCarat"`
	TwentyFourCarat float64 `bson:"twenty_four_carat" json:"twentyFourCarat"`
}

type SilverRate struct {
	Fine     float64 `bson:"fine"     json:"fine"`
	Sterling float64 `bson:"sterling" json:"sterling"`
}

// Rates is a singleton: the store holds at most one document,
// lazily created with zero prices on first read.
type Rates struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	GoldRate   GoldRate           `bson:"gold_rate"     json:"goldRate"`
	SilverRate SilverRate         `bson:"silver_rate"   json:"silverRate"`
	UpdatedAt  time.Time          `bson:"updated_at"    json:"updatedAt"`
}
