package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleUser  Role = "User"
	RoleAdmin Role = "Admin"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"  json:"id"`
	Name         string             `bson:"name"           json:"name"`
	MobileNumber string             `bson:"mobile_number"  json:"mobileNumber"`
	Location     string             `bson:"location"       json:"location"`
	MpinHash     string             `bson:"mpin_hash"      json:"-"`
	Role         Role               `bson:"role"           json:"role"`
	CreatedAt    time.Time          `bson:"created_at"     json:"createdAt"`
}
