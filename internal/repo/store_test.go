package repo

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestIsDup(t *testing.T) {
	we := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}
	if !IsDup(we) {
		t.Fatal("E11000 write error not detected")
	}
	ce := &mongo.CommandError{Code: 11000}
	if !IsDup(ce) {
		t.Fatal("E11000 command error not detected")
	}
	if IsDup(errors.New("boom")) {
		t.Fatal("arbitrary error classified as duplicate")
	}
	if IsDup(mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 121}}}) {
		t.Fatal("non-11000 write error classified as duplicate")
	}
}
