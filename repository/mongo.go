package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const mongoDatabase = "meenakshitravels"

func newMongoID() string {
	return primitive.NewObjectID().Hex()
}

// searchRegex builds a case-insensitive contains match for list search params.
func searchRegex(term string) bson.M {
	return bson.M{"$regex": primitive.Regex{Pattern: term, Options: "i"}}
}
