package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SetupIndexes creates the unique indexes the collections rely on:
// snowflake id on every collection, plus email and phone number on users.
func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	unique := func(field string) mongo.IndexModel {
		return mongo.IndexModel{
			Keys:    bson.M{field: 1},
			Options: options.Index().SetUnique(true),
		}
	}

	for _, collection := range []string{"courses", "chapters", "users"} {
		if _, err := db.Collection(collection).Indexes().CreateOne(ctx, unique("id")); err != nil {
			return fmt.Errorf("error creating id index on %s: %w", collection, err)
		}
	}

	userIndexes := []mongo.IndexModel{unique("email"), unique("phone_number")}
	if _, err := db.Collection("users").Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("error creating user indexes: %w", err)
	}

	return nil
}
