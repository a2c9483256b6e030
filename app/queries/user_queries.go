package queries

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/thatboywest/elearningbackend/app/models"
)

// UserQueries is the persistence surface for the users collection.
// Lookups return mongo.ErrNoDocuments when the user is absent.
type UserQueries interface {
	Insert(ctx context.Context, user models.User) error
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByPhoneNumber(ctx context.Context, phoneNumber string) (models.User, error)
	GetByID(ctx context.Context, id uint64) (models.User, error)
}

type mongoUserQueries struct {
	collection *mongo.Collection
}

// NewUserQueries returns UserQueries backed by the users collection.
func NewUserQueries(db *mongo.Database) UserQueries {
	return &mongoUserQueries{collection: db.Collection("users")}
}

func (q *mongoUserQueries) Insert(ctx context.Context, user models.User) error {
	_, err := q.collection.InsertOne(ctx, user)
	return err
}

func (q *mongoUserQueries) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := q.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	return user, err
}

func (q *mongoUserQueries) GetByPhoneNumber(ctx context.Context, phoneNumber string) (models.User, error) {
	var user models.User
	err := q.collection.FindOne(ctx, bson.M{"phone_number": phoneNumber}).Decode(&user)
	return user, err
}

func (q *mongoUserQueries) GetByID(ctx context.Context, id uint64) (models.User, error) {
	var user models.User
	err := q.collection.FindOne(ctx, bson.M{"id": id}).Decode(&user)
	return user, err
}
