package queries

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/thatboywest/elearningbackend/app/models"
)

// CourseQueries is the persistence surface for the courses collection.
// Lookups return mongo.ErrNoDocuments when the course is absent.
type CourseQueries interface {
	Insert(ctx context.Context, course models.Course) error
	GetByID(ctx context.Context, id uint64) (models.Course, error)
	GetAll(ctx context.Context) ([]models.Course, error)
	UpdateTitle(ctx context.Context, id uint64, title string) error
	PushChapter(ctx context.Context, courseID uint64, chapterID uint64) error
	PullChapter(ctx context.Context, courseID uint64, chapterID uint64) error
	Delete(ctx context.Context, id uint64) error
}

type mongoCourseQueries struct {
	collection *mongo.Collection
}

// NewCourseQueries returns CourseQueries backed by the courses collection.
func NewCourseQueries(db *mongo.Database) CourseQueries {
	return &mongoCourseQueries{collection: db.Collection("courses")}
}

func (q *mongoCourseQueries) Insert(ctx context.Context, course models.Course) error {
	_, err := q.collection.InsertOne(ctx, course)
	return err
}

func (q *mongoCourseQueries) GetByID(ctx context.Context, id uint64) (models.Course, error) {
	var course models.Course
	err := q.collection.FindOne(ctx, bson.M{"id": id}).Decode(&course)
	return course, err
}

func (q *mongoCourseQueries) GetAll(ctx context.Context) ([]models.Course, error) {
	cursor, err := q.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	courses := []models.Course{}
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (q *mongoCourseQueries) UpdateTitle(ctx context.Context, id uint64, title string) error {
	update := bson.M{"$set": bson.M{"title": title, "updated_at": nowFunc()}}
	result, err := q.collection.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (q *mongoCourseQueries) PushChapter(ctx context.Context, courseID uint64, chapterID uint64) error {
	update := bson.M{
		"$push": bson.M{"chapters": chapterID},
		"$set":  bson.M{"updated_at": nowFunc()},
	}
	result, err := q.collection.UpdateOne(ctx, bson.M{"id": courseID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (q *mongoCourseQueries) PullChapter(ctx context.Context, courseID uint64, chapterID uint64) error {
	update := bson.M{
		"$pull": bson.M{"chapters": chapterID},
		"$set":  bson.M{"updated_at": nowFunc()},
	}
	result, err := q.collection.UpdateOne(ctx, bson.M{"id": courseID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (q *mongoCourseQueries) Delete(ctx context.Context, id uint64) error {
	result, err := q.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
