package queries

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/thatboywest/elearningbackend/app/models"
)

// ChapterQueries is the persistence surface for the chapters collection.
// Lookups return mongo.ErrNoDocuments when the chapter is absent.
type ChapterQueries interface {
	Insert(ctx context.Context, chapter models.Chapter) error
	GetByID(ctx context.Context, id uint64) (models.Chapter, error)
	GetByIDs(ctx context.Context, ids []uint64) ([]models.Chapter, error)
	GetByCourseID(ctx context.Context, courseID uint64) ([]models.Chapter, error)
	GetAll(ctx context.Context) ([]models.Chapter, error)
	Replace(ctx context.Context, chapter models.Chapter) error
	Delete(ctx context.Context, id uint64) error
	DeleteByIDs(ctx context.Context, ids []uint64) error
}

type mongoChapterQueries struct {
	collection *mongo.Collection
}

// NewChapterQueries returns ChapterQueries backed by the chapters collection.
func NewChapterQueries(db *mongo.Database) ChapterQueries {
	return &mongoChapterQueries{collection: db.Collection("chapters")}
}

func (q *mongoChapterQueries) Insert(ctx context.Context, chapter models.Chapter) error {
	_, err := q.collection.InsertOne(ctx, chapter)
	return err
}

func (q *mongoChapterQueries) GetByID(ctx context.Context, id uint64) (models.Chapter, error) {
	var chapter models.Chapter
	err := q.collection.FindOne(ctx, bson.M{"id": id}).Decode(&chapter)
	return chapter, err
}

func (q *mongoChapterQueries) GetByIDs(ctx context.Context, ids []uint64) ([]models.Chapter, error) {
	return q.find(ctx, bson.M{"id": bson.M{"$in": ids}})
}

func (q *mongoChapterQueries) GetByCourseID(ctx context.Context, courseID uint64) ([]models.Chapter, error) {
	return q.find(ctx, bson.M{"course_id": courseID})
}

func (q *mongoChapterQueries) GetAll(ctx context.Context) ([]models.Chapter, error) {
	return q.find(ctx, bson.M{})
}

func (q *mongoChapterQueries) find(ctx context.Context, filter bson.M) ([]models.Chapter, error) {
	cursor, err := q.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	chapters := []models.Chapter{}
	if err := cursor.All(ctx, &chapters); err != nil {
		return nil, err
	}
	return chapters, nil
}

func (q *mongoChapterQueries) Replace(ctx context.Context, chapter models.Chapter) error {
	chapter.UpdatedAt = nowFunc()
	result, err := q.collection.ReplaceOne(ctx, bson.M{"id": chapter.ID}, chapter)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (q *mongoChapterQueries) Delete(ctx context.Context, id uint64) error {
	result, err := q.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (q *mongoChapterQueries) DeleteByIDs(ctx context.Context, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := q.collection.DeleteMany(ctx, bson.M{"id": bson.M{"$in": ids}})
	return err
}
