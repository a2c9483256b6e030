package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/thatboywest/elearningbackend/app/models"
	"github.com/thatboywest/elearningbackend/app/queries"
	"github.com/thatboywest/elearningbackend/pkg/encryption"
	"github.com/thatboywest/elearningbackend/pkg/storage"
)

// Asset is an uploaded file handed to the media store.
type Asset struct {
	Filename    string
	ContentType string
	Reader      io.Reader
}

// ChapterUpdate carries the partial-update fields for a chapter. Empty
// strings and nil assets leave the stored values unchanged.
type ChapterUpdate struct {
	Title       string
	Description string
	Video       *Asset
	Resource    *Asset
}

// ChapterService keeps Course.Chapters and Chapter.CourseID mutually
// consistent across chapter create, update and delete.
type ChapterService struct {
	courses  queries.CourseQueries
	chapters queries.ChapterQueries
	uploader storage.Uploader
}

func NewChapterService(courses queries.CourseQueries, chapters queries.ChapterQueries, uploader storage.Uploader) *ChapterService {
	return &ChapterService{courses: courses, chapters: chapters, uploader: uploader}
}

// Create uploads both assets, persists the chapter, then appends its id
// to the owning course. Upload failures commit nothing; the chapter is
// written before the course so a crash between the two writes leaves an
// orphaned chapter rather than a dangling course reference.
func (s *ChapterService) Create(ctx context.Context, courseID uint64, title, description string, video, resource Asset) (models.Chapter, error) {
	_, err := s.courses.GetByID(ctx, courseID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Chapter{}, ErrCourseNotFound
	} else if err != nil {
		return models.Chapter{}, fmt.Errorf("error fetching course: %w", err)
	}

	chapterID := encryption.GenerateID()

	videoURL, err := s.upload(ctx, courseID, chapterID, video)
	if err != nil {
		return models.Chapter{}, err
	}
	resourceURL, err := s.upload(ctx, courseID, chapterID, resource)
	if err != nil {
		return models.Chapter{}, err
	}

	chapter := models.Chapter{
		ID:          chapterID,
		Title:       title,
		Description: description,
		VideoURL:    videoURL,
		ResourceURL: resourceURL,
		CourseID:    courseID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.chapters.Insert(ctx, chapter); err != nil {
		return models.Chapter{}, fmt.Errorf("error saving chapter: %w", err)
	}
	if err := s.courses.PushChapter(ctx, courseID, chapterID); err != nil {
		return models.Chapter{}, fmt.Errorf("error adding chapter to course: %w", err)
	}
	return chapter, nil
}

// Update merges the supplied fields into the stored chapter. New assets
// replace the matching URL; untouched slots keep their value. The
// course linkage is never altered here.
func (s *ChapterService) Update(ctx context.Context, chapterID uint64, update ChapterUpdate) (models.Chapter, error) {
	chapter, err := s.chapters.GetByID(ctx, chapterID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Chapter{}, ErrChapterNotFound
	} else if err != nil {
		return models.Chapter{}, fmt.Errorf("error fetching chapter: %w", err)
	}

	if update.Title != "" {
		chapter.Title = update.Title
	}
	if update.Description != "" {
		chapter.Description = update.Description
	}

	if update.Video != nil {
		videoURL, err := s.upload(ctx, chapter.CourseID, chapter.ID, *update.Video)
		if err != nil {
			return models.Chapter{}, err
		}
		chapter.VideoURL = videoURL
	}
	if update.Resource != nil {
		resourceURL, err := s.upload(ctx, chapter.CourseID, chapter.ID, *update.Resource)
		if err != nil {
			return models.Chapter{}, err
		}
		chapter.ResourceURL = resourceURL
	}

	chapter.UpdatedAt = time.Now()
	if err := s.chapters.Replace(ctx, chapter); err != nil {
		return models.Chapter{}, fmt.Errorf("error saving chapter: %w", err)
	}
	return chapter, nil
}

// Delete detaches the chapter from its course first, then removes the
// chapter document, so no live course ever points at a deleted chapter.
func (s *ChapterService) Delete(ctx context.Context, chapterID uint64) error {
	chapter, err := s.chapters.GetByID(ctx, chapterID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrChapterNotFound
	} else if err != nil {
		return fmt.Errorf("error fetching chapter: %w", err)
	}

	// A missing owning course is an orphan; still delete the chapter.
	if err := s.courses.PullChapter(ctx, chapter.CourseID, chapterID); err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("error removing chapter from course: %w", err)
	}
	if err := s.chapters.Delete(ctx, chapterID); err != nil {
		return fmt.Errorf("error deleting chapter: %w", err)
	}
	return nil
}

// ListForCourse returns the chapters owned by a course. A course with no
// chapters yields an empty list; only a missing course is an error.
func (s *ChapterService) ListForCourse(ctx context.Context, courseID uint64) ([]models.Chapter, error) {
	_, err := s.courses.GetByID(ctx, courseID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrCourseNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error fetching course: %w", err)
	}

	chapters, err := s.chapters.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error fetching chapters: %w", err)
	}
	return chapters, nil
}

func (s *ChapterService) upload(ctx context.Context, courseID, chapterID uint64, asset Asset) (string, error) {
	cleanedFilename := strings.ReplaceAll(asset.Filename, " ", "")
	key := fmt.Sprintf("%d/%d/%d-%s", courseID, chapterID, encryption.GenerateID(), cleanedFilename)

	url, err := s.uploader.Upload(ctx, key, asset.ContentType, asset.Reader)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUploadFailed, err.Error())
	}
	return url, nil
}
