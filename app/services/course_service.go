package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/thatboywest/elearningbackend/app/models"
	"github.com/thatboywest/elearningbackend/app/queries"
	"github.com/thatboywest/elearningbackend/pkg/encryption"
)

// CourseService owns course CRUD, chapter population and the cascading
// course delete.
type CourseService struct {
	courses  queries.CourseQueries
	chapters queries.ChapterQueries
}

func NewCourseService(courses queries.CourseQueries, chapters queries.ChapterQueries) *CourseService {
	return &CourseService{courses: courses, chapters: chapters}
}

// Create persists a new course, empty or with a caller-supplied initial
// chapter list.
func (s *CourseService) Create(ctx context.Context, title string, chapterIDs []uint64) (models.Course, error) {
	if chapterIDs == nil {
		chapterIDs = []uint64{}
	}
	course := models.Course{
		ID:        encryption.GenerateID(),
		Title:     title,
		Chapters:  chapterIDs,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.courses.Insert(ctx, course); err != nil {
		return models.Course{}, fmt.Errorf("error saving course: %w", err)
	}
	return course, nil
}

// List returns every course with its chapters populated.
func (s *CourseService) List(ctx context.Context) ([]models.PopulatedCourse, error) {
	courses, err := s.courses.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching courses: %w", err)
	}

	populated := make([]models.PopulatedCourse, 0, len(courses))
	for _, course := range courses {
		p, err := s.populate(ctx, course)
		if err != nil {
			return nil, err
		}
		populated = append(populated, p)
	}
	return populated, nil
}

// Get returns one course with its chapters populated in display order.
func (s *CourseService) Get(ctx context.Context, id uint64) (models.PopulatedCourse, error) {
	course, err := s.courses.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.PopulatedCourse{}, ErrCourseNotFound
	} else if err != nil {
		return models.PopulatedCourse{}, fmt.Errorf("error fetching course: %w", err)
	}
	return s.populate(ctx, course)
}

// UpdateTitle edits the course title; an empty title leaves the stored
// value unchanged.
func (s *CourseService) UpdateTitle(ctx context.Context, id uint64, title string) (models.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Course{}, ErrCourseNotFound
	} else if err != nil {
		return models.Course{}, fmt.Errorf("error fetching course: %w", err)
	}

	if title != "" {
		if err := s.courses.UpdateTitle(ctx, id, title); err != nil {
			return models.Course{}, fmt.Errorf("error updating course: %w", err)
		}
		course.Title = title
		course.UpdatedAt = time.Now()
	}
	return course, nil
}

// Delete removes the course and every chapter it references. The cascade
// is unconditional.
func (s *CourseService) Delete(ctx context.Context, id uint64) error {
	course, err := s.courses.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrCourseNotFound
	} else if err != nil {
		return fmt.Errorf("error fetching course: %w", err)
	}

	if err := s.chapters.DeleteByIDs(ctx, course.Chapters); err != nil {
		return fmt.Errorf("error deleting course chapters: %w", err)
	}
	if err := s.courses.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}
	return nil
}

// populate resolves the chapter id list to full documents, preserving
// order and skipping ids with no backing document.
func (s *CourseService) populate(ctx context.Context, course models.Course) (models.PopulatedCourse, error) {
	populated := models.PopulatedCourse{
		ID:        course.ID,
		Title:     course.Title,
		Chapters:  []models.Chapter{},
		CreatedAt: course.CreatedAt,
		UpdatedAt: course.UpdatedAt,
	}
	if len(course.Chapters) == 0 {
		return populated, nil
	}

	chapters, err := s.chapters.GetByIDs(ctx, course.Chapters)
	if err != nil {
		return models.PopulatedCourse{}, fmt.Errorf("error fetching chapters: %w", err)
	}

	byID := make(map[uint64]models.Chapter, len(chapters))
	for _, chapter := range chapters {
		byID[chapter.ID] = chapter
	}
	for _, chapterID := range course.Chapters {
		if chapter, ok := byID[chapterID]; ok {
			populated.Chapters = append(populated.Chapters, chapter)
		}
	}
	return populated, nil
}
