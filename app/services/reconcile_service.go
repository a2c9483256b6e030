package services

import (
	"context"
	"fmt"

	"github.com/thatboywest/elearningbackend/app/models"
	"github.com/thatboywest/elearningbackend/app/queries"
)

// ReconcileReport summarizes one repair pass over the two collections.
type ReconcileReport struct {
	DanglingRemoved int `json:"dangling_removed"`
	OrphansDeleted  int `json:"orphans_deleted"`
	Relinked        int `json:"relinked"`
}

// ReconcileService detects and repairs the inconsistencies the
// non-transactional chapter/course writes can leave behind: courses
// listing nonexistent chapters, and chapters no course lists.
type ReconcileService struct {
	courses  queries.CourseQueries
	chapters queries.ChapterQueries
}

func NewReconcileService(courses queries.CourseQueries, chapters queries.ChapterQueries) *ReconcileService {
	return &ReconcileService{courses: courses, chapters: chapters}
}

// Run scans both collections and repairs every inconsistency it finds.
//
// Dangling reference: a course lists a chapter id with no document — the
// id is pulled from the list. Orphaned chapter: its owning course is
// gone — the chapter is deleted; its owning course exists but dropped
// the id — the id is pushed back.
func (s *ReconcileService) Run(ctx context.Context) (ReconcileReport, error) {
	report := ReconcileReport{}

	courses, err := s.courses.GetAll(ctx)
	if err != nil {
		return report, fmt.Errorf("error fetching courses: %w", err)
	}
	chapters, err := s.chapters.GetAll(ctx)
	if err != nil {
		return report, fmt.Errorf("error fetching chapters: %w", err)
	}

	chapterByID := make(map[uint64]models.Chapter, len(chapters))
	for _, chapter := range chapters {
		chapterByID[chapter.ID] = chapter
	}

	courseByID := make(map[uint64]models.Course, len(courses))
	listed := make(map[uint64]bool)
	for _, course := range courses {
		courseByID[course.ID] = course
		for _, chapterID := range course.Chapters {
			if _, ok := chapterByID[chapterID]; !ok {
				if err := s.courses.PullChapter(ctx, course.ID, chapterID); err != nil {
					return report, fmt.Errorf("error removing dangling reference: %w", err)
				}
				report.DanglingRemoved++
				continue
			}
			listed[chapterID] = true
		}
	}

	for _, chapter := range chapters {
		if listed[chapter.ID] {
			continue
		}
		if _, ok := courseByID[chapter.CourseID]; !ok {
			if err := s.chapters.Delete(ctx, chapter.ID); err != nil {
				return report, fmt.Errorf("error deleting orphaned chapter: %w", err)
			}
			report.OrphansDeleted++
			continue
		}
		if err := s.courses.PushChapter(ctx, chapter.CourseID, chapter.ID); err != nil {
			return report, fmt.Errorf("error relinking chapter: %w", err)
		}
		report.Relinked++
	}

	return report, nil
}
