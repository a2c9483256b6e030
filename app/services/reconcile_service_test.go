package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thatboywest/elearningbackend/app/models"
)

func TestReconcileService_Run(t *testing.T) {
	rec := &recorder{}
	courses := &fakeCourseQueries{rec: rec, courses: []models.Course{
		// Lists chapter 404 which has no document (dangling reference).
		{ID: 10, Chapters: []uint64{1, 404}},
	}}
	chapters := &fakeChapterQueries{rec: rec, chapters: []models.Chapter{
		{ID: 1, CourseID: 10},
		// Linked to course 10 but dropped from its list (crash between
		// chapter insert and course push).
		{ID: 2, CourseID: 10},
		// Owning course is gone entirely.
		{ID: 3, CourseID: 999},
	}}
	service := NewReconcileService(courses, chapters)

	report, err := service.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.DanglingRemoved)
	assert.Equal(t, 1, report.OrphansDeleted)
	assert.Equal(t, 1, report.Relinked)

	// Post state honors the bidirectional invariant.
	course, err := courses.GetByID(context.Background(), 10)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{1, 2}, course.Chapters)

	remaining, err := chapters.GetAll(context.Background())
	require.NoError(t, err)
	ids := []uint64{}
	for _, chapter := range remaining {
		ids = append(ids, chapter.ID)
	}
	assert.ElementsMatch(t, []uint64{1, 2}, ids)
}

func TestReconcileService_RunCleanState(t *testing.T) {
	rec := &recorder{}
	courses := &fakeCourseQueries{rec: rec, courses: []models.Course{
		{ID: 10, Chapters: []uint64{1}},
	}}
	chapters := &fakeChapterQueries{rec: rec, chapters: []models.Chapter{
		{ID: 1, CourseID: 10},
	}}
	service := NewReconcileService(courses, chapters)

	report, err := service.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ReconcileReport{}, report)
	assert.Empty(t, rec.calls)
}
