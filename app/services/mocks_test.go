package services

import (
	"context"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/thatboywest/elearningbackend/app/models"
)

// recorder captures the order of persistence and upload calls so tests
// can assert write ordering.
type recorder struct {
	calls []string
}

func (r *recorder) record(call string) {
	r.calls = append(r.calls, call)
}

type fakeCourseQueries struct {
	rec     *recorder
	courses []models.Course

	insertErr error
	getErr    error
	pushErr   error
	pullErr   error
	deleteErr error
}

func (f *fakeCourseQueries) Insert(_ context.Context, course models.Course) error {
	f.rec.record("course.insert")
	if f.insertErr != nil {
		return f.insertErr
	}
	f.courses = append(f.courses, course)
	return nil
}

func (f *fakeCourseQueries) GetByID(_ context.Context, id uint64) (models.Course, error) {
	if f.getErr != nil {
		return models.Course{}, f.getErr
	}
	for _, course := range f.courses {
		if course.ID == id {
			return course, nil
		}
	}
	return models.Course{}, mongo.ErrNoDocuments
}

func (f *fakeCourseQueries) GetAll(_ context.Context) ([]models.Course, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return append([]models.Course{}, f.courses...), nil
}

func (f *fakeCourseQueries) UpdateTitle(_ context.Context, id uint64, title string) error {
	for i := range f.courses {
		if f.courses[i].ID == id {
			f.courses[i].Title = title
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeCourseQueries) PushChapter(_ context.Context, courseID uint64, chapterID uint64) error {
	f.rec.record("course.push")
	if f.pushErr != nil {
		return f.pushErr
	}
	for i := range f.courses {
		if f.courses[i].ID == courseID {
			f.courses[i].Chapters = append(f.courses[i].Chapters, chapterID)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeCourseQueries) PullChapter(_ context.Context, courseID uint64, chapterID uint64) error {
	f.rec.record("course.pull")
	if f.pullErr != nil {
		return f.pullErr
	}
	for i := range f.courses {
		if f.courses[i].ID != courseID {
			continue
		}
		kept := []uint64{}
		for _, id := range f.courses[i].Chapters {
			if id != chapterID {
				kept = append(kept, id)
			}
		}
		f.courses[i].Chapters = kept
		return nil
	}
	return mongo.ErrNoDocuments
}

func (f *fakeCourseQueries) Delete(_ context.Context, id uint64) error {
	f.rec.record("course.delete")
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.courses {
		if f.courses[i].ID == id {
			f.courses = append(f.courses[:i], f.courses[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

type fakeChapterQueries struct {
	rec      *recorder
	chapters []models.Chapter

	insertErr  error
	getErr     error
	replaceErr error
	deleteErr  error
}

func (f *fakeChapterQueries) Insert(_ context.Context, chapter models.Chapter) error {
	f.rec.record("chapter.insert")
	if f.insertErr != nil {
		return f.insertErr
	}
	f.chapters = append(f.chapters, chapter)
	return nil
}

func (f *fakeChapterQueries) GetByID(_ context.Context, id uint64) (models.Chapter, error) {
	if f.getErr != nil {
		return models.Chapter{}, f.getErr
	}
	for _, chapter := range f.chapters {
		if chapter.ID == id {
			return chapter, nil
		}
	}
	return models.Chapter{}, mongo.ErrNoDocuments
}

func (f *fakeChapterQueries) GetByIDs(_ context.Context, ids []uint64) ([]models.Chapter, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	wanted := make(map[uint64]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	found := []models.Chapter{}
	for _, chapter := range f.chapters {
		if wanted[chapter.ID] {
			found = append(found, chapter)
		}
	}
	return found, nil
}

func (f *fakeChapterQueries) GetByCourseID(_ context.Context, courseID uint64) ([]models.Chapter, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	found := []models.Chapter{}
	for _, chapter := range f.chapters {
		if chapter.CourseID == courseID {
			found = append(found, chapter)
		}
	}
	return found, nil
}

func (f *fakeChapterQueries) GetAll(_ context.Context) ([]models.Chapter, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return append([]models.Chapter{}, f.chapters...), nil
}

func (f *fakeChapterQueries) Replace(_ context.Context, chapter models.Chapter) error {
	f.rec.record("chapter.replace")
	if f.replaceErr != nil {
		return f.replaceErr
	}
	for i := range f.chapters {
		if f.chapters[i].ID == chapter.ID {
			f.chapters[i] = chapter
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeChapterQueries) Delete(_ context.Context, id uint64) error {
	f.rec.record("chapter.delete")
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.chapters {
		if f.chapters[i].ID == id {
			f.chapters = append(f.chapters[:i], f.chapters[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeChapterQueries) DeleteByIDs(_ context.Context, ids []uint64) error {
	f.rec.record("chapter.deleteMany")
	if f.deleteErr != nil {
		return f.deleteErr
	}
	wanted := make(map[uint64]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	kept := []models.Chapter{}
	for _, chapter := range f.chapters {
		if !wanted[chapter.ID] {
			kept = append(kept, chapter)
		}
	}
	f.chapters = kept
	return nil
}

// fakeUploader returns a deterministic URL per key; failOn makes the
// n-th Upload call fail (1-based).
type fakeUploader struct {
	rec    *recorder
	failOn int
	count  int
}

func (f *fakeUploader) Upload(_ context.Context, key string, _ string, _ io.Reader) (string, error) {
	f.count++
	if f.failOn != 0 && f.count == f.failOn {
		return "", fmt.Errorf("connection refused")
	}
	f.rec.record("upload")
	return "https://cdn.example.com/" + key, nil
}
