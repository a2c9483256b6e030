package models

import "time"

// Course is a top-level content grouping. Chapters holds the IDs of the
// owned chapters in display order; every listed chapter's CourseID must
// point back at this course.
type Course struct {
	ID        uint64    `json:"id" bson:"id"`
	Title     string    `json:"title,omitempty" bson:"title,omitempty"`
	Chapters  []uint64  `json:"chapters" bson:"chapters"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// PopulatedCourse is a course with its chapter IDs resolved to full
// chapter documents, in display order.
type PopulatedCourse struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title,omitempty"`
	Chapters  []Chapter `json:"chapters"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
