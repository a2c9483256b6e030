package models

import "time"

// Chapter is a single lesson unit owned by exactly one course. VideoURL
// and ResourceURL are only ever set after a successful upload.
type Chapter struct {
	ID          uint64    `json:"id" bson:"id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	VideoURL    string    `json:"videoUrl" bson:"video_url"`
	ResourceURL string    `json:"resourceUrl" bson:"resource_url"`
	CourseID    uint64    `json:"course" bson:"course_id"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
