package models

import "time"

type User struct {
	ID          uint64    `json:"id" bson:"id"`
	FirstName   string    `json:"first_name" bson:"first_name"`
	LastName    string    `json:"last_name" bson:"last_name"`
	Email       string    `json:"email" bson:"email"`               // Unique
	PhoneNumber string    `json:"phone_number" bson:"phone_number"` // Unique
	Password    string    `json:"-" bson:"password"`                // Hashed password
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
