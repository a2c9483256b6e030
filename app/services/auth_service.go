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

// SignupInput is the validated signup payload.
type SignupInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Password    string
}

// AuthService creates accounts and exchanges credentials for bearer tokens.
type AuthService struct {
	users     queries.UserQueries
	jwtSecret string
}

func NewAuthService(users queries.UserQueries, jwtSecret string) *AuthService {
	return &AuthService{users: users, jwtSecret: jwtSecret}
}

// Signup registers a new user and returns a bearer token for it.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (string, error) {
	_, err := s.users.GetByEmail(ctx, input.Email)
	if err == nil {
		return "", ErrEmailAlreadyUsed
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", fmt.Errorf("error checking email: %w", err)
	}

	_, err = s.users.GetByPhoneNumber(ctx, input.PhoneNumber)
	if err == nil {
		return "", ErrPhoneAlreadyUsed
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", fmt.Errorf("error checking phone number: %w", err)
	}

	hashedPassword, err := encryption.HashPassword(input.Password)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	user := models.User{
		ID:          encryption.GenerateID(),
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Password:    hashedPassword,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.users.Insert(ctx, user); err != nil {
		return "", fmt.Errorf("error saving user: %w", err)
	}

	return s.issueToken(user.ID)
}

// Login verifies an email-or-phone identifier plus password and returns
// a bearer token on success.
func (s *AuthService) Login(ctx context.Context, email, phoneNumber, password string) (string, error) {
	var user models.User
	var err error

	switch {
	case email != "":
		user, err = s.users.GetByEmail(ctx, email)
	case phoneNumber != "":
		user, err = s.users.GetByPhoneNumber(ctx, phoneNumber)
	default:
		return "", ErrMissingIdentifier
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", ErrInvalidCredentials
	} else if err != nil {
		return "", fmt.Errorf("error fetching user: %w", err)
	}

	if !encryption.ComparePassword(user.Password, password) {
		return "", ErrInvalidCredentials
	}

	return s.issueToken(user.ID)
}

func (s *AuthService) issueToken(userID uint64) (string, error) {
	token, err := encryption.GenerateJwtToken(s.jwtSecret, userID, time.Now().Add(encryption.TokenExpiry))
	if err != nil {
		return "", fmt.Errorf("error generating token: %w", err)
	}
	return token, nil
}
