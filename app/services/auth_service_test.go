package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/thatboywest/elearningbackend/app/models"
	"github.com/thatboywest/elearningbackend/pkg/encryption"
)

type fakeUserQueries struct {
	users     []models.User
	insertErr error
}

func (f *fakeUserQueries) Insert(_ context.Context, user models.User) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserQueries) GetByEmail(_ context.Context, email string) (models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, mongo.ErrNoDocuments
}

func (f *fakeUserQueries) GetByPhoneNumber(_ context.Context, phoneNumber string) (models.User, error) {
	for _, user := range f.users {
		if user.PhoneNumber == phoneNumber {
			return user, nil
		}
	}
	return models.User{}, mongo.ErrNoDocuments
}

func (f *fakeUserQueries) GetByID(_ context.Context, id uint64) (models.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return models.User{}, mongo.ErrNoDocuments
}

func signupInput() SignupInput {
	return SignupInput{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@example.com",
		PhoneNumber: "+15550001111",
		Password:    "correct-horse",
	}
}

func TestAuthService_Signup(t *testing.T) {
	users := &fakeUserQueries{}
	service := NewAuthService(users, "secret")

	token, err := service.Signup(context.Background(), signupInput())
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	require.Len(t, users.users, 1)
	stored := users.users[0]
	assert.NotZero(t, stored.ID)
	assert.NotEqual(t, "correct-horse", stored.Password)
	assert.True(t, encryption.ComparePassword(stored.Password, "correct-horse"))
}

func TestAuthService_SignupDuplicates(t *testing.T) {
	users := &fakeUserQueries{users: []models.User{{
		Email:       "ada@example.com",
		PhoneNumber: "+15550001111",
	}}}
	service := NewAuthService(users, "secret")

	_, err := service.Signup(context.Background(), signupInput())
	assert.ErrorIs(t, err, ErrEmailAlreadyUsed)

	input := signupInput()
	input.Email = "other@example.com"
	_, err = service.Signup(context.Background(), input)
	assert.ErrorIs(t, err, ErrPhoneAlreadyUsed)
}

func TestAuthService_Login(t *testing.T) {
	hashed, err := encryption.HashPassword("correct-horse")
	require.NoError(t, err)

	users := &fakeUserQueries{users: []models.User{{
		ID:          42,
		Email:       "ada@example.com",
		PhoneNumber: "+15550001111",
		Password:    hashed,
	}}}
	service := NewAuthService(users, "secret")

	tests := []struct {
		name        string
		email       string
		phoneNumber string
		password    string
		wantErr     error
	}{
		{name: "by email", email: "ada@example.com", password: "correct-horse"},
		{name: "by phone", phoneNumber: "+15550001111", password: "correct-horse"},
		{name: "wrong password", email: "ada@example.com", password: "nope", wantErr: ErrInvalidCredentials},
		{name: "unknown user", email: "ghost@example.com", password: "correct-horse", wantErr: ErrInvalidCredentials},
		{name: "missing identifier", password: "correct-horse", wantErr: ErrMissingIdentifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := service.Login(context.Background(), tt.email, tt.phoneNumber, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			// The token is bound to the stored user.
			userID, err := encryption.ParseJwtToken("secret", token)
			require.NoError(t, err)
			assert.Equal(t, uint64(42), userID)
		})
	}
}
