package account

import (
	"encoding/base64"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"com.tandemly.social/internal/model"
)

type Database interface {
	CreateUser(user *model.User) error
	FindUserByID(userID model.UserID) (*model.User, error)
	FindUserByEmail(email string) (*model.User, error)
	UpdateUser(user *model.User) error
}

type service struct {
	db Database
}

func New(db Database) *service {
	return &service{db}
}

func (s *service) Signup(params *model.CreateUserParams) (*model.User, error) {
	email := strings.ToLower(strings.TrimSpace(params.Email))
	if params.FullName == "" || email == "" || params.Password == "" {
		return nil, model.ErrorMissingFields
	}
	if len(params.Password) < 6 {
		return nil, model.ErrorPasswordTooShort
	}

	passwordBytes, err := bcrypt.GenerateFromPassword([]byte(params.Password), 10)
	if err != nil {
		return nil, fmt.Errorf("generating encoded password: %w", err)
	}
	encodedPassword := base64.StdEncoding.EncodeToString(passwordBytes)

	user := &model.User{
		ID:         model.UserID(model.CreateID()),
		CreatedAt:  time.Now().UTC(),
		Email:      email,
		Password:   encodedPassword,
		FullName:   params.FullName,
		ProfilePic: randomAvatarURL(),
	}

	if err := s.db.CreateUser(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login resolves an email/password pair to a user. Unknown email and wrong
// password collapse to the same error so the endpoint is not an account
// probe.
func (s *service) Login(email, password string) (*model.User, error) {
	user, err := s.db.FindUserByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, model.ErrorUserNotFound) {
			return nil, model.ErrorInvalidUsernameOrPassword
		}
		return nil, fmt.Errorf("fetching user by email: %w", err)
	}

	passwordBytes, err := base64.StdEncoding.DecodeString(user.Password)
	if err != nil {
		return nil, fmt.Errorf("decoding stored password: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword(passwordBytes, []byte(password)); err != nil {
		return nil, model.ErrorInvalidUsernameOrPassword
	}

	user.Password = ""
	return user, nil
}

// Onboard fills in the profile fields and marks the user ready to appear
// in recommendations.
func (s *service) Onboard(userID model.UserID, params *model.OnboardParams) (*model.User, error) {
	if params.FullName == "" || params.Bio == "" || params.NativeLanguage == "" ||
		params.LearningLanguage == "" || params.Location == "" {
		return nil, model.ErrorMissingFields
	}

	user, err := s.db.FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	user.FullName = params.FullName
	user.Bio = params.Bio
	user.NativeLanguage = params.NativeLanguage
	user.LearningLanguage = params.LearningLanguage
	user.Location = params.Location
	if params.ProfilePic != "" {
		user.ProfilePic = params.ProfilePic
	}
	user.Onboarded = true

	if err := s.db.UpdateUser(user); err != nil {
		return nil, err
	}

	user.Password = ""
	return user, nil
}

func randomAvatarURL() string {
	idx := rand.Intn(100) + 1
	return fmt.Sprintf("https://avatar.iran.liara.run/public/%d.png", idx)
}
