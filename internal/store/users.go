package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"com.tandemly.social/internal/model"
)

// publicColumns omits the password hash so list queries never carry it.
const publicColumns = `ID, CreatedAt, UpdatedAt, Email, FullName, Bio,
	NativeLanguage, LearningLanguage, Location, ProfilePic, Onboarded`

func (s *Store) CreateUser(user *model.User) error {
	res, err := s.db.NamedExec(`insert into user
		(ID, CreatedAt, Email, Password, FullName, Bio, NativeLanguage, LearningLanguage, Location, ProfilePic, Onboarded)
		values(:ID, :CreatedAt, :Email, :Password, :FullName, :Bio, :NativeLanguage, :LearningLanguage, :Location, :ProfilePic, :Onboarded)`, user)

	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrorDuplicateEmail
		}
		return fmt.Errorf("inserting user: %w", err)
	}
	if rows, err := res.RowsAffected(); rows != 1 {
		return fmt.Errorf("expected 1 row to be affected, got %d", rows)
	} else if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	return nil
}

func (s *Store) FindUserByID(userID model.UserID) (*model.User, error) {
	user := &model.User{}
	err := s.db.Get(user, `select * from user where ID = ?`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrorUserNotFound
		}
		return nil, fmt.Errorf("fetching user: %w", err)
	}
	return user, nil
}

func (s *Store) FindUserByEmail(email string) (*model.User, error) {
	user := &model.User{}
	err := s.db.Get(user, `select * from user where Email = ?`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrorUserNotFound
		}
		return nil, fmt.Errorf("fetching user by email: %w", err)
	}
	return user, nil
}

func (s *Store) UpdateUser(user *model.User) error {
	now := time.Now().UTC()
	user.UpdatedAt = &now

	res, err := s.db.NamedExec(`update user set
		UpdatedAt = :UpdatedAt,
		FullName = :FullName,
		Bio = :Bio,
		NativeLanguage = :NativeLanguage,
		LearningLanguage = :LearningLanguage,
		Location = :Location,
		ProfilePic = :ProfilePic,
		Onboarded = :Onboarded
		where ID = :ID`, user)
	if err != nil {
		return fmt.Errorf("updating user: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrorUserNotFound
	}

	return nil
}

func (s *Store) UserExists(userID model.UserID) (bool, error) {
	var n int
	err := s.db.Get(&n, `select count(1) from user where ID = ?`, userID)
	if err != nil {
		return false, fmt.Errorf("checking user exists: %w", err)
	}
	return n > 0, nil
}

// RecommendedFor returns onboarded users who are not the given user and
// share no edge with them, newest signups first.
func (s *Store) RecommendedFor(userID model.UserID, limit int) ([]model.User, error) {
	users := []model.User{}
	err := s.db.Select(&users, `select `+publicColumns+` from user u
		where u.ID != ?
		and u.Onboarded = 1
		and not exists (
			select 1 from edge e
			where (e.RequesterID = ? and e.RecipientID = u.ID)
			or (e.RequesterID = u.ID and e.RecipientID = ?)
		)
		order by u.CreatedAt desc, u.ID
		limit ?`, userID, userID, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("selecting recommended users: %w", err)
	}
	return users, nil
}
