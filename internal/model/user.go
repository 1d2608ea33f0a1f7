package model

import "time"

type UserID string

type CreateUserParams struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type OnboardParams struct {
	FullName         string `json:"fullName"`
	Bio              string `json:"bio"`
	NativeLanguage   string `json:"nativeLanguage"`
	LearningLanguage string `json:"learningLanguage"`
	Location         string `json:"location"`
	ProfilePic       string `json:"profilePic"`
}

type User struct {
	ID               UserID     `db:"ID" json:"id"`
	CreatedAt        time.Time  `db:"CreatedAt" json:"createdAt"`
	UpdatedAt        *time.Time `db:"UpdatedAt" json:"updatedAt,omitempty"`
	Email            string     `db:"Email" json:"email"`
	Password         string     `db:"Password" json:"-"`
	FullName         string     `db:"FullName" json:"fullName"`
	Bio              string     `db:"Bio" json:"bio"`
	NativeLanguage   string     `db:"NativeLanguage" json:"nativeLanguage"`
	LearningLanguage string     `db:"LearningLanguage" json:"learningLanguage"`
	Location         string     `db:"Location" json:"location"`
	ProfilePic       string     `db:"ProfilePic" json:"profilePic"`
	Onboarded        bool       `db:"Onboarded" json:"isOnboarded"`
}
