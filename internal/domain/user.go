package domain

import "time"

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Gender       string    `json:"gender,omitempty"`
	DateOfBirth  string    `json:"date_of_birth,omitempty"` // yyyy-mm-dd
	PhoneNumber  string    `json:"phone_number,omitempty"`
	ProfilePhoto string    `json:"profile_photo,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
