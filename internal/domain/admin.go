package domain

import "time"

// Admin — учётная запись администратора панели.
type Admin struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

func NewAdmin(email, passwordHash string) *Admin {
	return &Admin{
		Email:        email,
		PasswordHash: passwordHash,
	}
}
