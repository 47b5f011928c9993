package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User is one account row. Password holds a bcrypt hash, never the
// plaintext the caller supplied.
type User struct {
	ID        int    `gorm:"primaryKey"`
	Username  string `gorm:"uniqueIndex;not null"`
	Password  string
	IsAdmin   bool
	CreatedAt time.Time
}

func (User) TableName() string { return "users" }

// CheckPassword compares a plaintext candidate against the stored hash.
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// HashPassword produces the bcrypt hash stored in User.Password.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
