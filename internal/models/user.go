package models

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User is the owner of all other resources in the backend.
//
// Users are created at registration and are never deleted.
type User struct {
	DefaultModel
	Name         string `json:"name"`
	Email        string `json:"email" gorm:"uniqueIndex"`
	PasswordHash string `json:"-"`
}

// BeforeSave normalizes the email address so that lookups are
// case-insensitive.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	return nil
}

// SetPassword hashes the cleartext password and stores the hash.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the cleartext password matches the
// stored hash.
func (u User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// UserByEmail returns the user registered with the email address.
func UserByEmail(email string) (User, error) {
	var user User
	err := DB.Where(&User{Email: strings.ToLower(strings.TrimSpace(email))}).First(&user).Error
	return user, err
}
