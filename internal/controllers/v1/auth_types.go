package v1

import (
	"github.com/centsible/backend/internal/models"
)

type RegisterEditable struct {
	Name     string `json:"name" form:"name" binding:"required" example:"Jane Doe"`              // Display name of the user
	Email    string `json:"email" form:"email" binding:"required,email" example:"jane@doe.dev"`  // Email address, unique per user
	Password string `json:"password" form:"password" binding:"required,min=8" example:"hunter22"` // Cleartext password, stored as a bcrypt hash
}

type LoginEditable struct {
	Email    string `json:"email" form:"email" binding:"required" example:"jane@doe.dev"`
	Password string `json:"password" form:"password" binding:"required" example:"hunter22"`
}

// User is the API representation of a user. It never contains the
// password hash.
type User struct {
	ID    uint   `json:"id" example:"1"`
	Name  string `json:"name" example:"Jane Doe"`
	Email string `json:"email" example:"jane@doe.dev"`
}

func newUser(model models.User) User {
	return User{
		ID:    model.ID,
		Name:  model.Name,
		Email: model.Email,
	}
}

type RegisterResponse struct {
	Data User `json:"data"`
}

type LoginResponse struct {
	Token string `json:"token"` // The session token for the Authorization header
	Data  User   `json:"data"`
}
