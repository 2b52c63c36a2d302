package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// ErrEmailTaken is returned when registering with an email address
	// that already has an account.
	ErrEmailTaken = errors.New("this email address is already registered")

	// ErrNotOwned is returned when a resource exists, but belongs to
	// a different user.
	ErrNotOwned = errors.New("this resource belongs to a different user")
)
