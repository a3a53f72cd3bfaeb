package model

import "errors"

var (
	// Entity errors, mapped by the repositories.
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
)
