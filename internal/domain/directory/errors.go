package directory

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrGroupNotFound = errors.New("group not found")
	ErrNameRequired  = errors.New("name is required")
)
