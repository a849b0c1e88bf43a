package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrInvalidAmount   = errors.New("xp amount must be positive")
	ErrEntryNotFound   = errors.New("dex entry doesn't exist")
	ErrItemNotFound    = errors.New("no such item in the catalog")
	ErrUnknownPostType = errors.New("unknown post type")
	ErrBadMonth        = errors.New("month must be in 1..12")
	ErrPersistence     = errors.New("persistence failure")
)
