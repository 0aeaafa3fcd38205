package domain

import "errors"

var (
	ErrNoSession        = errors.New("no stored session")
	ErrProfileNotCached = errors.New("profile not cached")
	ErrSecretNotFound   = errors.New("secret not found")
)
