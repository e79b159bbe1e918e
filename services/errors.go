package services

import "errors"

var (
	ErrPostNotFound       = errors.New("post not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidUserInput   = errors.New("username and password are required")
)
