package usecase

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("resource not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidTransition = errors.New("invalid match transition")
	ErrInsufficientTeams = errors.New("not enough teams")
	ErrInvalidSide       = errors.New("invalid side")
)
