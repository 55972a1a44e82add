package domain

import "errors"

var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrNoPrimarySleep  = errors.New("no primary sleep episode found")
	ErrEpisodeRejected = errors.New("sleep episode failed validation")
)
