package service

import "errors"

var (
	ErrProfileNotFound = errors.New("health profile not found")
	ErrPlanNotFound    = errors.New("nutrition plan not found")
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidDuration = errors.New("duration must be a positive number of days")
	ErrInvalidToken    = errors.New("invalid token")
)
