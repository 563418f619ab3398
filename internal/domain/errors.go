package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicateUser    = errors.New("mobile number already registered")
	ErrDuplicatePayment = errors.New("payment already recorded")
)
