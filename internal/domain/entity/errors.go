package entity

import "errors"

var (
	ErrIDIsRequired      = errors.New("id is required")
	ErrNameIsRequired    = errors.New("name is required")
	ErrAddressIsRequired = errors.New("address is mandatory to activate a customer")
	ErrRewardPointsNeg   = errors.New("reward points must be greater than or equal to zero")
)
