package utils

import "errors"

var (
	ErrDatabaseError         = errors.New("database error")
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrAccountNotFound       = errors.New("account not found")
	ErrTripNotFound          = errors.New("trip not found")
	ErrPackingItemNotFound   = errors.New("packing item not found")
	ErrCityNotInCatalog      = errors.New("city has no attractions in the catalog")
	ErrInvalidInput          = errors.New("invalid input")
)
