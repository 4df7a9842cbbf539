package helper

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNilUser       = errors.New("user is nil")
	ErrUserNotFound  = errors.New("user not found")
	ErrDuplicateUser = errors.New("a user with this id or email already exists")
)

func ErrorFromGormError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrUserNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateUser
	default:
		return err
	}
}
