package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// FromError mengubah error service / *fiber.Error menjadi response JSON konsisten.
// Error yang tidak dikenal menjadi 500 tanpa membocorkan pesan aslinya.
func FromError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return JsonError(c, fe.Code, fe.Message)
	case errors.Is(err, ErrUserNotFound):
		return JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, ErrDuplicateUser):
		return JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, ErrNilUser):
		return JsonError(c, fiber.StatusBadRequest, err.Error())
	default:
		return JsonError(c, fiber.StatusInternalServerError, "")
	}
}

// ErrorHandler dipakai sebagai fiber.Config.ErrorHandler.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return FromError(c, err)
}
