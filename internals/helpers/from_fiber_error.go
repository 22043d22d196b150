// file: internals/helpers/from_fiber_error.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// FromFiberError dipasang sebagai fiber ErrorHandler supaya error yang
// dilempar via fiber.NewError ikut format envelope JSON yang sama.
func FromFiberError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	return Error(c, code, message)
}
