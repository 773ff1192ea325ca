package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"gymclub_backend/internals/helpers/apperr"
)

// Every endpoint answers the same envelope:
//
//	{ "success": true,  "body": ... }
//	{ "success": false, "error": "..." }
//
// Successes are always 200; the failure status comes from the apperr kind.

func Success(c *fiber.Ctx, body interface{}) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"body":    body,
	})
}

func Fail(c *fiber.Ctx, code int, msg string) error {
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   msg,
	})
}

// FromError converts any error bubbling out of a handler into the envelope.
// Non-taxonomy errors (including *fiber.Error from middleware) keep their
// message; everything unexpected lands on 500.
func FromError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return Fail(c, fe.Code, fe.Message)
	}
	return Fail(c, apperr.StatusOf(err), err.Error())
}

// ValidationFail flattens validator.v10 field errors into one message so the
// envelope stays a flat string as the API contract requires.
func ValidationFail(c *fiber.Ctx, err error) error {
	if ve, ok := err.(validator.ValidationErrors); ok {
		msg := "invalid input"
		if len(ve) > 0 {
			msg = "invalid field: " + ve[0].Field()
		}
		return Fail(c, fiber.StatusBadRequest, msg)
	}
	return Fail(c, fiber.StatusBadRequest, "invalid input")
}
