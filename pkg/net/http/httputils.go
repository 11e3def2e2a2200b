package http

import (
	"github.com/gofiber/fiber/v2"
)

// OK sends a response with basic successful function return.
func OK(c *fiber.Ctx, s any) error {
	return c.Status(fiber.StatusOK).JSON(s)
}

// Created sends a response with a newly created entity.
func Created(c *fiber.Ctx, s any) error {
	return c.Status(fiber.StatusCreated).JSON(s)
}

// NoContent sends a response with no content.
func NoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// BadRequest sends a response with a bad request error payload.
func BadRequest(c *fiber.Ctx, s any) error {
	return c.Status(fiber.StatusBadRequest).JSON(s)
}

// NotFound sends a response with a not found error payload.
func NotFound(c *fiber.Ctx, code, title, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(ResponseErrorPayload{
		Code:    code,
		Title:   title,
		Message: message,
	})
}

// Conflict sends a response with a conflict error payload.
func Conflict(c *fiber.Ctx, code, title, message string) error {
	return c.Status(fiber.StatusConflict).JSON(ResponseErrorPayload{
		Code:    code,
		Title:   title,
		Message: message,
	})
}

// InternalServerError sends a response with an internal server error payload.
func InternalServerError(c *fiber.Ctx, code, title, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(ResponseErrorPayload{
		Code:    code,
		Title:   title,
		Message: message,
	})
}

// JSONResponseError sends a custom ResponseError with its own status code.
func JSONResponseError(c *fiber.Ctx, err ResponseError) error {
	return c.Status(err.Code).JSON(err)
}
