package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

// APIResponse is the envelope every endpoint returns.
type APIResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message,omitempty"`
	Data      any       `json:"data,omitempty"`
	Error     *APIError `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func sendSuccess(c *fiber.Ctx, statusCode int, data any, message string) error {
	return c.Status(statusCode).JSON(APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}

func sendError(c *fiber.Ctx, statusCode int, code, message string) error {
	return c.Status(statusCode).JSON(APIResponse{
		Success:   false,
		Error:     &APIError{Code: code, Message: message},
		Timestamp: time.Now().UTC(),
	})
}

func sendBadRequest(c *fiber.Ctx, message string) error {
	return sendError(c, http.StatusBadRequest, "BAD_REQUEST", message)
}

func sendNotFound(c *fiber.Ctx, message string) error {
	return sendError(c, http.StatusNotFound, "NOT_FOUND", message)
}

func sendInternalServerError(c *fiber.Ctx, message string) error {
	return sendError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", message)
}
