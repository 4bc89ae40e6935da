// Package handler contains the HTTP handlers for the booking API.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/laqshya/sports-facility-booking/internal/repository"
)

// getUserID extracts the authenticated account id stored by the JWT
// middleware.
func getUserID(c echo.Context) (string, error) {
	if v, ok := c.Get("user_id").(string); ok && v != "" {
		return v, nil
	}
	return "", errors.New("no user in context")
}

// fail translates repository sentinels into the JSON error responses
// used throughout the API.
func fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrValidation):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed"})
	case errors.Is(err, repository.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}
