package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"com.tandemly.social/internal/model"
)

// httpError maps the model sentinels onto response statuses. Anything
// unrecognised is returned as-is and becomes a 500 via echo's default
// error handler.
func httpError(err error) error {
	switch {
	case errors.Is(err, model.ErrorMissingCredential),
		errors.Is(err, model.ErrorInvalidSignature),
		errors.Is(err, model.ErrorSessionExpired),
		errors.Is(err, model.ErrorInvalidUsernameOrPassword):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())

	case errors.Is(err, model.ErrorIdentityNotFound),
		errors.Is(err, model.ErrorUserNotFound),
		errors.Is(err, model.ErrorEdgeNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())

	case errors.Is(err, model.ErrorNotRecipient):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())

	case errors.Is(err, model.ErrorEdgeExists),
		errors.Is(err, model.ErrorAlreadyAccepted),
		errors.Is(err, model.ErrorDuplicateEmail):
		return echo.NewHTTPError(http.StatusConflict, err.Error())

	case errors.Is(err, model.ErrorSelfRequest),
		errors.Is(err, model.ErrorMissingFields),
		errors.Is(err, model.ErrorPasswordTooShort):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())

	case errors.Is(err, model.ErrorProviderUnavailable):
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}

	return err
}
