package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ChatToken exchanges a verified session for a provider credential scoped
// to the authenticated user.
func ChatToken(bridge ChatService) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := currentUser(c)

		credential, err := bridge.IssueChatCredential(user)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, credential)
	}
}
