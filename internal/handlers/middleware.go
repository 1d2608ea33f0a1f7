package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"com.tandemly.social/internal/boot"
	"com.tandemly.social/internal/model"
)

const SessionCookieName = "jwt"

const contextKeyUser = "user"

type SessionService interface {
	Issue(userID model.UserID) (string, error)
	Verify(token string) (*model.User, error)
}

// Authenticated gates a route group on a valid session cookie and stashes
// the resolved identity on the request context.
func Authenticated(sessions SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := ""
			if cookie, err := c.Cookie(SessionCookieName); err == nil {
				token = cookie.Value
			}

			user, err := sessions.Verify(token)
			if err != nil {
				return httpError(err)
			}

			c.Set(contextKeyUser, user)
			return next(c)
		}
	}
}

func currentUser(c echo.Context) *model.User {
	return c.Get(contextKeyUser).(*model.User)
}

func setSessionCookie(c echo.Context, config *boot.Config, token string) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(config.Session.TTL.Seconds()),
		HttpOnly: true,
		Secure:   config.IsProduction(),
		SameSite: http.SameSiteStrictMode,
	})
}

func clearSessionCookie(c echo.Context, config *boot.Config) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   config.IsProduction(),
		SameSite: http.SameSiteStrictMode,
	})
}
