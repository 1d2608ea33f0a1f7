package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"com.tandemly.social/internal/boot"
	"com.tandemly.social/internal/model"
)

type AccountService interface {
	Signup(params *model.CreateUserParams) (*model.User, error)
	Login(email string, password string) (*model.User, error)
	Onboard(userID model.UserID, params *model.OnboardParams) (*model.User, error)
}

type ChatService interface {
	IssueChatCredential(user *model.User) (*model.ChatCredential, error)
	UpsertProfile(ctx context.Context, user *model.User) error
}

func Signup(config *boot.Config, accounts AccountService, sessions SessionService, bridge ChatService) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := &model.CreateUserParams{}
		if err := c.Bind(params); err != nil {
			return err
		}

		user, err := accounts.Signup(params)
		if err != nil {
			return httpError(err)
		}

		// chat profile sync is best effort; a provider outage must not
		// block account creation
		if err := bridge.UpsertProfile(c.Request().Context(), user); err != nil {
			c.Logger().Warnf("upserting chat profile for %s: %+v", user.ID, err)
		}

		token, err := sessions.Issue(user.ID)
		if err != nil {
			return err
		}
		setSessionCookie(c, config, token)

		user.Password = ""
		return c.JSON(http.StatusCreated, user)
	}
}

type loginParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(config *boot.Config, accounts AccountService, sessions SessionService) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := &loginParams{}
		if err := c.Bind(params); err != nil {
			return err
		}

		user, err := accounts.Login(params.Email, params.Password)
		if err != nil {
			return httpError(err)
		}

		token, err := sessions.Issue(user.ID)
		if err != nil {
			return err
		}
		setSessionCookie(c, config, token)

		return c.JSON(http.StatusOK, user)
	}
}

func Logout(config *boot.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		clearSessionCookie(c, config)
		return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
	}
}

func Onboard(accounts AccountService, bridge ChatService) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := currentUser(c)

		params := &model.OnboardParams{}
		if err := c.Bind(params); err != nil {
			return err
		}

		updated, err := accounts.Onboard(user.ID, params)
		if err != nil {
			return httpError(err)
		}

		if err := bridge.UpsertProfile(c.Request().Context(), updated); err != nil {
			c.Logger().Warnf("upserting chat profile for %s: %+v", updated.ID, err)
		}

		return c.JSON(http.StatusOK, updated)
	}
}

func Me() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, currentUser(c))
	}
}
