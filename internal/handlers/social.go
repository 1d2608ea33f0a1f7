package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"com.tandemly.social/internal/model"
)

type GraphService interface {
	SendRequest(requesterID, recipientID model.UserID) (*model.FriendEdge, error)
	AcceptRequest(edgeID model.EdgeID, actingUserID model.UserID) (*model.FriendEdge, error)
	ListFriends(userID model.UserID) ([]model.User, error)
	ListOutgoingPending(userID model.UserID) ([]model.FriendEdge, error)
	ListIncomingPending(userID model.UserID) ([]model.FriendEdge, error)
}

type RecommendService interface {
	Recommend(userID model.UserID, pageSize int) ([]model.User, error)
}

func Recommended(recommender RecommendService) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := currentUser(c)

		pageSize, _ := strconv.Atoi(c.QueryParam("limit"))
		users, err := recommender.Recommend(user.ID, pageSize)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, users)
	}
}

func Friends(graphs GraphService) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := currentUser(c)
		friends, err := graphs.ListFriends(user.ID)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, friends)
	}
}

func SendFriendRequest(graphs GraphService) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := currentUser(c)
		recipientID := model.UserID(c.Param("id"))

		edge, err := graphs.SendRequest(user.ID, recipientID)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusCreated, edge)
	}
}

func AcceptFriendRequest(graphs GraphService) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := currentUser(c)
		edgeID := model.EdgeID(c.Param("id"))

		edge, err := graphs.AcceptRequest(edgeID, user.ID)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, edge)
	}
}

func OutgoingFriendRequests(graphs GraphService) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := currentUser(c)
		edges, err := graphs.ListOutgoingPending(user.ID)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, edges)
	}
}

func IncomingFriendRequests(graphs GraphService) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := currentUser(c)
		edges, err := graphs.ListIncomingPending(user.ID)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, edges)
	}
}
