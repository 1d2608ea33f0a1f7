package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/nrednav/cuid2"

	"com.tandemly.social/internal/boot"
	"com.tandemly.social/internal/handlers"
	"com.tandemly.social/internal/service/account"
	"com.tandemly.social/internal/service/chat"
	"com.tandemly.social/internal/service/graph"
	"com.tandemly.social/internal/service/recommend"
	"com.tandemly.social/internal/service/session"
	"com.tandemly.social/internal/store"
)

func main() {
	config, err := boot.Load()
	if err != nil {
		log.Fatalf("boot: %+v", err)
	}

	db, err := store.Open(config)
	if err != nil {
		log.Fatalf("opening store: %+v", err)
	}
	defer db.Close()

	sessionService, err := session.New(config, db)
	if err != nil {
		log.Fatalf("creating session service: %+v", err)
	}

	chatService, err := chat.New(config)
	if err != nil {
		log.Fatalf("creating chat bridge: %+v", err)
	}

	accountService := account.New(db)
	graphService := graph.New(db)
	recommendService := recommend.New(db)

	server := echo.New()
	server.Use(middleware.BodyLimit("1M"))
	server.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string {
			return cuid2.Generate()
		},
	}))
	server.Use(echoprometheus.NewMiddleware("tandemly"))
	server.Use(middleware.Recover())

	server.Logger.SetLevel(log.INFO)

	headers := []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization}
	server.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     strings.Split(config.Server.Origins, ","),
		AllowHeaders:     headers,
		AllowCredentials: true,
	}))

	api := server.Group("/api")
	api.POST("/auth/signup", handlers.Signup(config, accountService, sessionService, chatService))
	api.POST("/auth/login", handlers.Login(config, accountService, sessionService))
	api.POST("/auth/logout", handlers.Logout(config))

	authed := api.Group("", handlers.Authenticated(sessionService))
	authed.POST("/auth/onboarding", handlers.Onboard(accountService, chatService))
	authed.GET("/auth/me", handlers.Me())
	authed.GET("/users", handlers.Recommended(recommendService))
	authed.GET("/users/friends", handlers.Friends(graphService))
	authed.POST("/users/friend-request/:id", handlers.SendFriendRequest(graphService))
	authed.PUT("/users/friend-request/:id/accept", handlers.AcceptFriendRequest(graphService))
	authed.GET("/users/outgoing-friend-requests", handlers.OutgoingFriendRequests(graphService))
	authed.GET("/users/friend-requests", handlers.IncomingFriendRequests(graphService))
	authed.GET("/chat/token", handlers.ChatToken(chatService))

	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(":" + config.Server.MetricsPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	go func() {
		if err := server.Start(":" + config.Server.Port); err != nil && err != http.ErrServerClosed {
			server.Logger.Fatal("shutting down the server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		server.Logger.Fatal(err)
	}
}
