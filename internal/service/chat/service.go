package chat

import (
	"context"
	"fmt"
	"time"

	stream "github.com/GetStream/stream-chat-go/v5"

	"com.tandemly.social/internal/boot"
	"com.tandemly.social/internal/model"
)

type service struct {
	client   *stream.Client
	timeout  time.Duration
	tokenTTL time.Duration
}

// New builds the bridge to the Stream Chat provider. Missing credentials
// are a construction error so the process refuses to start instead of
// issuing unscoped tokens later.
func New(config *boot.Config) (*service, error) {
	if config.Stream.APIKey == "" || config.Stream.APISecret == "" {
		return nil, model.ErrorBridgeMisconfigured
	}

	client, err := stream.NewClient(config.Stream.APIKey, config.Stream.APISecret)
	if err != nil {
		return nil, fmt.Errorf("creating stream client: %w", err)
	}

	return &service{
		client:   client,
		timeout:  config.Stream.Timeout,
		tokenTTL: config.Stream.TokenTTL,
	}, nil
}

// IssueChatCredential mints a provider token scoped to the given user.
// Failures are surfaced as-is; token issuance is never retried because the
// provider does not guarantee idempotency.
func (s *service) IssueChatCredential(user *model.User) (*model.ChatCredential, error) {
	expiresAt := time.Now().UTC().Add(s.tokenTTL)

	token, err := s.client.CreateToken(string(user.ID), expiresAt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrorProviderUnavailable, err)
	}

	return &model.ChatCredential{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// UpsertProfile pushes the display name and avatar to the provider so the
// chat UI reflects the current profile. Callers treat failure as degraded
// chat, never as an authentication failure.
func (s *service) UpsertProfile(ctx context.Context, user *model.User) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.client.UpsertUser(ctx, &stream.User{
		ID:    string(user.ID),
		Name:  user.FullName,
		Image: user.ProfilePic,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrorProviderUnavailable, err)
	}

	return nil
}
