package chat

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"com.tandemly.social/internal/boot"
	"com.tandemly.social/internal/model"
)

func newTestConfig() *boot.Config {
	config := &boot.Config{}
	config.Stream.APIKey = "testkey"
	config.Stream.APISecret = "testsecret"
	config.Stream.Timeout = time.Second
	config.Stream.TokenTTL = time.Hour
	return config
}

func TestMisconfiguredBridge(t *testing.T) {
	assert := assert.New(t)

	config := newTestConfig()
	config.Stream.APISecret = ""

	_, err := New(config)
	assert.ErrorIs(err, model.ErrorBridgeMisconfigured)
}

func TestIssueChatCredential(t *testing.T) {
	assert := assert.New(t)

	service, err := New(newTestConfig())
	assert.Nil(err)

	alice := &model.User{
		ID:       model.UserID(model.CreateID()),
		FullName: "Alice Test",
	}

	credential, err := service.IssueChatCredential(alice)
	assert.Nil(err)
	assert.Equal(alice.ID, credential.UserID)
	assert.True(credential.ExpiresAt.After(time.Now()))

	// provider tokens are HS256 JWTs over the API secret carrying the
	// subject user id
	parsed, err := jwt.Parse(credential.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("testsecret"), nil
	})
	assert.Nil(err)
	assert.True(parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	assert.True(ok)
	assert.Equal(string(alice.ID), claims["user_id"])
}
