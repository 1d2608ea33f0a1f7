package main

import (
	"fmt"

	"github.com/labstack/gommon/log"

	"com.tandemly.social/internal/model"
	"com.tandemly.social/pkg/crypt"
)

// Prints a fresh base64-encoded JWK suitable for SESSION_SIGNING_KEY.
func main() {
	privateKey, err := crypt.GenerateSigningKey()
	if err != nil {
		log.Fatalf("generating key: %+v", err)
	}

	encoded, err := crypt.EncodePrivateKey(privateKey, model.CreateID())
	if err != nil {
		log.Fatalf("encoding key: %+v", err)
	}

	fmt.Println(encoded)
}
