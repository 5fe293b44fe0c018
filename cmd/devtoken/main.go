// Command devtoken mints a bearer token for local requests against the API.
//
//	go run ./cmd/devtoken -user 42 -role admin
package main

import (
	"construction_estimator/internal/infrastructure/auth"
	"construction_estimator/internal/infrastructure/config"
	"flag"
	"fmt"
	"log"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	userID := flag.Int64("user", 1, "numeric user id carried in the token subject")
	role := flag.String("role", auth.RoleUser, "token role: user or admin")
	ttl := flag.Duration("ttl", 0, "token lifetime; defaults to JWT_TTL")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	lifetime := cfg.Auth.TTL
	if *ttl > 0 {
		lifetime = *ttl
	}
	if lifetime <= 0 {
		lifetime = time.Hour
	}

	token, err := auth.NewTokenService(cfg.Auth.Secret, lifetime).Issue(*userID, *role)
	if err != nil {
		log.Fatalf("Failed to issue token: %v", err)
	}
	fmt.Println(token)
}
