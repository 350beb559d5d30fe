// Command token mints a bearer token for an existing user. It is meant for
// local development and smoke tests.
//
// Usage:
//
//	token --user=<uuid>
//
// Reads the same configuration as the server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/accessgraph-backend/internal/adapter/postgres"
	"github.com/heartmarshall/accessgraph-backend/internal/adapter/postgres/identity"
	"github.com/heartmarshall/accessgraph-backend/internal/auth"
	"github.com/heartmarshall/accessgraph-backend/internal/config"
)

func main() {
	rawID := flag.String("user", "", "ID of the user to mint a token for")
	flag.Parse()

	if *rawID == "" {
		fmt.Fprintln(os.Stderr, "Usage: token --user=<uuid>")
		os.Exit(1)
	}

	userID, err := uuid.Parse(*rawID)
	if err != nil {
		log.Fatalf("invalid user ID: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	user, err := identity.New(pool).GetUser(ctx, userID)
	if err != nil {
		log.Fatalf("get user: %v", err)
	}
	if !user.Enabled {
		log.Fatalf("user %s is disabled", user.Username)
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	token, expiresAt, err := tokens.Issue(user.ID, user.Role)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Fprintf(os.Stderr, "token for %s (%s), expires %s\n", user.Username, user.Role, expiresAt.Format(time.RFC3339))
	fmt.Println(token)
}
