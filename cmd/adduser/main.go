// cmd/adduser/main.go
// Creates or updates an API user allowed to call the restriction endpoints.
//
// Usage:
//
//	go run ./cmd/adduser -username admin -password testing
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/padraicbc/racecond/config"
	bundb "github.com/padraicbc/racecond/db"
	"github.com/padraicbc/racecond/handlers"
	"github.com/padraicbc/racecond/models"
)

func main() {
	username := flag.String("username", "", "username (required)")
	password := flag.String("password", "", "plain-text password (required)")
	flag.Parse()
	*username = strings.TrimSpace(*username)

	hash, err := handlers.HashPasswordForUser(*username, *password)
	if err != nil {
		log.Fatal(err)
	}

	cfg := config.Load()
	db := bundb.Setup(cfg)
	defer db.Close()

	ctx := context.Background()
	if err := bundb.CreateTables(ctx, db); err != nil {
		log.Fatal(err)
	}

	user := &models.User{Username: *username, Password: hash}
	if err := bundb.UpsertUser(ctx, db, user); err != nil {
		log.Fatal(err)
	}

	admin := ""
	if cfg.IsAdmin(*username) {
		admin = " (admin)"
	}
	fmt.Printf("user %q saved%s\n", *username, admin)
}
