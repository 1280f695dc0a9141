// Command seeduser creates an account directly in the database, bypassing
// the HTTP API. Useful for bootstrapping the first admin.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/mflath/TImesheets/internal/auth"
	"github.com/mflath/TImesheets/internal/config"
	"github.com/mflath/TImesheets/internal/infra"
	"github.com/mflath/TImesheets/internal/model"
	"github.com/mflath/TImesheets/internal/repository"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	username := flag.String("username", "", "username for the new account")
	password := flag.String("password", "", "password for the new account")
	role := flag.String("role", "admin", "role: admin, employee or supervisor")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal().Msg("both -username and -password are required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mysql")
	}

	hash, err := auth.NewHasher().Hash(*password)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash password")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user := &model.User{
		Username:       *username,
		HashedPassword: hash,
		Role:           *role,
		IsActive:       true,
	}
	if err := repository.NewUserRepository(db).Create(ctx, user); err != nil {
		log.Fatal().Err(err).Msg("failed to create user")
	}
	log.Info().Uint("id", user.ID).Str("username", user.Username).Str("role", user.Role).Msg("user created")
}
