// Command createuser adds an account that can request API tokens.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"blog/config"
	"blog/database"
	"blog/logger"
	"blog/repositories"
	"blog/services"

	"github.com/joho/godotenv"
)

func main() {
	username := flag.String("username", "", "account username")
	password := flag.String("password", "", "account password")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.New(cfg.AppEnv, cfg.LogLevel)

	db, err := database.Connect(cfg, log)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userService := services.NewUserService(repositories.NewGormUserRepository(db))
	user, err := userService.CreateUser(ctx, *username, *password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "createuser: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	log.WithField("user_id", user.ID).Infof("User %s created", user.Username)
}
