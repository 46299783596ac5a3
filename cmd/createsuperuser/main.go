// Command createsuperuser provisions a staff account with full privileges.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/sbilibin2017/recipe-api/internal/db"
	"github.com/sbilibin2017/recipe-api/internal/logger"
	"github.com/sbilibin2017/recipe-api/internal/repositories"
	"github.com/sbilibin2017/recipe-api/internal/services"
	"github.com/sbilibin2017/recipe-api/internal/token"
)

var errMissingCredentials = errors.New("email and password are required")

type options struct {
	configPath string
	email      string
	password   string
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("createsuperuser", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "c", "config.env", "Path to configuration file")
	fs.StringVar(&opts.email, "email", "", "Superuser email (or SUPERUSER_EMAIL)")
	fs.StringVar(&opts.password, "password", "", "Superuser password (or SUPERUSER_PASSWORD)")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	return opts, nil
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

// parseConfig fills credentials not given as flags from the environment
// and returns the database settings.
func parseConfig(opts *options) (dbOpts db.Options, err error) {
	_ = godotenv.Load(opts.configPath)

	if opts.email == "" {
		opts.email = getEnv("SUPERUSER_EMAIL", "")
	}
	if opts.password == "" {
		opts.password = getEnv("SUPERUSER_PASSWORD", "")
	}
	if opts.email == "" || opts.password == "" {
		err = errMissingCredentials
		return
	}

	dbOpts.Host = getEnv("POSTGRES_HOST", "localhost")
	dbOpts.User = getEnv("POSTGRES_USER", "user")
	dbOpts.Password = getEnv("POSTGRES_PASSWORD", "password")
	dbOpts.Database = getEnv("POSTGRES_DB", "database")
	dbOpts.MaxOpenConns, dbOpts.MaxIdleConns = 1, 1
	if dbOpts.Port, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	return
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	dbOpts, err := parseConfig(&opts)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), dbOpts, opts.email, opts.password); err != nil {
		log.Fatalf("failed to create superuser: %v", err)
	}
}

func run(ctx context.Context, dbOpts db.Options, email, password string) error {
	if err := logger.Initialize("info"); err != nil {
		return err
	}
	defer logger.Sync()

	conn, err := db.Open(dbOpts)
	if err != nil {
		return err
	}
	defer conn.Close()
	if err := db.WaitForDB(ctx, conn, 30, time.Second); err != nil {
		return err
	}
	if err := db.Migrate(conn.DB); err != nil {
		return err
	}

	authService := services.NewAuthService(
		repositories.NewUserReadRepository(conn),
		repositories.NewUserWriteRepository(conn),
		repositories.NewTokenRepository(conn),
		token.New(),
	)

	user, err := authService.CreateSuperuser(ctx, email, password)
	if err != nil {
		return err
	}
	fmt.Printf("Superuser %s created with id %d\n", user.Email, user.ID)
	return nil
}
