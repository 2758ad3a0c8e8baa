// Command useradd creates an account in the configured database.
//
// Usage:
//
//	echo 's3cret-password' | useradd -login anna -name "Anna Schmidt" -email anna@kita.example
//
// The password is read from the first line of standard input. Storage is
// configured the same way as for the server (environment and JSON file).
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-kita-inventory/internal/config"
	"github.com/MKhiriev/go-kita-inventory/internal/logger"
	"github.com/MKhiriev/go-kita-inventory/internal/service"
	"github.com/MKhiriev/go-kita-inventory/internal/store"
	"github.com/MKhiriev/go-kita-inventory/internal/validators"
	"github.com/MKhiriev/go-kita-inventory/models"
)

var errNoPassword = errors.New("no password on standard input")

func main() {
	log := logger.NewLogger("useradd")

	cfg, err := config.LoadConfig(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Msg("unknown log level")
	}

	ctx := context.Background()
	storages, err := store.NewStorages(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	err = run(ctx, storages.Users, cfg.Auth, os.Args[1:], os.Stdin, os.Stdout, log)
	if closeErr := storages.Close(); closeErr != nil {
		log.Err(closeErr).Msg("error closing storages")
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "useradd:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, users store.UserRepository, cfg config.Auth, args []string, stdin io.Reader, stdout io.Writer, log *logger.Logger) error {
	fs := flag.NewFlagSet("useradd", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var form models.NewUserForm
	fs.StringVar(&form.Login, "login", "", "Login name")
	fs.StringVar(&form.Email, "email", "", "E-mail address for password resets")
	fs.StringVar(&form.Name, "name", "", "Display name")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("error parsing flags: %w", err)
	}

	password, err := readPassword(stdin)
	if err != nil {
		return err
	}
	form.Password = password
	form.Login = strings.TrimSpace(form.Login)
	form.Email = strings.TrimSpace(form.Email)
	form.Name = strings.TrimSpace(form.Name)

	if err = validators.NewFormValidator().Validate(ctx, form); err != nil {
		return err
	}

	credentials, err := service.NewCredentialVerifier(users, cfg, log)
	if err != nil {
		return err
	}
	hash, err := credentials.HashPassword(form.Password)
	if err != nil {
		return err
	}

	user, err := users.CreateUser(ctx, models.User{
		Login:        form.Login,
		Email:        form.Email,
		Name:         form.Name,
		PasswordHash: hash,
	})
	if err != nil {
		return fmt.Errorf("create user %q: %w", form.Login, err)
	}

	log.Info().Int64("user_id", user.UserID).Str("login", user.Login).Msg("user created")
	fmt.Fprintf(stdout, "created user %s (id %d)\n", user.Login, user.UserID)
	return nil
}

func readPassword(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}

	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errNoPassword
	}
	return line, nil
}
