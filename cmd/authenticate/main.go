// Command authenticate is the verification entry point invoked by the
// RADIUS server, one process per login attempt. It prints exactly one
// line to stdout, either "Auth-Type := Accept" or "Auth-Type := Reject",
// and exits 0 on accept, 1 on reject. Audit logging goes to the
// configured file sink so stdout stays clean for the caller.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"portal/config"
	"portal/internal/infra/auth"
	logs "portal/internal/infra/log"
	"portal/internal/infra/persistence/postgres"
	"portal/internal/usecase"
	"portal/internal/usecase/impl"
)

func main() {
	output := run(os.Args[1:])
	fmt.Println(output.AuthTypeLine())
	os.Exit(output.ExitCode())
}

// run resolves the decision for the given arguments. Every failure
// path, including setup faults, resolves to Reject; the caller only
// ever sees the attribute line and the exit status.
func run(args []string) *usecase.VerifyOutput {
	reject := &usecase.VerifyOutput{Accepted: false}

	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: authenticate <username> <password>")

		return reject
	}
	username, password := args[0], args[1]

	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "authenticate: load config: %v\n", err)

		return reject
	}

	// Stdout belongs to the Auth-Type line alone. Without a configured
	// log file the audit lines go to stderr instead of the default
	// stdout sink.
	var logger *slog.Logger
	if cfg.Env.Log.File == "" {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	} else {
		var err error
		logger, err = logs.NewWithConfig(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "authenticate: init logger: %v\n", err)

			return reject
		}
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		logger.Error("Failed to open credential store", slog.Any("error", err))

		return reject
	}
	defer func() {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
	}()

	hasher, err := auth.NewHasher(cfg)
	if err != nil {
		logger.Error("Failed to build password hasher", slog.Any("error", err))

		return reject
	}

	authUC := impl.NewAuthService(impl.AuthServiceParams{
		StudentRepo: postgres.NewStudentRepository(db),
		Hasher:      hasher,
		Logger:      logger,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Auth.VerifyTimeout)
	defer cancel()

	return authUC.Verify(ctx, &usecase.VerifyInput{
		Username: username,
		Password: password,
	})
}
