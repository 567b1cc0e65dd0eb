package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/NIXKnight/YouTubeSubscriptionTransfer/internal/auth"
	"github.com/NIXKnight/YouTubeSubscriptionTransfer/internal/config"
	"github.com/NIXKnight/YouTubeSubscriptionTransfer/internal/logging"
	"github.com/NIXKnight/YouTubeSubscriptionTransfer/internal/transfer"
)

func main() {
	var (
		wait      = flag.Duration("wait", 0, "Override the delay between API calls (e.g. 500ms, 2s)")
		assumeYes = flag.Bool("yes", false, "Skip the confirmation prompt before importing")
		reauth    = flag.String("reauth", "", "Invalidate the cached token for a role before starting (source|destination|all)")
	)
	flag.Parse()

	if *wait < 0 {
		log.Fatalf("wait time cannot be negative, got: %v", *wait)
	}
	if *wait > 60*time.Second {
		fmt.Println("Warning: wait time over 60 seconds makes imports very slow")
	}

	cfg := config.New()
	if *wait > 0 {
		cfg.Transfer.RequestDelay = *wait
	}
	cfg.Transfer.AssumeYes = *assumeYes

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logCloser, err := logging.Setup(cfg.Files.LogFile)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logCloser.Close()

	authenticator := auth.NewAuthenticator(cfg.Auth.CredentialsFile, cfg.TokenFile)

	if err := handleReauth(authenticator, *reauth); err != nil {
		log.Fatalf("Re-auth failed: %v", err)
	}

	// An interrupt cancels in-flight work; already-persisted tokens and
	// backups stay intact because all writes are atomic.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	menu := transfer.NewMenu(cfg, authenticator, config.NewStdinPrompter())
	if err := menu.Run(ctx); err != nil {
		log.Fatalf("Run failed: %v", err)
	}
}

func handleReauth(authenticator *auth.Authenticator, target string) error {
	switch target {
	case "":
		return nil
	case "all":
		if err := authenticator.Invalidate(auth.RoleSource); err != nil {
			return err
		}
		return authenticator.Invalidate(auth.RoleDestination)
	default:
		role, err := auth.ParseRole(target)
		if err != nil {
			return err
		}
		return authenticator.Invalidate(role)
	}
}
