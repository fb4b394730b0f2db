// Command nordnotes-seed manages the demo dataset in the configured store.
//
//	nordnotes-seed [ensure]       seed when the stored version differs
//	nordnotes-seed reseed         overwrite with the demo dataset
//	nordnotes-seed clear          remove every marketplace key
//	nordnotes-seed stats <id>     print seller statistics
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/nordnotes/nordnotes/backend/go-services/internal/config"
	"github.com/nordnotes/nordnotes/backend/go-services/internal/market"
	"github.com/nordnotes/nordnotes/backend/go-services/internal/seed"
	"github.com/nordnotes/nordnotes/backend/go-services/internal/storage"
	"github.com/nordnotes/nordnotes/backend/go-services/pkg/logger"
)

var errUsage = errors.New("usage: nordnotes-seed [ensure|reseed|clear|stats <sellerId>]")

func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	store, closeStore, err := storage.Open(ctx, cfg)
	if err != nil {
		logger.Fatalf("failed to open store: %v", err)
	}
	defer closeStore()

	if err := run(ctx, store, cfg, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		closeStore()
		os.Exit(1)
	}
}

func run(ctx context.Context, store *storage.Store, cfg *config.Config, args []string, out io.Writer) error {
	cmd := "ensure"
	if len(args) > 0 {
		cmd = args[0]
	}
	loader := seed.NewLoader(store, cfg.Market.SeedVersion)

	switch cmd {
	case "ensure":
		seeded, err := loader.EnsureSeeded(ctx)
		if err != nil {
			return err
		}
		if seeded {
			fmt.Fprintf(out, "seeded demo data version %s\n", loader.Version())
		} else {
			fmt.Fprintf(out, "demo data already at version %s\n", loader.Version())
		}
	case "reseed":
		if err := loader.Force(ctx); err != nil {
			return err
		}
		fmt.Fprintf(out, "reseeded demo data version %s\n", loader.Version())
	case "clear":
		if err := store.ClearAll(ctx); err != nil {
			return err
		}
		fmt.Fprintln(out, "cleared marketplace data")
	case "stats":
		if len(args) < 2 {
			return errUsage
		}
		opts := market.OptionsFromConfig(cfg.Market)
		opts.ReadOnly = true
		svc := market.New(ctx, store, opts)
		if !svc.HasUser(args[1]) {
			return fmt.Errorf("unknown user %q", args[1])
		}
		st := svc.SellerStats(args[1])
		rating := "-"
		if st.Rating != nil {
			rating = fmt.Sprintf("%.1f", *st.Rating)
		}
		fmt.Fprintf(out, "documents=%d sales=%d earnings=%s NOK rating=%s\n",
			st.Documents, st.Sales, st.Earnings.StringFixed(2), rating)
	default:
		return errUsage
	}
	return nil
}
