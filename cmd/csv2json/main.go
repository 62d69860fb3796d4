// Command csv2json converts the toki pona dictionary CSV (word, pos,
// definition, example) into the grouped word list served to the app at
// assets/data/words.json.
//
// Flags:
//
//	-config   path to YAML config file (default: CONFIG_PATH or ./config.yaml)
//	-dry-run  parse and group the source without writing the destination
//	-version  print the build version and exit
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/heartmarshall/tokipona-words/internal/app"
	"github.com/heartmarshall/tokipona-words/internal/app/catalog"
	"github.com/heartmarshall/tokipona-words/internal/config"
	"github.com/heartmarshall/tokipona-words/pkg/ctxutil"
)

func main() {
	configFlag := flag.String("config", "", "path to YAML config file")
	dryRunFlag := flag.Bool("dry-run", false, "parse the source without writing the destination")
	versionFlag := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Println(app.BuildVersion())
		return
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	// CLI flags override config.
	if *dryRunFlag {
		cfg.Catalog.DryRun = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runID := uuid.New()
	ctx = ctxutil.WithRunID(ctx, runID)

	logger.Info("starting csv2json",
		slog.String("version", app.BuildVersion()),
		slog.String("run_id", runID.String()),
	)

	t := catalog.NewTransformer(logger, afero.NewOsFs(), cfg.Catalog)
	if _, err := t.Run(ctx); err != nil {
		logger.Error("conversion failed",
			slog.String("run_id", runID.String()),
			slog.String("error", err.Error()),
		)
		stop()
		os.Exit(1)
	}
}
