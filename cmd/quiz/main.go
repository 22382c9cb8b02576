package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/platform/envutil"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/platform/logger"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/platform/shutdown"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/preferences"
)

func main() {
	opts := options{}
	flag.StringVar(&opts.api, "api", envutil.String("PORTFOLIO_API_URL", "http://localhost:8080", nil), "preference API base URL")
	flag.StringVar(&opts.store, "store", "file", "snapshot storage: file|redis|memory")
	flag.StringVar(&opts.path, "path", envutil.String("PREFERENCES_PATH", defaultStoreDir(), nil), "directory for file storage")
	flag.StringVar(&opts.redisAddr, "redis", envutil.String("REDIS_ADDR", "localhost:6379", nil), "redis address for redis storage")
	flag.BoolVar(&opts.submit, "submit", false, "send the completed snapshot to the API")
	flag.BoolVar(&opts.reset, "reset", false, "clear the stored preferences and exit")
	flag.StringVar(&opts.theme, "theme", "", "set the theme (professional|creative|minimal|dark) and exit")
	flag.BoolVar(&opts.show, "show", false, "print the stored preferences and exit")
	flag.Parse()

	log, err := logger.New(envutil.String("LOG_MODE", "development", nil))
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := shutdown.NotifyContext(context.Background())
	defer stop()

	storage, closeStorage, err := openStorage(ctx, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open storage: %v\n", err)
		os.Exit(1)
	}
	defer closeStorage()

	store := preferences.NewStore(storage, log)
	fwd := preferences.NewForwarder(opts.api, nil, log)
	if err := run(ctx, opts, store, fwd, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		closeStorage()
		os.Exit(1)
	}
}

func defaultStoreDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "lekopien-portfolio")
	}
	return ".lekopien-portfolio"
}
