package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/app"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/platform/shutdown"
)

func main() {
	ctx, stop := shutdown.NotifyContext(context.Background())
	defer stop()

	a, err := app.New(ctx)
	if err != nil {
		fmt.Printf("failed to initialize app: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(ctx); err != nil {
		a.Log.Error("server exited", "error", err)
		a.Close()
		os.Exit(1)
	}
}
