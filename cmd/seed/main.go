package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/app"
)

func main() {
	ctx := context.Background()
	application, err := app.New(ctx)
	if err != nil {
		fmt.Printf("init app: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	res, err := application.Services.Seeder.Run(ctx)
	if err != nil {
		fmt.Printf("seed: %v\n", err)
		application.Close()
		os.Exit(1)
	}
	fmt.Printf("Created %d user preferences\n", res.Preferences)
	fmt.Printf("Created %d contact submissions\n", res.Contacts)
}
