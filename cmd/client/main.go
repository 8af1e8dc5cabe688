// Command client is a minimal command-line frontend for a SavedIt
// backend. It drives the same client components the GUI frontends use:
// log in, quick-save a URL into an optional collection, then print the
// dashboard.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/savedit/savedit/internal/adapter"
	"github.com/savedit/savedit/internal/client"
	"github.com/savedit/savedit/internal/config"
	"github.com/savedit/savedit/internal/logger"
	"github.com/savedit/savedit/models"
)

func main() {
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "account password")
	saveURL := flag.String("save", "", "URL to quick-save (optional)")
	collectionID := flag.String("collection", "", "collection to attach the saved URL to (optional)")
	query := flag.String("query", "", "dashboard search query (optional)")
	flag.Parse()

	log := logger.NewLogger("savedit-client")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "both -email and -password are required")
		flag.Usage()
		os.Exit(2)
	}

	backend := adapter.NewHTTPBackend(adapter.HTTPClientConfig{
		BaseURL: cfg.Client.BaseURL,
		Timeout: cfg.Client.Timeout,
	})

	ctx := context.Background()

	if _, err := backend.Login(ctx, models.User{Email: *email, AuthHash: *password}); err != nil {
		log.Fatal().Err(err).Msg("login failed")
	}

	if *saveURL != "" {
		intake := client.NewQuickSaveIntake(backend, log)
		result, err := intake.Save(ctx, models.SaveItemRequest{URL: *saveURL}, *collectionID)
		if err != nil {
			log.Fatal().Err(err).Msg("save failed")
		}

		switch result.Outcome {
		case client.OutcomeAlreadySaved:
			fmt.Println("already saved")
		case client.OutcomeSavedNotAttached:
			fmt.Printf("saved %s (could not attach to collection)\n", result.Item.ID)
		default:
			fmt.Printf("saved %s\n", result.Item.ID)
		}
	}

	dashboard := client.NewDashboardView(backend, log)
	items, warning := dashboard.Load(ctx, *query, client.SortNewest)
	if warning != nil {
		fmt.Fprintln(os.Stderr, warning.Message)
	}

	for _, item := range items {
		title := item.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Printf("%s  %s  %s\n", item.ID, title, item.URL)
	}
}
