package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/greyvale/sheet-api/internal/clients/catalog"
	"github.com/greyvale/sheet-api/internal/config"
	entities "github.com/greyvale/sheet-api/internal/entities/sheet"
	internalredis "github.com/greyvale/sheet-api/internal/redis"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load an item and recipe catalog into Redis",
	Long:  `Seed reads a catalog JSON file and writes every item and recipe definition into the Redis catalog.`,
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "catalog.json", "path to the catalog JSON file")
}

// catalogFile is the on-disk shape of a seedable catalog.
type catalogFile struct {
	Items   []*entities.ItemDefinition   `json:"items"`
	Recipes []*entities.RecipeDefinition `json:"recipes"`
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(seedFile)
	if err != nil {
		return fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("failed to parse catalog file: %w", err)
	}

	redisClient, err := internalredis.NewClient(cfg.RedisEndpoint, &internalredis.Options{
		UseTLS: cfg.RedisUseTLS,
	})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}

	catalogClient, err := catalog.NewRedis(&catalog.RedisConfig{
		Client: redisClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create catalog client: %w", err)
	}

	ctx := context.Background()

	for _, item := range file.Items {
		if err := catalogClient.PutItem(ctx, item); err != nil {
			return fmt.Errorf("failed to store item %s: %w", item.ID, err)
		}
	}
	for _, recipe := range file.Recipes {
		if err := catalogClient.PutRecipe(ctx, recipe); err != nil {
			return fmt.Errorf("failed to store recipe %s: %w", recipe.ID, err)
		}
	}

	slog.Info("catalog seeded",
		"items", len(file.Items),
		"recipes", len(file.Recipes),
		"file", seedFile,
	)
	return nil
}
