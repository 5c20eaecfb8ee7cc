// Package cli implements the neongrid CLI commands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"neongrid/internal/config"
	"neongrid/internal/generator"
	"neongrid/internal/store"
	"neongrid/internal/worldgen"
)

var dbPath string

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "neongrid",
	Short: "AI-generated cyberpunk exploration world",
	Long:  "Explore a 3D grid world where every cell's description is generated on first visit, persisted in SQLite, and reused on every visit after.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $NEONGRID_DB or ~/.neongrid/world.db)")
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if env := os.Getenv("NEONGRID_DB"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".neongrid", "world.db")
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(getDBPath())
}

// newWorld wires the store, assembler, and generator for one session.
func newWorld(cfg *config.Config, s *store.SQLiteStore) (*worldgen.World, error) {
	provider, err := generator.NewProvider(generator.Options{
		Provider:    cfg.Provider,
		BaseURL:     cfg.BaseURL,
		APIKey:      cfg.APIKey,
		Model:       cfg.Model,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	})
	if err != nil {
		return nil, err
	}

	gen := generator.New(provider, cfg.WorldSize, cfg.MaxRetries, cfg.RetryDelay, s.NewID)
	asm := worldgen.NewAssembler(s, cfg.ContextRadius, cfg.ContextMaxNeighbors, cfg.ContextCharBudget)
	return worldgen.New(s, asm, gen, cfg.WorldSize), nil
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
