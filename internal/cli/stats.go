package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"neongrid/internal/config"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show world generation statistics",
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		exitErr("load config", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	world, err := newWorld(cfg, s)
	if err != nil {
		exitErr("init world", err)
	}

	stats, err := world.Stats(cmd.Context())
	if err != nil {
		exitErr("stats", err)
	}

	b, _ := json.MarshalIndent(stats, "", "  ")
	fmt.Println(string(b))
}
