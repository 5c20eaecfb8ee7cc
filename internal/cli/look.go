package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"neongrid/internal/config"
	"neongrid/internal/model"
	"neongrid/internal/player"
)

func init() {
	cmd := &cobra.Command{
		Use:   "look",
		Short: "Resolve a single coordinate",
		Long:  "Resolve one cell: a cache hit returns the stored record, a miss generates and persists it. Out-of-range coordinates are clamped to world bounds first.",
		Run:   runLook,
	}

	cmd.Flags().IntP("x", "x", 0, "X coordinate")
	cmd.Flags().IntP("y", "y", 0, "Y coordinate")
	cmd.Flags().IntP("z", "z", 0, "Z coordinate")

	RootCmd.AddCommand(cmd)
}

func runLook(cmd *cobra.Command, args []string) {
	x, _ := cmd.Flags().GetInt("x")
	y, _ := cmd.Flags().GetInt("y")
	z, _ := cmd.Flags().GetInt("z")

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

	coord, clamped := player.Clamp(model.Coordinate{X: x, Y: y, Z: z}, cfg.WorldSize)
	if clamped.Any() {
		fmt.Printf("coordinate clamped to (%d, %d, %d)\n", coord.X, coord.Y, coord.Z)
	}

	rec, hit, err := world.Resolve(cmd.Context(), coord)
	if err != nil {
		exitErr("look", err)
	}

	out := struct {
		CacheHit bool          `json:"cache_hit"`
		Record   *model.Record `json:"record"`
	}{CacheHit: hit, Record: rec}

	b, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(b))
}
