package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"neongrid/internal/config"
)

func init() {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check world data integrity",
		Long:  "Verify every persisted cell has in-bounds coordinates and a non-empty description.",
		Run:   runValidate,
	}

	RootCmd.AddCommand(cmd)
}

func runValidate(cmd *cobra.Command, args []string) {
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

	v, err := world.Validate(cmd.Context())
	if err != nil {
		exitErr("validate", err)
	}

	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}
