package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"neongrid/internal/config"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export world data as plain text",
		Long:  "Dump every generated cell as '(x, y, z): description' lines, to stdout or a file.",
		Run:   runExport,
	}

	cmd.Flags().StringP("out", "o", "", "Output file (default: stdout)")

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	outPath, _ := cmd.Flags().GetString("out")

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

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			exitErr("create export file", err)
		}
		defer f.Close()
		out = f
	}

	n, err := world.Export(cmd.Context(), out)
	if err != nil {
		exitErr("export", err)
	}
	if outPath != "" {
		fmt.Printf("exported %d cubes to %s\n", n, outPath)
	}
}
