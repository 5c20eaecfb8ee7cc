package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all world data",
		Long:  "Permanently delete every generated cell. Asks for confirmation unless --force is given.",
		Run:   runClear,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")

	RootCmd.AddCommand(cmd)
}

func runClear(cmd *cobra.Command, args []string) {
	force, _ := cmd.Flags().GetBool("force")

	if !force {
		fmt.Println("WARNING: this permanently deletes all generated world data.")
		fmt.Print("Type DELETE to confirm: ")
		in := bufio.NewScanner(os.Stdin)
		if !in.Scan() || strings.TrimSpace(in.Text()) != "DELETE" {
			fmt.Println("cancelled")
			return
		}
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	n, err := s.Clear(cmd.Context())
	if err != nil {
		exitErr("clear", err)
	}

	fmt.Printf("cleared %d cubes\n", n)
}
