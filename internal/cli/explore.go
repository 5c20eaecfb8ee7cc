package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"neongrid/internal/config"
	"neongrid/internal/model"
	"neongrid/internal/player"
)

func init() {
	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Explore the world interactively",
		Long:  "Walk through the grid one cell at a time. Each new cell is described on first visit and remembered forever after.",
		Run:   runExplore,
	}

	RootCmd.AddCommand(cmd)
}

func runExplore(cmd *cobra.Command, args []string) {
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

	ps, err := player.New(cfg.Start(), cfg.WorldSize)
	if err != nil {
		exitErr("init player", err)
	}

	fmt.Printf("Welcome to neongrid. A %dx%dx%d world awaits.\n", cfg.WorldSize, cfg.WorldSize, cfg.WorldSize)
	fmt.Println("Type 'help' for controls or 'quit' to exit.")
	fmt.Println()

	ctx := cmd.Context()
	in := bufio.NewScanner(os.Stdin)

	for {
		rec, hit, err := world.Resolve(ctx, ps.Position)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			fmt.Println("This cell could not be saved; move again to retry.")
		} else {
			source := "new"
			if hit {
				source = "revisited"
			}
			fmt.Printf("[%d, %d, %d] (%s)\n", ps.Position.X, ps.Position.Y, ps.Position.Z, source)
			fmt.Println(rec.Description)
			if rec.Source == model.SourceFallback {
				fmt.Println("(signal lost: placeholder description)")
			}
			fmt.Println()
		}

		fmt.Print("> ")
		if !in.Scan() {
			fmt.Println()
			return
		}
		line := strings.ToLower(strings.TrimSpace(in.Text()))

		switch line {
		case "w", "up":
			move(ps, model.DirUp)
		case "s", "down":
			move(ps, model.DirDown)
		case "a", "left":
			move(ps, model.DirLeft)
		case "d", "right":
			move(ps, model.DirRight)
		case "e", "forward":
			move(ps, model.DirForward)
		case "q", "backward":
			move(ps, model.DirBackward)
		case "help", "h":
			printHelp()
		case "stats":
			stats, err := world.Stats(ctx)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: stats: %v\n", err)
				continue
			}
			b, _ := json.MarshalIndent(stats, "", "  ")
			fmt.Println(string(b))
		case "quit", "exit":
			fmt.Println("Jacking out. The grid remembers you.")
			return
		case "":
			// re-prompt
		default:
			fmt.Printf("Unknown command %q; type 'help'.\n", line)
		}
	}
}

func move(ps *player.State, dir model.Direction) {
	_, clamped := ps.Move(dir)
	if clamped.Any() {
		fmt.Println("Boundary reached; you can't go further that way.")
	}
}

func printHelp() {
	fmt.Println(`Controls:
  w / up        move up (+Y)
  s / down      move down (-Y)
  a / left      move left (-X)
  d / right     move right (+X)
  e / forward   move forward (+Z)
  q / backward  move backward (-Z)
  stats         world generation statistics
  help          this message
  quit          exit`)
}
