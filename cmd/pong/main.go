package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/diegok/pong/internal/app"
	"github.com/diegok/pong/internal/config"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		printUsage()
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	application := app.NewApp(cfg)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  pong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --config <file>        TOML configuration file")
	fmt.Fprintln(os.Stderr, "  --width <n>            Playfield width (default: 600)")
	fmt.Fprintln(os.Stderr, "  --height <n>           Playfield height (default: 360)")
	fmt.Fprintln(os.Stderr, "  --paddle-length <n>    Paddle length (default: 60)")
	fmt.Fprintln(os.Stderr, "  --ball-speed <n>       Initial ball ticks per second (default: 60)")
	fmt.Fprintln(os.Stderr, "  --paddle-speed <n>     Initial paddle ticks per second (default: 60)")
	fmt.Fprintln(os.Stderr, "  --acceleration <f>     Speed factor per paddle hit (default: 1.05)")
	fmt.Fprintln(os.Stderr, "  --goal-delay <d>       Pause after a goal (default: 500ms)")
	fmt.Fprintln(os.Stderr, "  --sound                Start with sound on")
	fmt.Fprintln(os.Stderr, "  --angle-paddle=false   Start with angling paddles off")
	fmt.Fprintln(os.Stderr, "  --seed <n>             Random seed (default: from clock)")
	fmt.Fprintln(os.Stderr, "  --log <file>           Write logs to this file")
	fmt.Fprintln(os.Stderr, "  --log-level <level>    debug, info, warn or error (default: info)")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Keys:")
	fmt.Fprintln(os.Stderr, "  SPACE start  ESC stop  P pause  1 sound  2 angling paddles  X quit")
	fmt.Fprintln(os.Stderr, "  Q/A left paddle  UP/DOWN right paddle  mouse drag moves a paddle")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  pong --sound")
	fmt.Fprintln(os.Stderr, "  pong --config pong.toml --log pong.log --log-level debug")
}
