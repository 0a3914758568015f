package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-delve/config"
	"ebiten-delve/data"
	"ebiten-delve/sim"
	"ebiten-delve/systems"
)

func main() {
	// run has closed delve.log by the time it returns
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run parses args and runs the chosen viewer
func run(args []string, stdout io.Writer) (err error) {
	flags := flag.NewFlagSet("delve", flag.ContinueOnError)
	mode := flags.String("mode", "view", "Viewer: 'view' (window), 'term' (terminal) or 'dump' (print the level)")
	seed := flags.Int64("seed", 0, "Level seed, 0 picks one from the clock")
	configPath := flags.String("config", "", "JSON level configuration file")
	templateDir := flags.String("templates", "", "Directory of JSON agent templates")
	difficulty := flags.Float64("difficulty", sim.DefaultDifficulty, "Agent density")
	debug := flags.Bool("debug", false, "Write the message log to delve.log")
	inspect := flags.Bool("inspect", false, "With -mode dump, also print every entity's components")
	if err := flags.Parse(args); err != nil {
		return err
	}

	logFile := setupLogging(*debug)
	if logFile != nil {
		defer func() {
			if err != nil {
				log.Print(err)
			}
			log.SetOutput(os.Stderr)
			logFile.Close()
		}()
	}

	messages := systems.NewMessageLog()
	if logFile != nil {
		messages.SetSink(func(m string) { log.Print(m) })
	}

	levelCfg := config.DefaultLevelConfig()
	if *configPath != "" {
		if levelCfg, err = config.LoadLevelConfig(*configPath); err != nil {
			return err
		}
	}

	templates := data.DefaultTemplates()
	if *templateDir != "" {
		if err := templates.LoadTemplatesFromDirectory(*templateDir); err != nil {
			return err
		}
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	opts := sim.Options{
		Level:      levelCfg,
		Seed:       *seed,
		Difficulty: *difficulty,
		Templates:  templates,
		LogFunc:    messages.Add,
	}

	switch *mode {
	case "view":
		game, err := NewGame(opts, messages)
		if err != nil {
			return err
		}
		windowWidth, windowHeight := config.GetWindowSize()
		ebiten.SetWindowSize(windowWidth, windowHeight)
		ebiten.SetWindowTitle("Delve - Level Viewer")
		if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
			return err
		}
		return nil
	case "term":
		session, err := sim.NewSession(opts)
		if err != nil {
			return err
		}
		return runTerminal(session, messages)
	case "dump":
		session, err := sim.NewSession(opts)
		if err != nil {
			return err
		}
		return dump(stdout, session, *inspect)
	default:
		return fmt.Errorf("unknown mode %q", *mode)
	}
}

// setupLogging sends the standard logger to delve.log when debugging.
// Otherwise it stays on stderr and only fatal errors reach it.
func setupLogging(debug bool) *os.File {
	if !debug {
		return nil
	}
	f, err := os.OpenFile("delve.log", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		log.Printf("failed to open delve.log: %v", err)
		return nil
	}
	log.SetOutput(f)
	return f
}

// dump prints the level summary and tiles, and optionally every entity
func dump(w io.Writer, session *sim.Session, inspect bool) error {
	for _, line := range session.Summary() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, session.Result.String()); err != nil {
		return err
	}
	if inspect {
		return session.Inspect(w)
	}
	return nil
}
