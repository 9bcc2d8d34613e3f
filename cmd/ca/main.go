// Command ca runs a cellular automaton on a bounded lattice from the
// terminal, or in a window when built with -tags ebiten.
package main

import (
	"log"
	"os"

	"lattice-ca/internal/app"
	_ "lattice-ca/internal/sims/elementary"
	_ "lattice-ca/internal/sims/life"

	"github.com/tebeka/atexit"
)

func main() {
	envFile := os.Getenv("LATTICE_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(envFile); err != nil {
		log.Fatalf("config: %v", err)
	}

	root := newRootCmd(cfg, os.Stdin, os.Stdout)
	if err := root.Execute(); err != nil {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
