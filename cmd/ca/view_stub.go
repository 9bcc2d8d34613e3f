//go:build !ebiten

package main

import (
	"fmt"
	"os"

	"lattice-ca/internal/app"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

func newViewCmd(*app.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Watch the automaton in a window (needs -tags ebiten).",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(os.Stderr, "The windowed viewer requires the ebiten build tag.")
			fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/ca view` or build with `-tags ebiten`.")
			atexit.Exit(2)
		},
	}
}
