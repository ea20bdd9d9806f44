// Package cli runs the mock intelligence engine from the command line,
// without the HTTP server or simulated latency.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"paperqa-backend/internal/shared/random"
)

type rootOptions struct {
	json    bool
	noColor bool
	seed    uint64
	now     func() time.Time
}

// NewRootCmd builds the paperqa command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{now: func() time.Time { return time.Now().UTC() }}

	root := &cobra.Command{
		Use:   "paperqa",
		Short: "Ask canned questions about research papers",
		Long: `paperqa exercises the document question-answering engine offline.
Every answer, search result and import is fabricated; nothing is parsed or
fetched.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor || opts.json {
				color.NoColor = true
			}
		},
	}
	root.SetOut(os.Stdout)
	root.PersistentFlags().BoolVar(&opts.json, "json", false, "output as JSON")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().Uint64Var(&opts.seed, "seed", 0, "seed for fabricated values (0 picks a random seed)")

	root.AddCommand(
		newClassifyCmd(opts),
		newAskCmd(opts),
		newSearchCmd(opts),
		newImportCmd(opts),
	)
	return root
}

func (o *rootOptions) source() random.Source {
	if o.seed == 0 {
		return random.Global()
	}
	return random.Seeded(o.seed)
}

func writeJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

var (
	heading = color.New(color.FgCyan, color.Bold).SprintFunc()
	accent  = color.New(color.FgGreen, color.Bold).SprintFunc()
	muted   = color.New(color.FgHiBlack).SprintFunc()
)
