package cli

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"paperqa-backend/internal/arxiv"
)

func newSearchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "Fabricate ArXiv search results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := opts.now()
			papers := arxiv.GeneratePapers(opts.source(), now, args[0])
			if opts.json {
				return writeJSON(cmd, papers)
			}

			for i, p := range papers {
				cmd.Printf("  [%d] %s\n", i+1, heading(p.Title))
				cmd.Printf("      %s  %s  %s\n", accent(p.ID), p.PrimaryCategory, muted(humanize.RelTime(p.Published, now, "ago", "from now")))
				cmd.Printf("      %s\n", strings.Join(p.Authors, ", "))
				cmd.Printf("      %s\n", muted(p.PDFURL))
				cmd.Println()
			}
			return nil
		},
	}
}
