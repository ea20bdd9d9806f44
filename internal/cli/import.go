package cli

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"paperqa-backend/internal/arxiv"
	"paperqa-backend/internal/documents"
)

func newImportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import [paper-id]",
		Short: "Fabricate the document an ArXiv import would create",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			if id == "" {
				return fmt.Errorf("paper id required: %w", arxiv.ErrInvalidInput)
			}
			doc := arxiv.FabricateImport(opts.source(), id, opts.now())
			if opts.json {
				return writeJSON(cmd, documents.ToResponse(doc))
			}

			cmd.Println(heading(doc.Title))
			cmd.Printf("  %s %s\n", muted("file:"), doc.FileName)
			cmd.Printf("  %s %s\n", muted("authors:"), strings.Join(doc.Authors, ", "))
			cmd.Printf("  %s %d pages, %s\n", muted("size:"), doc.PageCount, humanize.Bytes(uint64(doc.SizeBytes)))
			cmd.Printf("  %s %d sections, %d tables, %d figures, %d equations, %d references\n",
				muted("structure:"), doc.Sections, doc.Tables, doc.Figures, doc.Equations, doc.References)
			return nil
		},
	}
}
