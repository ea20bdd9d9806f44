package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"paperqa-backend/internal/documents"
	"paperqa-backend/internal/engine"
)

type askOptions struct {
	fileName   string
	title      string
	abstract   string
	pages      int
	sections   int
	tables     int
	figures    int
	references int
}

func newAskCmd(opts *rootOptions) *cobra.Command {
	var ao askOptions

	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Answer a question about a described document",
		Long: `Answers a question the way the API would, against a document described
by flags. Counts left at zero are rendered as words such as "multiple".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := args[0]
			doc := documents.Document{
				FileName:   ao.fileName,
				Title:      ao.title,
				Abstract:   ao.abstract,
				PageCount:  ao.pages,
				Sections:   ao.sections,
				Tables:     ao.tables,
				Figures:    ao.figures,
				References: ao.references,
			}
			category := engine.Classify(question)
			resp := engine.Answer(doc, question, category)

			if opts.json {
				return writeJSON(cmd, engine.AssistantMessage(resp, category, 0, opts.now()))
			}

			cmd.Printf("%s %s  %s %.2f\n", muted("type:"), accent(string(category)), muted("confidence:"), resp.Confidence)
			cmd.Println()
			cmd.Println(resp.Answer)
			cmd.Println()
			cmd.Println(heading("Sources"))
			for _, src := range resp.Sources {
				cmd.Printf("  - %s\n", src)
			}
			if len(resp.RelevantSections) > 0 {
				cmd.Printf("%s %s\n", muted("sections:"), strings.Join(resp.RelevantSections, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&ao.fileName, "file", "f", "paper.pdf", "document file name")
	cmd.Flags().StringVarP(&ao.title, "title", "t", "", "document title")
	cmd.Flags().StringVar(&ao.abstract, "abstract", "", "document abstract")
	cmd.Flags().IntVarP(&ao.pages, "pages", "p", 12, "page count")
	cmd.Flags().IntVar(&ao.sections, "sections", 0, "section count")
	cmd.Flags().IntVar(&ao.tables, "tables", 0, "table count")
	cmd.Flags().IntVar(&ao.figures, "figures", 0, "figure count")
	cmd.Flags().IntVar(&ao.references, "references", 0, "reference count")
	return cmd
}
