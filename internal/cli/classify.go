package cli

import (
	"github.com/spf13/cobra"

	"paperqa-backend/internal/engine"
)

func newClassifyCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "classify [question]",
		Short: "Show how a question is categorized",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := engine.Classify(args[0])
			if opts.json {
				return writeJSON(cmd, map[string]string{"question": args[0], "queryType": string(category)})
			}
			cmd.Println(accent(string(category)))
			return nil
		},
	}
}
