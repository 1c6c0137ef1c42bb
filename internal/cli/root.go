package cli

import "github.com/spf13/cobra"

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "flatapi",
		Short:   "flatapi - flatten OpenAPI operations into typed entrypoints",
		Version: "1.0.0",

		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(ExtractCommand())

	return root
}
