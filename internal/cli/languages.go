package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/pairlex/pkg/lexer"
)

func newLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the built-in languages",
		Long:  `Print the canonical identifiers of every language the engine ships marker tables for.`,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, id := range lexer.Languages() {
				cmd.Println(id)
			}
		},
	}
}
