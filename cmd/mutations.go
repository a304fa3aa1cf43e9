// Package cmd implements the command-line interface for literal.
package cmd

import (
	"os"

	"github.com/conatus/literal-tools/style"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(mutationsCmd)
	mutationsCmd.SetOut(os.Stdout)
}

// mutationsCmd lists the mutations the API schema exposes.
var mutationsCmd = &cobra.Command{
	Use:    "mutations",
	Short:  "List the mutations available on the Literal.club API",
	Args:   cobra.NoArgs,
	Hidden: true,
	Run: func(cmd *cobra.Command, args []string) {
		client, token, err := session(cmd.Context())
		handleErr(err)

		names, err := client.Mutations(cmd.Context(), token)
		handleErr(err)

		cmd.Println(style.Bold("Available mutations:"))
		for _, name := range names {
			cmd.Println("  " + name)
		}
	},
}
