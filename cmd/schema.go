// Package cmd implements the command-line interface for literal.
package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/conatus/literal-tools/literal"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().BoolP("book", "b", false, "Generate the JSON Schema for a single book record")
	schemaCmd.SetOut(os.Stdout)
}

// schemaCmd prints the JSON schema of the `--json` reading list output.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema of the --json output",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(writeSchema(cmd, lo.Must(cmd.Flags().GetBool("book"))))
	},
}

func writeSchema(cmd *cobra.Command, book bool) error {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		name := t.Name()
		switch strings.ToLower(name) {
		case "book", "author", "readingprogress":
			return filepath.Base(t.PkgPath()) + "." + name
		}

		return name
	}

	var schema *jsonschema.Schema
	if book {
		schema = reflector.Reflect(&literal.Book{})
	} else {
		schema = reflector.Reflect(&readingOutput{})
	}

	return json.NewEncoder(cmd.OutOrStdout()).Encode(schema)
}
