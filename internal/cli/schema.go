package cli

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/vk/remapc/internal/app"
)

func newSchemaCmd(outW io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the compiled configuration",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.WriteSchema(outW)
		},
	}
}
