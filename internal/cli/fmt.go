package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/vk/remapc/internal/hcl_adapter"
)

func newFmtCmd(outW io.Writer) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt [--write] SCRIPT",
		Short: "Rewrite a native-syntax script in canonical layout",
		Long: `fmt prints SCRIPT in canonical HCL layout. With --write the file is
updated in place instead, and only when its layout changes.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			src, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("cannot read script: %w", err)
			}

			formatted, err := hcl_adapter.Format(path, src)
			if err != nil {
				return err
			}

			if !write {
				_, err := outW.Write(formatted)
				return err
			}
			if bytes.Equal(src, formatted) {
				return nil
			}
			info, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("cannot read script: %w", err)
			}
			if err := os.WriteFile(path, formatted, info.Mode().Perm()); err != nil {
				return fmt.Errorf("failed to write script: %w", err)
			}
			fmt.Fprintln(outW, path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the result to SCRIPT instead of stdout.")
	return cmd
}
