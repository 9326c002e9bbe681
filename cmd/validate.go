package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"firestige.xyz/hdrkit/internal/gen"
)

type validateOptions struct {
	*rootOptions

	file string
}

func newValidateCmd(root *rootOptions) *cobra.Command {
	opts := &validateOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a header declaration file",
		Long: `Validate a header declaration file without generating code.

Checks field ranges against the header size, default byte counts and that
every field maps to a Go accessor that does not clash with another one.

Examples:
  hdrkit validate -f headers.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "header declaration file to validate (required)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runValidate(opts *validateOptions, out io.Writer) error {
	f, err := gen.Load(opts.file)
	if err != nil {
		return err
	}
	schemas, err := f.Schemas()
	if err != nil {
		return fmt.Errorf("INVALID: %w", err)
	}

	pkg := f.Package
	if pkg == "" {
		cfg, err := opts.config()
		if err != nil {
			return err
		}
		pkg = cfg.Generate.Package
	}
	if _, err := gen.Render(pkg, opts.file, schemas); err != nil {
		return fmt.Errorf("INVALID: %w", err)
	}

	fmt.Fprintf(out, "VALID: %s - %d header(s)\n", opts.file, len(schemas))
	for _, s := range schemas {
		fmt.Fprintf(out, "  %-16s %3d bytes, %2d field(s)\n", s.Name(), s.Size(), len(s.Fields()))
	}
	return nil
}
