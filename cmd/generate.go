package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"firestige.xyz/hdrkit/internal/gen"
	"firestige.xyz/hdrkit/internal/log"
)

type generateOptions struct {
	*rootOptions

	file   string
	output string
	pkg    string
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate typed Go headers from a declaration file",
		Long: `Generate one Go type per declared header, with a constant block for the
field geometry and a getter/setter pair per field.

The package name is taken from -p, then from the file's package key, then
from the generate.package config value. Use -o - to write to stdout.

Examples:
  hdrkit generate -f headers.yaml
  hdrkit generate -f headers.yaml -o zz_generated.go -p headers`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "header declaration file (required)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, - for stdout (default from config)")
	cmd.Flags().StringVarP(&opts.pkg, "package", "p", "", "Go package name of the generated file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runGenerate(opts *generateOptions, out io.Writer) error {
	f, err := gen.Load(opts.file)
	if err != nil {
		return err
	}
	schemas, err := f.Schemas()
	if err != nil {
		return fmt.Errorf("invalid declarations in %s: %w", opts.file, err)
	}

	cfg, err := opts.config()
	if err != nil {
		return err
	}
	pkg := opts.pkg
	if pkg == "" {
		pkg = f.Package
	}
	if pkg == "" {
		pkg = cfg.Generate.Package
	}

	src, err := gen.Render(pkg, opts.file, schemas)
	if err != nil {
		return err
	}

	output := opts.output
	if output == "" {
		output = cfg.Generate.Output
	}
	if output == "-" {
		_, err = out.Write(src)
		return err
	}
	if err := os.WriteFile(output, src, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	log.GetLogger().WithFields(map[string]interface{}{
		"source":  opts.file,
		"output":  output,
		"package": pkg,
		"headers": len(schemas),
	}).Info("generated headers")
	return nil
}
