package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"firestige.xyz/hdrkit/internal/gen"
	"firestige.xyz/hdrkit/pkg/header"
	_ "firestige.xyz/hdrkit/pkg/headers" // bundled headers
)

type showOptions struct {
	*rootOptions

	file string
}

func newShowCmd(root *rootOptions) *cobra.Command {
	opts := &showOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "show [name...]",
		Short: "Print the default field table of headers",
		Long: `Print the field table of each header as created with its defaults.

Without -f the bundled headers are shown; naming headers restricts the output.

Examples:
  hdrkit show
  hdrkit show Vlan IPv4
  hdrkit show -f headers.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(opts, args, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "header declaration file (default bundled headers)")
	return cmd
}

type dumper interface {
	Dump(w io.Writer) error
}

func runShow(opts *showOptions, names []string, out io.Writer) error {
	headers, err := showHeaders(opts.file, names)
	if err != nil {
		return err
	}

	for i, h := range headers {
		if i > 0 {
			fmt.Fprintln(out)
		}
		d, ok := h.(dumper)
		if !ok {
			return fmt.Errorf("header %s cannot be dumped", h.Name())
		}
		if err := d.Dump(out); err != nil {
			return err
		}
	}
	return nil
}

func showHeaders(file string, names []string) ([]header.Header, error) {
	if file == "" {
		if len(names) == 0 {
			names = header.Names()
		}
		headers := make([]header.Header, 0, len(names))
		for _, name := range names {
			h, err := header.New(name)
			if err != nil {
				return nil, err
			}
			headers = append(headers, h)
		}
		return headers, nil
	}

	f, err := gen.Load(file)
	if err != nil {
		return nil, err
	}
	schemas, err := f.Schemas()
	if err != nil {
		return nil, fmt.Errorf("invalid declarations in %s: %w", file, err)
	}

	byName := make(map[string]*header.Schema, len(schemas))
	for _, s := range schemas {
		byName[s.Name()] = s
	}
	if len(names) == 0 {
		for _, s := range schemas {
			names = append(names, s.Name())
		}
	}

	headers := make([]header.Header, 0, len(names))
	for _, name := range names {
		s, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s is not declared in %s", header.ErrUnknownSchema, name, file)
		}
		headers = append(headers, header.NewRaw(s))
	}
	return headers, nil
}
