// Package cmd implements the hdrkit command line using cobra.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"firestige.xyz/hdrkit/internal/config"
	"firestige.xyz/hdrkit/internal/log"
	"firestige.xyz/hdrkit/pkg/header"
)

type rootOptions struct {
	configFile string
	logLevel   string

	cfg *config.Config
}

// NewRootCmd builds the hdrkit command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "hdrkit",
		Short: "hdrkit - declarative fixed-layout packet headers",
		Long: `hdrkit declares fixed-layout binary headers as named MSB-0 bit ranges
and generates typed Go accessors for them.

Header declarations are YAML files:

  package: headers
  headers:
    - name: Vlan
      size: 4
      fields:
        - pcp: 0-2
        - cfi: 3-3
        - vid: 4-15
        - etype: 16-31
      default: [0x00, 0x0a, 0x08, 0x00]`,
		Version:           "0.1.0",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: opts.setup,
	}

	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "",
		"config file path (defaults only when empty)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "",
		"override log level (trace/debug/info/warn/error)")

	root.AddCommand(newGenerateCmd(opts))
	root.AddCommand(newShowCmd(opts))
	root.AddCommand(newValidateCmd(opts))
	return root
}

// Execute runs the command line.
func Execute() error {
	return NewRootCmd().Execute()
}

// setup loads configuration and initialises logging before any subcommand.
func (o *rootOptions) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return err
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if err := log.Init(cfg.Log); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	o.cfg = cfg
	logRegistered()
	return nil
}

// logRegistered reports the schemas registered by package init functions,
// which run before logging is configured.
func logRegistered() {
	l := log.GetLogger()
	if !l.IsDebugEnabled() {
		return
	}
	for _, name := range header.Names() {
		s, ok := header.Lookup(name)
		if !ok {
			continue
		}
		l.WithFields(map[string]interface{}{
			"schema": s.Name(),
			"size":   s.Size(),
			"fields": len(s.Fields()),
		}).Debug("header schema registered")
	}
}

// config returns the loaded configuration, or loads it from the config
// flag when a command runs without the root pre-run hook.
func (o *rootOptions) config() (*config.Config, error) {
	if o.cfg == nil {
		cfg, err := config.Load(o.configFile)
		if err != nil {
			return nil, err
		}
		o.cfg = cfg
	}
	return o.cfg, nil
}
