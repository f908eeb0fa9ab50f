// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

const programName = "address-codec"

// errInvalidInput is returned when at least one input failed validation. The
// results have already been written, so it only sets the exit status
var errInvalidInput = errors.New("one or more inputs are invalid")

type globalOptions struct {
	output     string
	configFile string
	debug      bool
	config     *Config
	logger     *slog.Logger
}

// NewRootCommand returns the top-level command with all subcommands attached
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}
	rootCmd := &cobra.Command{
		Use:   programName,
		Short: "Encode, decode and validate XRP Ledger identifiers",
		Long: `address-codec converts XRP Ledger account IDs, public keys and seeds
between their raw hex form and their base58 encodings with checksum.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVarP(
		&opts.output,
		"output",
		"o",
		outputText,
		"output format (text, json or yaml)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&opts.configFile,
		"config",
		"c",
		"",
		"path to YAML config file",
	)
	rootCmd.PersistentFlags().BoolVar(
		&opts.debug,
		"debug",
		false,
		"enable debug logging",
	)
	rootCmd.AddCommand(
		newEncodeCommand(opts),
		newDecodeCommand(opts),
		newValidateCommand(opts),
		newDeriveCommand(opts),
	)
	return rootCmd
}

// setup loads the config file, applies flag overrides and creates the logger
func (o *globalOptions) setup(cmd *cobra.Command) error {
	cfg := DefaultConfig()
	if o.configFile != "" {
		var err error
		cfg, err = LoadConfig(o.configFile)
		if err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("output") || cfg.Output == "" {
		cfg.Output = o.output
	}
	cfg.Output = strings.ToLower(cfg.Output)
	if !validOutputFormat(cfg.Output) {
		return fmt.Errorf("unknown output format: %s", cfg.Output)
	}
	if o.debug {
		cfg.Logging.Level = "debug"
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Logging.Level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Logging.Level, err)
	}
	o.config = cfg
	o.logger = slog.New(
		slog.NewTextHandler(
			cmd.ErrOrStderr(),
			&slog.HandlerOptions{Level: level},
		),
	).With("component", programName)
	o.logger.Debug(
		"configuration loaded",
		"config_file", o.configFile,
		"output", cfg.Output,
		"log_level", level.String(),
	)
	return nil
}

// Execute runs the root command and exits with a non-zero status on failure
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		if !errors.Is(err, errInvalidInput) {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		}
		os.Exit(1)
	}
}
