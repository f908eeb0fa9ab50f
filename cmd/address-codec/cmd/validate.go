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
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var errUnrecognizedIdentifier = errors.New("not a recognized identifier")

type validateResult struct {
	Input     string `json:"input"               yaml:"input"`
	Valid     bool   `json:"valid"               yaml:"valid"`
	Kind      string `json:"kind,omitempty"      yaml:"kind,omitempty"`
	Algorithm string `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`
	Error     string `json:"error,omitempty"     yaml:"error,omitempty"`
}

type validateResults []validateResult

func (r validateResults) writeText(w io.Writer) error {
	for _, result := range r {
		var err error
		switch {
		case !result.Valid:
			_, err = fmt.Fprintf(w, "%s: invalid: %s\n", result.Input, result.Error)
		case result.Algorithm != "":
			_, err = fmt.Fprintf(
				w,
				"%s: valid %s (%s)\n",
				result.Input,
				result.Kind,
				result.Algorithm,
			)
		default:
			_, err = fmt.Fprintf(w, "%s: valid %s\n", result.Input, result.Kind)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (r validateResults) allValid() bool {
	for _, result := range r {
		if !result.Valid {
			return false
		}
	}
	return true
}

func newValidateCommand(opts *globalOptions) *cobra.Command {
	var inputFile string
	var jobs int
	cmd := &cobra.Command{
		Use:   "validate [kind] [string...]",
		Short: "Validate encoded identifiers",
		Long: `Validate one or more encoded identifiers. If the first argument is a
kind, every input must be of that kind, otherwise the kind of each input is
detected. With no inputs on the command line they are read one per line from
--file or standard input. The exit status is 1 if any input is invalid.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var k *identifierKind
			if len(args) > 0 {
				if tmpKind, ok := kindByName(strings.ToLower(args[0])); ok {
					k = &tmpKind
					args = args[1:]
				}
			}
			if jobs < 1 {
				return fmt.Errorf("--jobs must be at least 1")
			}
			inputs := args
			if len(inputs) == 0 {
				var err error
				inputs, err = readInputs(cmd, inputFile)
				if err != nil {
					return err
				}
			}
			results, err := validateInputs(cmd, opts.logger, inputs, k, jobs)
			if err != nil {
				return err
			}
			if err := writeResult(cmd.OutOrStdout(), opts.config.Output, results); err != nil {
				return err
			}
			if !results.allValid() {
				return errInvalidInput
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(
		&inputFile,
		"file",
		"f",
		"",
		"read inputs from file instead of standard input",
	)
	cmd.Flags().IntVarP(
		&jobs,
		"jobs",
		"j",
		runtime.NumCPU(),
		"number of inputs to validate concurrently",
	)
	return cmd
}

// readInputs returns the non-empty lines of the input file, or of standard input
// when no file is given
func readInputs(cmd *cobra.Command, inputFile string) ([]string, error) {
	var r io.Reader = cmd.InOrStdin()
	if inputFile != "" {
		f, err := os.Open(inputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open input file: %w", err)
		}
		defer f.Close()
		r = f
	}
	var ret []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		ret = append(ret, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read inputs: %w", err)
	}
	return ret, nil
}

// validateInputs checks inputs concurrently. Results are in input order
func validateInputs(
	cmd *cobra.Command,
	logger *slog.Logger,
	inputs []string,
	k *identifierKind,
	jobs int,
) (validateResults, error) {
	results := make(validateResults, len(inputs))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(jobs)
	for i, input := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = validateOne(input, k)
			logger.Debug(
				"validated input",
				"input", input,
				"valid", results[i].Valid,
				"kind", results[i].Kind,
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func validateOne(input string, k *identifierKind) validateResult {
	ret := validateResult{Input: input}
	if k != nil {
		_, alg, err := k.decode(input)
		if err != nil {
			ret.Error = err.Error()
			return ret
		}
		ret.Valid = true
		ret.Kind = k.name
		ret.Algorithm = string(alg)
		return ret
	}
	for _, tmpKind := range identifierKinds {
		_, alg, err := tmpKind.decode(input)
		if err != nil {
			continue
		}
		ret.Valid = true
		ret.Kind = tmpKind.name
		ret.Algorithm = string(alg)
		return ret
	}
	ret.Error = errUnrecognizedIdentifier.Error()
	return ret
}
