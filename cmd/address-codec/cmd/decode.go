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
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type decodeResult codecResult

func (r decodeResult) writeText(w io.Writer) error {
	if r.Algorithm != "" {
		_, err := fmt.Fprintf(w, "%s %s\n", r.Hex, r.Algorithm)
		return err
	}
	_, err := fmt.Fprintln(w, r.Hex)
	return err
}

func newDecodeCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <kind> <string>",
		Short: "Decode an encoded identifier",
		Long: `Decode an identifier to its hex form. For seeds the algorithm the
seed was encoded for is also reported.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseKind(args[0])
			if err != nil {
				return err
			}
			data, alg, err := k.decode(args[1])
			if err != nil {
				return err
			}
			opts.logger.Debug(
				"decoded identifier",
				"kind", k.name,
				"algorithm", string(alg),
			)
			return writeResult(
				cmd.OutOrStdout(),
				opts.config.Output,
				decodeResult{
					Kind:      k.name,
					Algorithm: string(alg),
					Hex:       fmt.Sprintf("%X", data),
					Encoded:   args[1],
				},
			)
		},
	}
}
