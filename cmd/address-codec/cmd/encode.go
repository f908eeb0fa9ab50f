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

	"github.com/blinklabs-io/addresscodec"
	"github.com/spf13/cobra"
)

// codecResult is the output of the encode and decode commands
type codecResult struct {
	Kind      string `json:"kind"                yaml:"kind"`
	Algorithm string `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`
	Hex       string `json:"hex"                 yaml:"hex"`
	Encoded   string `json:"encoded"             yaml:"encoded"`
}

type encodeResult codecResult

func (r encodeResult) writeText(w io.Writer) error {
	_, err := fmt.Fprintln(w, r.Encoded)
	return err
}

func newEncodeCommand(opts *globalOptions) *cobra.Command {
	var algorithm string
	cmd := &cobra.Command{
		Use:   "encode <kind> <hex>",
		Short: "Encode a raw identifier",
		Long: `Encode the hex form of an identifier. The kind is one of account-id,
account-public-key, node-public-key or seed. Seeds are encoded for the
algorithm given with --algorithm.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseKind(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("algorithm") && k.name != kindSeed {
				return fmt.Errorf("--algorithm only applies to seeds")
			}
			var alg addresscodec.Algorithm
			if k.name == kindSeed {
				alg, err = addresscodec.ParseAlgorithm(algorithm)
				if err != nil {
					return err
				}
			}
			data, err := decodeHexArg(args[1])
			if err != nil {
				return err
			}
			encoded, err := k.encode(data, alg)
			if err != nil {
				return err
			}
			opts.logger.Debug(
				"encoded identifier",
				"kind", k.name,
				"length", len(data),
			)
			return writeResult(
				cmd.OutOrStdout(),
				opts.config.Output,
				encodeResult{
					Kind:      k.name,
					Algorithm: string(alg),
					Hex:       fmt.Sprintf("%X", data),
					Encoded:   encoded,
				},
			)
		},
	}
	cmd.Flags().StringVarP(
		&algorithm,
		"algorithm",
		"a",
		string(addresscodec.AlgorithmSecp256k1),
		"seed algorithm (secp256k1 or ed25519)",
	)
	return cmd
}
