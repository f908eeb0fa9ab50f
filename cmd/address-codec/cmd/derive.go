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
	"text/tabwriter"

	"github.com/blinklabs-io/addresscodec"
	"github.com/spf13/cobra"
)

type deriveResult struct {
	PublicKey string `json:"publicKey" yaml:"publicKey"`
	Algorithm string `json:"algorithm" yaml:"algorithm"`
	AccountID string `json:"accountId" yaml:"accountId"`
	Address   string `json:"address"   yaml:"address"`
}

func (r deriveResult) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Public key:\t%s\n", r.PublicKey)
	fmt.Fprintf(tw, "Algorithm:\t%s\n", r.Algorithm)
	fmt.Fprintf(tw, "Account ID:\t%s\n", r.AccountID)
	fmt.Fprintf(tw, "Address:\t%s\n", r.Address)
	return tw.Flush()
}

func newDeriveCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "derive <public-key-hex>",
		Short: "Derive the classic address of a public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := decodeHexArg(args[0])
			if err != nil {
				return err
			}
			publicKey, err := addresscodec.NewPublicKey(data)
			if err != nil {
				return err
			}
			alg, err := publicKey.Algorithm()
			if err != nil {
				return err
			}
			if err := publicKey.Validate(); err != nil {
				return err
			}
			accountID := publicKey.AccountID()
			opts.logger.Debug(
				"derived account",
				"algorithm", string(alg),
				"account_id", accountID.Hex(),
			)
			return writeResult(
				cmd.OutOrStdout(),
				opts.config.Output,
				deriveResult{
					PublicKey: publicKey.Hex(),
					Algorithm: string(alg),
					AccountID: accountID.Hex(),
					Address:   accountID.String(),
				},
			)
		},
	}
}
