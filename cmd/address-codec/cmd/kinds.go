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
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/blinklabs-io/addresscodec"
)

const (
	kindAccountID        = "account-id"
	kindAccountPublicKey = "account-public-key"
	kindNodePublicKey    = "node-public-key"
	kindSeed             = "seed"
)

// identifierKind binds a CLI kind name to its codec functions. The algorithm is
// only meaningful for seeds
type identifierKind struct {
	name   string
	encode func([]byte, addresscodec.Algorithm) (string, error)
	decode func(string) ([]byte, addresscodec.Algorithm, error)
}

// Order matters when the kind of an input is detected rather than given
var identifierKinds = []identifierKind{
	{
		name: kindAccountID,
		encode: func(data []byte, _ addresscodec.Algorithm) (string, error) {
			return addresscodec.EncodeAccountID(data)
		},
		decode: func(s string) ([]byte, addresscodec.Algorithm, error) {
			ret, err := addresscodec.DecodeAccountID(s)
			return ret, "", err
		},
	},
	{
		name: kindAccountPublicKey,
		encode: func(data []byte, _ addresscodec.Algorithm) (string, error) {
			return addresscodec.EncodeAccountPublicKey(data)
		},
		decode: func(s string) ([]byte, addresscodec.Algorithm, error) {
			ret, err := addresscodec.DecodeAccountPublicKey(s)
			return ret, "", err
		},
	},
	{
		name: kindNodePublicKey,
		encode: func(data []byte, _ addresscodec.Algorithm) (string, error) {
			return addresscodec.EncodeNodePublicKey(data)
		},
		decode: func(s string) ([]byte, addresscodec.Algorithm, error) {
			ret, err := addresscodec.DecodeNodePublicKey(s)
			return ret, "", err
		},
	},
	{
		name:   kindSeed,
		encode: addresscodec.EncodeSeed,
		decode: addresscodec.DecodeSeed,
	},
}

func kindByName(name string) (identifierKind, bool) {
	for _, k := range identifierKinds {
		if k.name == name {
			return k, true
		}
	}
	return identifierKind{}, false
}

func kindNames() []string {
	ret := make([]string, 0, len(identifierKinds))
	for _, k := range identifierKinds {
		ret = append(ret, k.name)
	}
	return ret
}

func parseKind(name string) (identifierKind, error) {
	k, ok := kindByName(strings.ToLower(name))
	if !ok {
		return identifierKind{}, fmt.Errorf(
			"unknown kind %q (expected one of: %s)",
			name,
			strings.Join(kindNames(), ", "),
		)
	}
	return k, nil
}

// decodeHexArg accepts hex with or without a 0x prefix
func decodeHexArg(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	ret, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return ret, nil
}
