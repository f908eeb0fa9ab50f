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

package addresscodec

import (
	"fmt"
	"strings"

	"github.com/blinklabs-io/addresscodec/base58"
)

const (
	AccountIDLength = 20
	PublicKeyLength = 33
	SeedLength      = 16
)

// Identifier versions
var (
	VersionAccountID = base58.MustNewVersion(
		"account-id",
		[]byte{0x00},
		AccountIDLength,
	)
	VersionAccountPublicKey = base58.MustNewVersion(
		"account-public-key",
		[]byte{0x23},
		PublicKeyLength,
	)
	VersionNodePublicKey = base58.MustNewVersion(
		"node-public-key",
		[]byte{0x1c},
		PublicKeyLength,
	)
	VersionSeedSecp256k1 = base58.MustNewVersion(
		"seed-secp256k1",
		[]byte{0x21},
		SeedLength,
	)
	VersionSeedEd25519 = base58.MustNewVersion(
		"seed-ed25519",
		[]byte{0x01, 0xe1, 0x4b},
		SeedLength,
	)
)

// SeedVersions is tried in order when decoding a seed, since an encoded seed does not
// state its algorithm
var SeedVersions = base58.MustNewVersionSet(
	base58.VersionSetEntry{
		Tag:     string(AlgorithmSecp256k1),
		Version: VersionSeedSecp256k1,
	},
	base58.VersionSetEntry{
		Tag:     string(AlgorithmEd25519),
		Version: VersionSeedEd25519,
	},
)

// List of versions for use in lookup functions
var versions = []base58.Version{
	VersionAccountID,
	VersionAccountPublicKey,
	VersionNodePublicKey,
	VersionSeedSecp256k1,
	VersionSeedEd25519,
}

// VersionByName returns a predefined version by name
func VersionByName(name string) (base58.Version, bool) {
	for _, version := range versions {
		if version.Name() == name {
			return version, true
		}
	}
	return base58.Version{}, false
}

// Versions returns the predefined versions
func Versions() []base58.Version {
	ret := make([]base58.Version, len(versions))
	copy(ret, versions)
	return ret
}

// Algorithm identifies the key derivation scheme a seed is meant for
type Algorithm string

const (
	AlgorithmSecp256k1 Algorithm = "secp256k1"
	AlgorithmEd25519   Algorithm = "ed25519"
)

// ParseAlgorithm returns the Algorithm for a case-insensitive name
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(strings.TrimSpace(name))) {
	case AlgorithmSecp256k1:
		return AlgorithmSecp256k1, nil
	case AlgorithmEd25519:
		return AlgorithmEd25519, nil
	default:
		return "", fmt.Errorf(
			"%w: %q",
			base58.ErrUnknownAlgorithm,
			name,
		)
	}
}

func (a Algorithm) String() string {
	return string(a)
}
