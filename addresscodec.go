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

	"github.com/blinklabs-io/addresscodec/base58"
)

// EncodeAccountID returns the classic address for a 20-byte account ID
func EncodeAccountID(accountID []byte) (string, error) {
	ret, err := base58.CheckEncode(accountID, VersionAccountID)
	if err != nil {
		return "", fmt.Errorf("failed to encode account ID: %w", err)
	}
	return ret, nil
}

// DecodeAccountID returns the 20-byte account ID of a classic address
func DecodeAccountID(address string) ([]byte, error) {
	ret, err := base58.CheckDecode(address, VersionAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to decode account ID: %w", err)
	}
	return ret, nil
}

// EncodeAccountPublicKey returns the encoding of a 33-byte account public key
func EncodeAccountPublicKey(publicKey []byte) (string, error) {
	ret, err := base58.CheckEncode(publicKey, VersionAccountPublicKey)
	if err != nil {
		return "", fmt.Errorf("failed to encode account public key: %w", err)
	}
	return ret, nil
}

// DecodeAccountPublicKey returns the 33-byte account public key of an encoded string
func DecodeAccountPublicKey(publicKey string) ([]byte, error) {
	ret, err := base58.CheckDecode(publicKey, VersionAccountPublicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode account public key: %w", err)
	}
	return ret, nil
}

// EncodeNodePublicKey returns the encoding of a 33-byte node (validator) public key
func EncodeNodePublicKey(publicKey []byte) (string, error) {
	ret, err := base58.CheckEncode(publicKey, VersionNodePublicKey)
	if err != nil {
		return "", fmt.Errorf("failed to encode node public key: %w", err)
	}
	return ret, nil
}

// DecodeNodePublicKey returns the 33-byte node public key of an encoded string
func DecodeNodePublicKey(publicKey string) ([]byte, error) {
	ret, err := base58.CheckDecode(publicKey, VersionNodePublicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode node public key: %w", err)
	}
	return ret, nil
}

// EncodeSeed returns the encoding of 16 bytes of seed entropy for the provided algorithm
func EncodeSeed(entropy []byte, algorithm Algorithm) (string, error) {
	ret, err := base58.CheckEncodeWithSet(
		entropy,
		string(algorithm),
		SeedVersions,
	)
	if err != nil {
		return "", fmt.Errorf("failed to encode seed: %w", err)
	}
	return ret, nil
}

// DecodeSeed returns the 16 bytes of entropy of an encoded seed, along with the
// algorithm it was encoded for
func DecodeSeed(seed string) ([]byte, Algorithm, error) {
	tag, ret, err := base58.CheckDecodeWithSet(seed, SeedVersions)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode seed: %w", err)
	}
	return ret, Algorithm(tag), nil
}

// IsValidClassicAddress reports whether address is a well-formed classic address
func IsValidClassicAddress(address string) bool {
	return base58.IsValid(address, VersionAccountID)
}

func IsValidAccountPublicKey(publicKey string) bool {
	return base58.IsValid(publicKey, VersionAccountPublicKey)
}

func IsValidNodePublicKey(publicKey string) bool {
	return base58.IsValid(publicKey, VersionNodePublicKey)
}

func IsValidSeed(seed string) bool {
	return base58.IsValidWithSet(seed, SeedVersions)
}
