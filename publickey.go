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
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/blinklabs-io/addresscodec/base58"
	"github.com/blinklabs-io/addresscodec/cbor"
	"github.com/btcsuite/btcd/btcec/v2"
)

// Ed25519 public keys are 32 bytes and get this marker byte in front so that all
// public keys are 33 bytes
const PublicKeyPrefixEd25519 = 0xed

var ErrUnknownKeyType = errors.New("unknown public key type")

// PublicKey is a 33-byte account or node public key. It is either a compressed
// secp256k1 point (prefix 0x02 or 0x03) or 0xED followed by an ed25519 point
type PublicKey [PublicKeyLength]byte

// NewPublicKey returns a PublicKey from 33 raw bytes
func NewPublicKey(data []byte) (PublicKey, error) {
	if len(data) != PublicKeyLength {
		return PublicKey{}, &base58.LengthError{
			Version:  "public-key",
			Expected: PublicKeyLength,
			Actual:   len(data),
		}
	}
	var ret PublicKey
	copy(ret[:], data)
	return ret, nil
}

// NewPublicKeyFromString returns the PublicKey of an encoded account public key
func NewPublicKeyFromString(publicKey string) (PublicKey, error) {
	data, err := DecodeAccountPublicKey(publicKey)
	if err != nil {
		return PublicKey{}, err
	}
	return NewPublicKey(data)
}

// NewPublicKeyFromNodeString returns the PublicKey of an encoded node public key
func NewPublicKeyFromNodeString(publicKey string) (PublicKey, error) {
	data, err := DecodeNodePublicKey(publicKey)
	if err != nil {
		return PublicKey{}, err
	}
	return NewPublicKey(data)
}

// Algorithm returns the key algorithm, based on the leading byte
func (k PublicKey) Algorithm() (Algorithm, error) {
	switch k[0] {
	case PublicKeyPrefixEd25519:
		return AlgorithmEd25519, nil
	case 0x02, 0x03:
		return AlgorithmSecp256k1, nil
	default:
		return "", fmt.Errorf("%w: leading byte 0x%02x", ErrUnknownKeyType, k[0])
	}
}

// Validate checks that the key is a point on its curve
func (k PublicKey) Validate() error {
	algorithm, err := k.Algorithm()
	if err != nil {
		return err
	}
	switch algorithm {
	case AlgorithmEd25519:
		if _, err := new(edwards25519.Point).SetBytes(k[1:]); err != nil {
			return fmt.Errorf("invalid ed25519 public key: %w", err)
		}
	case AlgorithmSecp256k1:
		if _, err := btcec.ParsePubKey(k[:]); err != nil {
			return fmt.Errorf("invalid secp256k1 public key: %w", err)
		}
	}
	return nil
}

// AccountID returns the account ID controlled by this key
func (k PublicKey) AccountID() AccountID {
	return accountIDFromPublicKey(k[:])
}

func (k PublicKey) Bytes() []byte {
	return k[:]
}

// Hex returns the upper case hex form used in ledger JSON
func (k PublicKey) Hex() string {
	return fmt.Sprintf("%X", k[:])
}

// String returns the account public key encoding
func (k PublicKey) String() string {
	ret, err := EncodeAccountPublicKey(k[:])
	if err != nil {
		panic(fmt.Sprintf("unexpected error encoding public key: %s", err))
	}
	return ret
}

// NodeString returns the node public key encoding
func (k PublicKey) NodeString() string {
	ret, err := EncodeNodePublicKey(k[:])
	if err != nil {
		panic(fmt.Sprintf("unexpected error encoding public key: %s", err))
	}
	return ret
}

// MarshalJSON uses the hex form, as ledger JSON does for signing keys
func (k PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.Hex())
}

func (k *PublicKey) UnmarshalJSON(data []byte) error {
	var tmp string
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	raw, err := hex.DecodeString(tmp)
	if err != nil {
		return fmt.Errorf("failed to decode public key hex: %w", err)
	}
	ret, err := NewPublicKey(raw)
	if err != nil {
		return err
	}
	*k = ret
	return nil
}

func (k PublicKey) MarshalCBOR() ([]byte, error) {
	keyBytes := make([]byte, PublicKeyLength)
	copy(keyBytes, k[:])
	return cbor.Encode(keyBytes)
}

func (k *PublicKey) UnmarshalCBOR(data []byte) error {
	keyBytes, err := cbor.DecodeFixedByteString(data, PublicKeyLength)
	if err != nil {
		return fmt.Errorf("failed to decode public key: %w", err)
	}
	copy(k[:], keyBytes)
	return nil
}
