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
	"encoding/json"
	"testing"

	"github.com/blinklabs-io/addresscodec/base58"
	"github.com/blinklabs-io/addresscodec/cbor"
	"github.com/blinklabs-io/addresscodec/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecpPublicKeyHex = "0330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD020"
	testEdPublicKeyHex   = "ED9434799226374926EDA3B54B1B461B4ABF7237962EAE18528FEA67595397FA32"
)

func TestDeriveClassicAddress(t *testing.T) {
	testDefs := []struct {
		publicKeyHex string
		accountIDHex string
		address      string
	}{
		{
			publicKeyHex: testSecpPublicKeyHex,
			accountIDHex: "B5F762798A53D543A014CAF8B297CFF8F2F937E8",
			address:      "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh",
		},
		{
			publicKeyHex: testEdPublicKeyHex,
			address:      "rDTXLQ7ZKZVKz33zJbHjgVShjsBnqMBhmN",
		},
	}
	for _, testDef := range testDefs {
		publicKey := test.DecodeHexString(testDef.publicKeyHex)
		address, err := DeriveClassicAddress(publicKey)
		require.NoError(t, err)
		assert.Equal(t, testDef.address, address)
		accountID, err := AccountIDFromPublicKey(publicKey)
		require.NoError(t, err)
		if testDef.accountIDHex != "" {
			assert.Equal(t, testDef.accountIDHex, accountID.Hex())
		}
		assert.Equal(t, testDef.address, accountID.String())
	}
	_, err := DeriveClassicAddress(make([]byte, 32))
	assert.ErrorIs(t, err, base58.ErrLength)
}

func TestPublicKeyAlgorithm(t *testing.T) {
	testDefs := []struct {
		publicKeyHex string
		algorithm    Algorithm
		valid        bool
	}{
		{
			publicKeyHex: testSecpPublicKeyHex,
			algorithm:    AlgorithmSecp256k1,
			valid:        true,
		},
		{
			publicKeyHex: "023693F15967AE357D0327974AD46FE3C127113B1110D6044FD41E723689F81CC6",
			algorithm:    AlgorithmSecp256k1,
			valid:        true,
		},
		{
			publicKeyHex: testEdPublicKeyHex,
			algorithm:    AlgorithmEd25519,
			valid:        true,
		},
		// x = 5 is not on the secp256k1 curve
		{
			publicKeyHex: "020000000000000000000000000000000000000000000000000000000000000005",
			algorithm:    AlgorithmSecp256k1,
		},
		// y = 2 is not on the ed25519 curve
		{
			publicKeyHex: "ED0200000000000000000000000000000000000000000000000000000000000000",
			algorithm:    AlgorithmEd25519,
		},
	}
	for _, testDef := range testDefs {
		key, err := NewPublicKey(test.DecodeHexString(testDef.publicKeyHex))
		require.NoError(t, err)
		algorithm, err := key.Algorithm()
		require.NoError(t, err)
		assert.Equal(t, testDef.algorithm, algorithm)
		if testDef.valid {
			assert.NoError(t, key.Validate(), testDef.publicKeyHex)
		} else {
			assert.Error(t, key.Validate(), testDef.publicKeyHex)
		}
	}

	key, err := NewPublicKey(append([]byte{0x04}, make([]byte, 32)...))
	require.NoError(t, err)
	_, err = key.Algorithm()
	assert.ErrorIs(t, err, ErrUnknownKeyType)
	assert.ErrorIs(t, key.Validate(), ErrUnknownKeyType)

	_, err = NewPublicKey(make([]byte, 32))
	assert.ErrorIs(t, err, base58.ErrLength)
}

func TestPublicKeyStrings(t *testing.T) {
	key, err := NewPublicKey(test.DecodeHexString(testEdPublicKeyHex))
	require.NoError(t, err)
	assert.Equal(t, "aKEt5wr2oXW5H55Z4m94ioKb1Drmj42UWoQDvFJZ5LaxPv126G9d", key.String())
	assert.Equal(t, testEdPublicKeyHex, key.Hex())

	parsed, err := NewPublicKeyFromString(key.String())
	require.NoError(t, err)
	assert.Equal(t, key, parsed)

	parsed, err = NewPublicKeyFromNodeString(key.NodeString())
	require.NoError(t, err)
	assert.Equal(t, key, parsed)

	_, err = NewPublicKeyFromNodeString(key.String())
	assert.ErrorIs(t, err, base58.ErrPrefixMismatch)
}

func TestPublicKeyMarshal(t *testing.T) {
	type wrapper struct {
		SigningPubKey PublicKey `json:"SigningPubKey"`
	}
	key, err := NewPublicKey(test.DecodeHexString(testSecpPublicKeyHex))
	require.NoError(t, err)
	data, err := json.Marshal(wrapper{SigningPubKey: key})
	require.NoError(t, err)
	assert.JSONEq(t, `{"SigningPubKey":"`+testSecpPublicKeyHex+`"}`, string(data))
	var tmp wrapper
	require.NoError(t, json.Unmarshal(data, &tmp))
	assert.Equal(t, key, tmp.SigningPubKey)
	assert.Error(t, json.Unmarshal([]byte(`{"SigningPubKey":"0330"}`), &tmp))
	assert.Error(t, json.Unmarshal([]byte(`{"SigningPubKey":"zz"}`), &tmp))

	cborData, err := cbor.Encode(key)
	require.NoError(t, err)
	assert.Len(t, cborData, 2+PublicKeyLength)
	var decoded PublicKey
	_, err = cbor.Decode(cborData, &decoded)
	require.NoError(t, err)
	assert.Equal(t, key, decoded)
}
