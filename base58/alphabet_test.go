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

package base58

import (
	"bytes"
	"strings"
	"testing"

	"github.com/blinklabs-io/addresscodec/internal/test"
	btcbase58 "github.com/btcsuite/btcd/btcutil/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAlphabetValidation(t *testing.T) {
	testDefs := []struct {
		name  string
		chars string
	}{
		{
			name:  "too short",
			chars: XRPLAlphabetChars[:57],
		},
		{
			name:  "too long",
			chars: XRPLAlphabetChars + "0",
		},
		{
			name:  "duplicate symbol",
			chars: "r" + XRPLAlphabetChars[1:57] + "r",
		},
		{
			name:  "non-ASCII symbol",
			chars: XRPLAlphabetChars[:56] + "é",
		},
	}
	for _, testDef := range testDefs {
		_, err := NewAlphabet(testDef.chars)
		assert.Error(t, err, testDef.name)
	}
	a, err := NewAlphabet(BitcoinAlphabetChars)
	require.NoError(t, err)
	assert.Equal(t, BitcoinAlphabetChars, a.String())
	assert.Equal(t, byte('1'), a.Zero())
	assert.Equal(t, byte('r'), XRPLAlphabet.Zero())
}

func TestMustNewAlphabetPanics(t *testing.T) {
	assert.Panics(t, func() { MustNewAlphabet("abc") })
}

func TestEncodeKnownValues(t *testing.T) {
	testDefs := []struct {
		data     []byte
		expected string
	}{
		{data: []byte{}, expected: ""},
		{data: []byte{0x00}, expected: "r"},
		{data: []byte{0x00, 0x00, 0x00}, expected: "rrr"},
		{data: []byte{0x00, 0x00, 0x01}, expected: "rrp"},
		{data: []byte{0x01}, expected: "p"},
		{data: []byte{57}, expected: "z"},
		{data: []byte{58}, expected: "pr"},
		{data: []byte("Test data"), expected: "pnJ8AS8fXKC4Q"},
	}
	for _, testDef := range testDefs {
		assert.Equal(t, testDef.expected, Encode(testDef.data))
		if len(testDef.data) == 0 {
			continue
		}
		decoded, err := Decode(testDef.expected)
		require.NoError(t, err)
		assert.Equal(t, testDef.data, decoded)
	}
}

func TestRoundTrip(t *testing.T) {
	for length := 1; length <= 64; length++ {
		for _, zeros := range []int{0, 1, 5} {
			data := append(
				make([]byte, zeros),
				test.PatternBytes(length, byte(length*7))...,
			)
			encoded := Encode(data)
			assert.True(t, XRPLAlphabet.Contains(encoded))
			decoded, err := Decode(encoded)
			require.NoError(t, err)
			if !bytes.Equal(data, decoded) {
				t.Fatalf(
					"round trip mismatch for %x: got %x",
					data,
					decoded,
				)
			}
		}
	}
}

func TestDecodeRejectsInvalidInput(t *testing.T) {
	testDefs := []string{
		"",
		"0",
		"O",
		"I",
		"l",
		"rp sh",
		"rpsh\n",
		"rpshé",
		"rpsh\xff",
	}
	for _, testDef := range testDefs {
		_, err := Decode(testDef)
		require.Error(t, err, "input %q", testDef)
		assert.ErrorIs(t, err, ErrFormat)
		var formatErr *FormatError
		assert.ErrorAs(t, err, &formatErr)
	}
}

// The XRPL alphabet is a permutation of the bitcoin alphabet, so translating the
// symbols of an XRPL encoding must give exactly the bitcoin encoding of the same bytes
func TestCrossCheckBitcoinAlphabet(t *testing.T) {
	btcAlphabet := MustNewAlphabet(BitcoinAlphabetChars)
	samples := [][]byte{
		{0x00},
		{0x00, 0x00, 0xff},
		[]byte("Test data"),
		test.DecodeHexString("00BA8E78626EE42C41B46D46C3048DF3A1C3C87072"),
		test.PatternBytes(33, 0x02),
		test.PatternBytes(64, 0x80),
	}
	for _, sample := range samples {
		xrplEncoded := Encode(sample)
		translated, err := XRPLAlphabet.Translate(xrplEncoded, btcAlphabet)
		require.NoError(t, err)
		assert.Equal(t, btcbase58.Encode(sample), translated)
		assert.Equal(t, btcAlphabet.Encode(sample), translated)
		back, err := btcAlphabet.Translate(translated, XRPLAlphabet)
		require.NoError(t, err)
		assert.Equal(t, xrplEncoded, back)
	}
	_, err := XRPLAlphabet.Translate("r0", btcAlphabet)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestContains(t *testing.T) {
	assert.True(t, XRPLAlphabet.Contains(XRPLAlphabetChars))
	assert.True(t, XRPLAlphabet.Contains(""))
	assert.False(t, XRPLAlphabet.Contains("rpsh0"))
	assert.False(t, XRPLAlphabet.Contains(strings.Repeat("r", 10)+"l"))
}
