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
	"errors"
	"fmt"
	"strings"

	b58 "github.com/mr-tron/base58"
)

const (
	AlphabetSize = 58

	// XRPLAlphabetChars is the symbol ordering used by the XRP Ledger. It is
	// not the bitcoin ordering, and strings produced with one ordering do not
	// decode to the same bytes with the other
	XRPLAlphabetChars = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

	// BitcoinAlphabetChars is the ordering used by bitcoin and most other base58 users
	BitcoinAlphabetChars = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
)

// XRPLAlphabet is the alphabet used for all XRP Ledger identifiers
var XRPLAlphabet = MustNewAlphabet(XRPLAlphabetChars)

// Alphabet is an ordered set of 58 symbols. The position of a symbol is its digit value
type Alphabet struct {
	chars string
	alpha *b58.Alphabet
}

// NewAlphabet returns an Alphabet for the provided symbols. It returns an error if
// the string is not exactly 58 unique ASCII characters
func NewAlphabet(chars string) (*Alphabet, error) {
	if len(chars) != AlphabetSize {
		return nil, fmt.Errorf(
			"alphabet must have %d symbols, found %d",
			AlphabetSize,
			len(chars),
		)
	}
	var seen [128]bool
	for i := range len(chars) {
		c := chars[i]
		if c >= 128 {
			return nil, errors.New("alphabet must only contain ASCII characters")
		}
		if seen[c] {
			return nil, fmt.Errorf("alphabet contains duplicate symbol %q", c)
		}
		seen[c] = true
	}
	return &Alphabet{
		chars: chars,
		alpha: b58.NewAlphabet(chars),
	}, nil
}

// MustNewAlphabet is like NewAlphabet but panics on error. It is intended for
// package-level alphabet definitions
func MustNewAlphabet(chars string) *Alphabet {
	a, err := NewAlphabet(chars)
	if err != nil {
		panic(fmt.Sprintf("invalid base58 alphabet: %s", err))
	}
	return a
}

func (a *Alphabet) String() string {
	return a.chars
}

// Zero returns the symbol representing the digit zero (and a leading zero byte)
func (a *Alphabet) Zero() byte {
	return a.chars[0]
}

// Contains reports whether every character of s is a symbol of the alphabet
func (a *Alphabet) Contains(s string) bool {
	for _, r := range s {
		if r >= 128 || strings.IndexByte(a.chars, byte(r)) < 0 {
			return false
		}
	}
	return true
}

// Encode converts data, treated as a big-endian unsigned integer, to base58.
// Each leading zero byte is preserved as a leading zero symbol
func (a *Alphabet) Encode(data []byte) string {
	return b58.FastBase58EncodingAlphabet(data, a.alpha)
}

// Decode converts a base58 string back to bytes. Each leading zero symbol becomes
// a leading zero byte
func (a *Alphabet) Decode(s string) ([]byte, error) {
	if s == "" {
		return nil, &FormatError{Reason: "empty input"}
	}
	if !a.Contains(s) {
		return nil, &FormatError{
			Input:  s,
			Reason: "character outside the base58 alphabet",
		}
	}
	ret, err := b58.FastBase58DecodingAlphabet(s, a.alpha)
	if err != nil {
		return nil, &FormatError{Input: s, Reason: "malformed base58", Err: err}
	}
	return ret, nil
}

// Translate rewrites a string encoded with this alphabet into the equivalent
// string for another alphabet. The underlying bytes are unchanged
func (a *Alphabet) Translate(s string, to *Alphabet) (string, error) {
	ret := make([]byte, len(s))
	for i := range len(s) {
		idx := strings.IndexByte(a.chars, s[i])
		if idx < 0 {
			return "", &FormatError{
				Input:  s,
				Reason: "character outside the base58 alphabet",
			}
		}
		ret[i] = to.chars[idx]
	}
	return string(ret), nil
}

// Encode converts data to base58 using the XRPL alphabet
func Encode(data []byte) string {
	return XRPLAlphabet.Encode(data)
}

// Decode converts a base58 string using the XRPL alphabet back to bytes
func Decode(s string) ([]byte, error) {
	return XRPLAlphabet.Decode(s)
}
