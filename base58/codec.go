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
)

// Default is a Codec using the XRPL alphabet
var Default = NewCodec(XRPLAlphabet)

// Codec encodes and decodes versioned payloads as base58 with a trailing checksum.
// A Codec holds no mutable state and is safe for concurrent use
type Codec struct {
	alphabet *Alphabet
}

// NewCodec returns a Codec using the provided alphabet
func NewCodec(alphabet *Alphabet) *Codec {
	return &Codec{
		alphabet: alphabet,
	}
}

func (c *Codec) Alphabet() *Alphabet {
	return c.alphabet
}

// Encode returns the base58 encoding of prefix || payload || checksum for the
// provided version. The payload must be exactly the version payload length
func (c *Codec) Encode(payload []byte, version Version) (string, error) {
	if !version.valid() {
		return "", ErrInvalidVersion
	}
	if len(payload) != version.payloadLength {
		return "", &LengthError{
			Version:  version.name,
			Expected: version.payloadLength,
			Actual:   len(payload),
		}
	}
	buf := make([]byte, 0, version.EncodedLength())
	buf = append(buf, version.prefix...)
	buf = append(buf, payload...)
	sum := Checksum(buf)
	buf = append(buf, sum[:]...)
	return c.alphabet.Encode(buf), nil
}

// EncodeWithSet encodes the payload using the version registered under tag in set
func (c *Codec) EncodeWithSet(
	payload []byte,
	tag string,
	set VersionSet,
) (string, error) {
	version, ok := set.Lookup(tag)
	if !ok {
		return "", &UnknownAlgorithmError{
			Algorithm: tag,
			Known:     set.Tags(),
		}
	}
	return c.Encode(payload, version)
}

// Decode returns the payload of an encoded string for the provided version. Checks
// happen in this order: format, checksum, prefix, payload length
func (c *Codec) Decode(s string, version Version) ([]byte, error) {
	if !version.valid() {
		return nil, ErrInvalidVersion
	}
	data, err := c.decodeChecked(s, len(version.prefix))
	if err != nil {
		return nil, err
	}
	return version.match(data)
}

// DecodeWithSet tries each version of set in declared order and returns the tag and
// payload of the first one that matches. A version that does not match on prefix or
// length is skipped. Format and checksum errors do not depend on the version and
// are returned immediately
func (c *Codec) DecodeWithSet(s string, set VersionSet) (string, []byte, error) {
	data, err := c.decodeChecked(s, set.minPrefixLength())
	if err != nil {
		return "", nil, err
	}
	for _, entry := range set.entries {
		payload, err := entry.Version.match(data)
		if err == nil {
			return entry.Tag, payload, nil
		}
		if errors.Is(err, ErrPrefixMismatch) || errors.Is(err, ErrLength) {
			continue
		}
		return "", nil, err
	}
	tried := make([]string, 0, len(set.entries))
	for _, entry := range set.entries {
		tried = append(tried, entry.Version.Name())
	}
	return "", nil, &UnrecognizedFormatError{
		Input: s,
		Tried: tried,
	}
}

// IsValid reports whether s decodes successfully for the provided version
func (c *Codec) IsValid(s string, version Version) bool {
	_, err := c.Decode(s, version)
	return err == nil
}

// IsValidWithSet reports whether s decodes successfully for any version of set
func (c *Codec) IsValidWithSet(s string, set VersionSet) bool {
	_, _, err := c.DecodeWithSet(s, set)
	return err == nil
}

// decodeChecked decodes s, verifies the checksum and returns the data without it
func (c *Codec) decodeChecked(s string, prefixLength int) ([]byte, error) {
	raw, err := c.alphabet.Decode(s)
	if err != nil {
		return nil, err
	}
	if len(raw) < prefixLength+ChecksumSize {
		return nil, &FormatError{
			Input: s,
			Reason: fmt.Sprintf(
				"decoded length %d is shorter than prefix and checksum",
				len(raw),
			),
		}
	}
	data := raw[:len(raw)-ChecksumSize]
	if !VerifyChecksum(raw) {
		var actual [ChecksumSize]byte
		copy(actual[:], raw[len(raw)-ChecksumSize:])
		return nil, &ChecksumError{
			Input:    s,
			Expected: Checksum(data),
			Actual:   actual,
		}
	}
	return data, nil
}

// CheckEncode encodes payload for version using the XRPL alphabet
func CheckEncode(payload []byte, version Version) (string, error) {
	return Default.Encode(payload, version)
}

// CheckEncodeWithSet encodes payload using the version registered under tag in set
func CheckEncodeWithSet(payload []byte, tag string, set VersionSet) (string, error) {
	return Default.EncodeWithSet(payload, tag, set)
}

// CheckDecode decodes an XRPL alphabet string for version
func CheckDecode(s string, version Version) ([]byte, error) {
	return Default.Decode(s, version)
}

// CheckDecodeWithSet decodes an XRPL alphabet string against each version in set
func CheckDecodeWithSet(s string, set VersionSet) (string, []byte, error) {
	return Default.DecodeWithSet(s, set)
}

// IsValid reports whether s is a valid XRPL alphabet encoding for version
func IsValid(s string, version Version) bool {
	return Default.IsValid(s, version)
}

// IsValidWithSet reports whether s is a valid XRPL alphabet encoding for any version in set
func IsValidWithSet(s string, set VersionSet) bool {
	return Default.IsValidWithSet(s, set)
}
