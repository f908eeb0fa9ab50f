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
	"errors"
	"fmt"
	"slices"
)

// Version describes one kind of encoded identifier: the prefix bytes that are
// prepended before encoding and the payload length that must follow them
type Version struct {
	name          string
	prefix        []byte
	payloadLength int
}

// NewVersion returns a Version with the provided name, prefix and payload length
func NewVersion(name string, prefix []byte, payloadLength int) (Version, error) {
	if len(prefix) == 0 {
		return Version{}, errors.New("version prefix must not be empty")
	}
	if payloadLength <= 0 {
		return Version{}, fmt.Errorf(
			"version payload length must be positive, found %d",
			payloadLength,
		)
	}
	return Version{
		name:          name,
		prefix:        slices.Clone(prefix),
		payloadLength: payloadLength,
	}, nil
}

// MustNewVersion is like NewVersion but panics on error
func MustNewVersion(name string, prefix []byte, payloadLength int) Version {
	v, err := NewVersion(name, prefix, payloadLength)
	if err != nil {
		panic(fmt.Sprintf("invalid version %s: %s", name, err))
	}
	return v
}

func (v Version) Name() string {
	return v.name
}

// Prefix returns a copy of the version prefix bytes
func (v Version) Prefix() []byte {
	return slices.Clone(v.prefix)
}

func (v Version) PayloadLength() int {
	return v.payloadLength
}

// EncodedLength returns the number of bytes that are base58 encoded for this
// version, including prefix and checksum
func (v Version) EncodedLength() int {
	return len(v.prefix) + v.payloadLength + ChecksumSize
}

func (v Version) String() string {
	return v.name
}

func (v Version) valid() bool {
	return len(v.prefix) > 0 && v.payloadLength > 0
}

// match checks decoded data (with the checksum already stripped) against the
// version and returns the payload
func (v Version) match(data []byte) ([]byte, error) {
	if len(data) < len(v.prefix) || !bytes.Equal(data[:len(v.prefix)], v.prefix) {
		actual := data
		if len(actual) > len(v.prefix) {
			actual = actual[:len(v.prefix)]
		}
		return nil, &PrefixMismatchError{
			Version:  v.name,
			Expected: v.Prefix(),
			Actual:   slices.Clone(actual),
		}
	}
	payload := data[len(v.prefix):]
	if len(payload) != v.payloadLength {
		return nil, &LengthError{
			Version:  v.name,
			Expected: v.payloadLength,
			Actual:   len(payload),
		}
	}
	return slices.Clone(payload), nil
}

// ambiguousWith reports whether some decoded data could match both versions
func (v Version) ambiguousWith(other Version) bool {
	if len(v.prefix)+v.payloadLength != len(other.prefix)+other.payloadLength {
		return false
	}
	n := min(len(v.prefix), len(other.prefix))
	return bytes.Equal(v.prefix[:n], other.prefix[:n])
}

// VersionSetEntry associates an algorithm tag with a version
type VersionSetEntry struct {
	Tag     string
	Version Version
}

// VersionSet is an ordered group of versions used when an encoded string does not
// identify its own kind. Versions are tried in the order they were declared
type VersionSet struct {
	entries []VersionSetEntry
}

// NewVersionSet returns a VersionSet over the provided entries. Tags must be unique,
// and no two versions may be able to match the same encoded string
func NewVersionSet(entries ...VersionSetEntry) (VersionSet, error) {
	if len(entries) == 0 {
		return VersionSet{}, errors.New("version set must not be empty")
	}
	for i, entry := range entries {
		if entry.Tag == "" {
			return VersionSet{}, errors.New("version set tag must not be empty")
		}
		for _, prev := range entries[:i] {
			if prev.Tag == entry.Tag {
				return VersionSet{}, fmt.Errorf(
					"duplicate version set tag %q",
					entry.Tag,
				)
			}
			if prev.Version.ambiguousWith(entry.Version) {
				return VersionSet{}, &AmbiguousVersionSetError{
					First:  prev.Version.Name(),
					Second: entry.Version.Name(),
				}
			}
		}
	}
	return VersionSet{
		entries: slices.Clone(entries),
	}, nil
}

// MustNewVersionSet is like NewVersionSet but panics on error
func MustNewVersionSet(entries ...VersionSetEntry) VersionSet {
	s, err := NewVersionSet(entries...)
	if err != nil {
		panic(fmt.Sprintf("invalid version set: %s", err))
	}
	return s
}

// Lookup returns the version for the provided tag
func (s VersionSet) Lookup(tag string) (Version, bool) {
	for _, entry := range s.entries {
		if entry.Tag == tag {
			return entry.Version, true
		}
	}
	return Version{}, false
}

// Tags returns the tags of the set in declared order
func (s VersionSet) Tags() []string {
	ret := make([]string, 0, len(s.entries))
	for _, entry := range s.entries {
		ret = append(ret, entry.Tag)
	}
	return ret
}

// Entries returns a copy of the set entries in declared order
func (s VersionSet) Entries() []VersionSetEntry {
	return slices.Clone(s.entries)
}

func (s VersionSet) minPrefixLength() int {
	ret := 0
	for i, entry := range s.entries {
		l := len(entry.Version.prefix)
		if i == 0 || l < ret {
			ret = l
		}
	}
	return ret
}
