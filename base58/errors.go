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
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors so callers can use errors.Is against the typed errors below
var (
	ErrFormat              = errors.New("invalid base58 format")
	ErrChecksum            = errors.New("checksum mismatch")
	ErrPrefixMismatch      = errors.New("version prefix mismatch")
	ErrLength              = errors.New("unexpected payload length")
	ErrUnknownAlgorithm    = errors.New("unknown algorithm")
	ErrUnrecognizedFormat  = errors.New("unrecognized format")
	ErrAmbiguousVersionSet = errors.New("ambiguous version set")
	ErrInvalidVersion      = errors.New("invalid or uninitialized version")
)

// FormatError indicates input that is not well-formed base58 or is too short to
// carry a prefix and checksum
type FormatError struct {
	Input  string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	msg := "invalid base58 format: " + e.Reason
	if e.Input != "" {
		msg += fmt.Sprintf(" (input %q)", e.Input)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FormatError) Unwrap() error { return e.Err }

func (*FormatError) Is(target error) bool {
	return target == ErrFormat
}

// ChecksumError indicates that the trailing checksum does not match the decoded data.
// This usually means the string was mistyped or corrupted
type ChecksumError struct {
	Input    string
	Expected [ChecksumSize]byte
	Actual   [ChecksumSize]byte
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf(
		"checksum mismatch for %q: expected %x, found %x",
		e.Input,
		e.Expected,
		e.Actual,
	)
}

func (*ChecksumError) Is(target error) bool {
	return target == ErrChecksum
}

// PrefixMismatchError indicates that the decoded data does not start with the
// prefix of the requested version
type PrefixMismatchError struct {
	Version  string
	Expected []byte
	Actual   []byte
}

func (e *PrefixMismatchError) Error() string {
	return fmt.Sprintf(
		"version prefix mismatch for %s: expected %s, found %s",
		e.Version,
		hex.EncodeToString(e.Expected),
		hex.EncodeToString(e.Actual),
	)
}

func (*PrefixMismatchError) Is(target error) bool {
	return target == ErrPrefixMismatch
}

// LengthError indicates a payload whose length does not match its version. It is
// returned both when encoding and when decoding
type LengthError struct {
	Version  string
	Expected int
	Actual   int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf(
		"unexpected payload length for %s: expected %d, found %d",
		e.Version,
		e.Expected,
		e.Actual,
	)
}

func (*LengthError) Is(target error) bool {
	return target == ErrLength
}

// UnknownAlgorithmError indicates an algorithm tag that is not part of a version set
type UnknownAlgorithmError struct {
	Algorithm string
	Known     []string
}

func (e *UnknownAlgorithmError) Error() string {
	return fmt.Sprintf(
		"unknown algorithm %q (expected one of: %s)",
		e.Algorithm,
		strings.Join(e.Known, ", "),
	)
}

func (*UnknownAlgorithmError) Is(target error) bool {
	return target == ErrUnknownAlgorithm
}

// UnrecognizedFormatError indicates that no version in a set matched the input
type UnrecognizedFormatError struct {
	Input string
	Tried []string
}

func (e *UnrecognizedFormatError) Error() string {
	return fmt.Sprintf(
		"unrecognized format for %q: no match among %s",
		e.Input,
		strings.Join(e.Tried, ", "),
	)
}

func (*UnrecognizedFormatError) Is(target error) bool {
	return target == ErrUnrecognizedFormat
}

// AmbiguousVersionSetError indicates two versions in a set that could both match
// the same encoded string
type AmbiguousVersionSetError struct {
	First  string
	Second string
}

func (e *AmbiguousVersionSetError) Error() string {
	return fmt.Sprintf(
		"ambiguous version set: %s and %s can match the same input",
		e.First,
		e.Second,
	)
}

func (*AmbiguousVersionSetError) Is(target error) bool {
	return target == ErrAmbiguousVersionSet
}
