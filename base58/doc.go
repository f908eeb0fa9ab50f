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

// Package base58 implements versioned base58 encoding with a trailing checksum, as
// used for XRP Ledger identifiers.
//
// An encoded identifier is the base58 form of:
//
//	prefix || payload || first 4 bytes of SHA-256(SHA-256(prefix || payload))
//
// The prefix and payload length are described by a Version. When the kind of an
// encoded string cannot be known up front (seeds), a VersionSet lists candidate
// versions in the order they are tried.
//
// # Key Files
//
//   - alphabet.go: Alphabet and raw base58 conversion
//   - checksum.go: Checksum and VerifyChecksum
//   - version.go: Version and VersionSet
//   - codec.go: Codec with Encode, Decode and IsValid variants
//   - errors.go: typed errors, each matching a sentinel with errors.Is
//
// All functions are pure and safe for concurrent use.
package base58
