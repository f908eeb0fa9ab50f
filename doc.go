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

// Package addresscodec encodes and decodes XRP Ledger identifiers: classic
// addresses (account IDs), account and node public keys, and seeds.
//
// Every identifier is a fixed-length payload with a version prefix and a 4-byte
// checksum, written in base58 with the XRPL alphabet. See the base58 package for
// the codec itself; this package holds the XRPL version table and typed helpers.
//
// # Key Files
//
//   - profiles.go: identifier versions, SeedVersions, Algorithm
//   - addresscodec.go: Encode*/Decode*/IsValid* functions
//   - account.go: AccountID value type
//   - publickey.go: PublicKey value type and curve checks
//   - derive.go: account ID derivation from a public key
//
// Seeds do not state their algorithm. DecodeSeed tries the secp256k1 version and
// then the ed25519 version; the two can never both match since their prefixes
// differ in length.
package addresscodec
