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

// Package cbor provides CBOR encoding/decoding utilities for identifier types.
//
// This package wraps github.com/fxamacker/cbor/v2 with cached, deterministic
// encoder and decoder modes. Fixed-size identifiers are encoded as a plain
// bytestring of their raw bytes:
//
//	func (a AccountID) MarshalCBOR() ([]byte, error) {
//	    return cbor.Encode(a[:])
//	}
//
// and decoded with DecodeFixedByteString, which rejects bytestrings of any other
// length.
package cbor
