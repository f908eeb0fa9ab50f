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

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const ChecksumSize = 4

// Checksum returns the first 4 bytes of a double SHA-256 over data
func Checksum(data []byte) [ChecksumSize]byte {
	var ret [ChecksumSize]byte
	copy(ret[:], chainhash.DoubleHashB(data))
	return ret
}

// VerifyChecksum checks that the trailing 4 bytes of data are the checksum of
// the bytes before them
func VerifyChecksum(data []byte) bool {
	if len(data) < ChecksumSize {
		return false
	}
	body := data[:len(data)-ChecksumSize]
	sum := Checksum(body)
	return bytes.Equal(sum[:], data[len(data)-ChecksumSize:])
}
