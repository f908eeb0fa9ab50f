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
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck
)

// AccountIDFromPublicKey returns the account ID for a 33-byte public key, which is
// RIPEMD-160(SHA-256(key))
func AccountIDFromPublicKey(publicKey []byte) (AccountID, error) {
	key, err := NewPublicKey(publicKey)
	if err != nil {
		return AccountID{}, err
	}
	return key.AccountID(), nil
}

// DeriveClassicAddress returns the classic address for a 33-byte public key
func DeriveClassicAddress(publicKey []byte) (string, error) {
	accountID, err := AccountIDFromPublicKey(publicKey)
	if err != nil {
		return "", err
	}
	return accountID.String(), nil
}

func accountIDFromPublicKey(publicKey []byte) AccountID {
	h := ripemd160.New()
	h.Write(chainhash.HashB(publicKey))
	var ret AccountID
	copy(ret[:], h.Sum(nil))
	return ret
}
