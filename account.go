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
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/blinklabs-io/addresscodec/base58"
	"github.com/blinklabs-io/addresscodec/cbor"
)

// AccountID is the 20-byte identifier of a ledger account
type AccountID [AccountIDLength]byte

// Special accounts. AccountZero (rrrrrrrrrrrrrrrrrrrrrhoLvTp) is the account ID of all
// zero bytes and AccountOne (rrrrrrrrrrrrrrrrrrrrBZbvji) is the one with a final byte
// of 0x01. Neither has a known key
var (
	AccountZero = AccountID{}
	AccountOne  = AccountID{19: 0x01}
)

// NewAccountID returns an AccountID from 20 raw bytes
func NewAccountID(data []byte) (AccountID, error) {
	if len(data) != AccountIDLength {
		return AccountID{}, &base58.LengthError{
			Version:  VersionAccountID.Name(),
			Expected: AccountIDLength,
			Actual:   len(data),
		}
	}
	var ret AccountID
	copy(ret[:], data)
	return ret, nil
}

// NewAccountIDFromAddress returns the AccountID of a classic address
func NewAccountIDFromAddress(address string) (AccountID, error) {
	data, err := DecodeAccountID(address)
	if err != nil {
		return AccountID{}, err
	}
	return NewAccountID(data)
}

func (a AccountID) Bytes() []byte {
	return a[:]
}

// Hex returns the upper case hex form used in ledger JSON
func (a AccountID) Hex() string {
	return fmt.Sprintf("%X", a[:])
}

// String returns the classic address
func (a AccountID) String() string {
	ret, err := EncodeAccountID(a[:])
	if err != nil {
		panic(fmt.Sprintf("unexpected error encoding account ID: %s", err))
	}
	return ret
}

func (a AccountID) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *AccountID) UnmarshalJSON(data []byte) error {
	var tmp string
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	// Accept the hex form as well as the classic address
	if len(tmp) == AccountIDLength*2 {
		if raw, err := hex.DecodeString(tmp); err == nil {
			copy(a[:], raw)
			return nil
		}
	}
	ret, err := NewAccountIDFromAddress(tmp)
	if err != nil {
		return err
	}
	*a = ret
	return nil
}

func (a AccountID) MarshalCBOR() ([]byte, error) {
	// Ensure we always encode a full-sized bytestring, even if the ID is zero-valued
	idBytes := make([]byte, AccountIDLength)
	copy(idBytes, a[:])
	return cbor.Encode(idBytes)
}

func (a *AccountID) UnmarshalCBOR(data []byte) error {
	idBytes, err := cbor.DecodeFixedByteString(data, AccountIDLength)
	if err != nil {
		return fmt.Errorf("failed to decode account ID: %w", err)
	}
	copy(a[:], idBytes)
	return nil
}
