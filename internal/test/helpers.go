package test

import (
	"encoding/hex"
	"fmt"
	"slices"
	"strings"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// FlipBit returns a copy of data with a single bit inverted. Bit 0 is the most
// significant bit of the first byte
func FlipBit(data []byte, bit int) []byte {
	ret := slices.Clone(data)
	ret[bit/8] ^= 0x80 >> (bit % 8)
	return ret
}

// PatternBytes returns length bytes where byte i is seed+i (mod 256)
func PatternBytes(length int, seed byte) []byte {
	ret := make([]byte, length)
	for i := range ret {
		ret[i] = seed + byte(i)
	}
	return ret
}
