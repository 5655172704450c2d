package learning

import (
	"encoding/hex"
	"fmt"
)

// StateKey is the opaque 32-byte perception fingerprint indexing the Q-table
type StateKey [32]byte

func (k StateKey) String() string {
	return hex.EncodeToString(k[:])
}

// Short returns the first eight hex digits, for logs
func (k StateKey) Short() string {
	return hex.EncodeToString(k[:4])
}

func (k StateKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *StateKey) UnmarshalText(text []byte) error {
	parsed, err := ParseStateKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseStateKey decodes a 64-digit hex string
func ParseStateKey(s string) (StateKey, error) {
	var k StateKey
	b, err := hex.DecodeString(s)
	if err != nil {
		return k, fmt.Errorf("parse state key: %w", err)
	}
	if len(b) != len(k) {
		return k, fmt.Errorf("parse state key: got %d bytes, want %d", len(b), len(k))
	}
	copy(k[:], b)
	return k, nil
}
