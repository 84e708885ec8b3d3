package gcrypto

import (
	"bytes"
	"database/sql/driver"
	"encoding/hex"
	"encoding/json"
	"io"
	"reflect"

	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"
)

type Hash []byte

func (h Hash) IsZero() bool {
	for _, b := range h {
		if b != 0x00 {
			return false
		}
	}
	return true
}

func (h Hash) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(h)
	return int64(n), err
}

func (h Hash) String() string {
	return hex.EncodeToString(h)
}

func (h Hash) MarshalJSON() ([]byte, error) {
	if len(h) == 0 {
		return json.Marshal(nil)
	}
	return json.Marshal(h.String())
}

func (h *Hash) UnmarshalJSON(b []byte) error {
	var hexStr string
	if err := json.Unmarshal(b, &hexStr); err != nil {
		return errors.WithStack(err)
	}
	buf, err := hex.DecodeString(hexStr)
	if err != nil {
		return errors.WithStack(err)
	}
	*h = buf
	return nil
}

func (h Hash) Value() (driver.Value, error) {
	if len(h) == 0 {
		return nil, nil
	}
	return hex.EncodeToString(h), nil
}

func (h *Hash) Scan(src interface{}) error {
	switch t := src.(type) {
	case nil:
		*h = nil
	case string:
		buf, err := hex.DecodeString(t)
		if err != nil {
			return errors.WithStack(err)
		}
		*h = buf
	default:
		return errors.Errorf("cannot scan %v into hash", reflect.TypeOf(src))
	}

	return nil
}

func (h Hash) Equal(other Hash) bool {
	return bytes.Equal(h, other)
}

// Keccak256 is the digest used for every node derivation in the name
// tree. It is the pre-standardization Keccak, not NIST SHA3-256; the
// two produce different outputs and the registry derives its node
// identifiers with the former.
func Keccak256(chunks ...[]byte) Hash {
	buf := sha3.NewLegacyKeccak256()
	for _, chunk := range chunks {
		buf.Write(chunk)
	}
	return buf.Sum(nil)
}
