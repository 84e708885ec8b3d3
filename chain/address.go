package chain

import (
	"database/sql/driver"
	"encoding/hex"
	"encoding/json"
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

const AddressSize = 20

// Address is a fixed 20-byte account identifier. The zero value is the
// zero address.
type Address [AddressSize]byte

func NewAddressFromBytes(b []byte) (Address, error) {
	var addr Address
	if len(b) != AddressSize {
		return addr, errors.Errorf("address must be %d bytes, got %d", AddressSize, len(b))
	}
	copy(addr[:], b)
	return addr, nil
}

func NewAddressFromHex(s string) (Address, error) {
	var addr Address
	s = strings.TrimPrefix(s, "0x")
	buf, err := hex.DecodeString(s)
	if err != nil {
		return addr, errors.Wrap(err, "error decoding address hex")
	}
	return NewAddressFromBytes(buf)
}

func MustAddressFromHex(s string) Address {
	addr, err := NewAddressFromHex(s)
	if err != nil {
		panic(err)
	}
	return addr
}

// HexLabel renders the address as its canonical name-tree label: 40
// lowercase hex characters, most significant nibble first, no prefix.
func (a Address) HexLabel() string {
	return hex.EncodeToString(a[:])
}

func (a Address) String() string {
	return "0x" + a.HexLabel()
}

func (a Address) Bytes() []byte {
	return a[:]
}

func (a Address) IsZero() bool {
	return a == Address{}
}

func (a Address) Equal(b Address) bool {
	return a == b
}

func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Address) UnmarshalJSON(b []byte) error {
	var hexStr string
	if err := json.Unmarshal(b, &hexStr); err != nil {
		return errors.WithStack(err)
	}
	addr, err := NewAddressFromHex(hexStr)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

func (a Address) Value() (driver.Value, error) {
	return a.HexLabel(), nil
}

func (a *Address) Scan(src interface{}) error {
	switch t := src.(type) {
	case string:
		addr, err := NewAddressFromHex(t)
		if err != nil {
			return err
		}
		*a = addr
	default:
		return errors.Errorf("cannot scan %v into address", reflect.TypeOf(src))
	}

	return nil
}
