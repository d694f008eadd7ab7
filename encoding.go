package guid

import (
	"database/sql/driver"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// MarshalText implements the encoding.TextMarshaler interface.
// The null Guid marshals to empty text.
func (g Guid) MarshalText() ([]byte, error) {
	return []byte(g.s), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// Empty text yields the null Guid.
func (g *Guid) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*g = Null
		return nil
	}
	id, err := Parse(string(data))
	if err != nil {
		return err
	}
	*g = id
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (g Guid) MarshalBinary() ([]byte, error) {
	return g.Bytes()
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (g *Guid) UnmarshalBinary(data []byte) error {
	id, err := FromBytes(data)
	if err != nil {
		return err
	}
	*g = id
	return nil
}

// Scan implements the sql.Scanner interface for database compatibility.
// It accepts the canonical text form or the raw 12-byte binary form.
func (g *Guid) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		*g = Null
		return nil
	case string:
		return g.UnmarshalText([]byte(src))
	case []byte:
		if len(src) == ByteLength {
			return g.UnmarshalBinary(src)
		}
		return g.UnmarshalText(src)
	default:
		return fmt.Errorf("guid: cannot scan type %T into Guid", src)
	}
}

// Value implements the driver.Valuer interface for database compatibility.
// The null Guid is stored as SQL NULL.
func (g Guid) Value() (driver.Value, error) {
	if g.IsNull() {
		return nil, nil
	}
	return g.s, nil
}

// EncodeToBase64 encodes the Guid to a base64 string (URL-safe, no padding)
func (g Guid) EncodeToBase64() (string, error) {
	b, err := g.Bytes()
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// EncodeToBase64Std encodes the Guid to a standard base64 string
func (g Guid) EncodeToBase64Std() (string, error) {
	b, err := g.Bytes()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// DecodeFromBase64 decodes a base64 string to Guid (URL-safe encoding)
func DecodeFromBase64(s string) (Guid, error) {
	data, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return Null, fmt.Errorf("%w: %v", ErrInvalidGuid, err)
	}
	return FromBytes(data)
}

// DecodeFromBase64Std decodes a standard base64 string to Guid
func DecodeFromBase64Std(s string) (Guid, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return Null, fmt.Errorf("%w: %v", ErrInvalidGuid, err)
	}
	return FromBytes(data)
}

// FromBytes creates a Guid from its 12-byte binary form
func FromBytes(b []byte) (Guid, error) {
	if len(b) != ByteLength {
		return Null, ErrInvalidLength
	}
	return Guid{s: hex.EncodeToString(b)}, nil
}

// MustFromBytes is like FromBytes but panics on error
func MustFromBytes(b []byte) Guid {
	g, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return g
}
