package guid

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
)

// NullGuid represents a Guid that may be absent. It implements sql.Scanner
// and json.Marshaler so it can be used for nullable columns and fields.
type NullGuid struct {
	Guid  Guid
	Valid bool // Valid is true if Guid is present
}

// NewNullGuid wraps g. The result is invalid if g is the null Guid.
func NewNullGuid(g Guid) NullGuid {
	return NullGuid{Guid: g, Valid: !g.IsNull()}
}

// Equal returns true if both values are present and hold the same Guid
func (n NullGuid) Equal(other NullGuid) bool {
	return n.Valid && other.Valid && n.Guid.Equal(other.Guid)
}

// Scan implements the sql.Scanner interface
func (n *NullGuid) Scan(src interface{}) error {
	if src == nil {
		n.Guid, n.Valid = Null, false
		return nil
	}
	if err := n.Guid.Scan(src); err != nil {
		return err
	}
	n.Valid = !n.Guid.IsNull()
	return nil
}

// Value implements the driver.Valuer interface
func (n NullGuid) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Guid.Value()
}

// MarshalJSON encodes an absent Guid as JSON null
func (n NullGuid) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Guid)
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (n *NullGuid) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		n.Guid, n.Valid = Null, false
		return nil
	}
	if err := json.Unmarshal(data, &n.Guid); err != nil {
		return err
	}
	n.Valid = !n.Guid.IsNull()
	return nil
}
