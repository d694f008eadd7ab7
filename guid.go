package guid

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"html"
	"strings"
)

// ByteLength is the size of a GUID payload in bytes.
const ByteLength = 12

// StringLength is the size of the canonical hexadecimal form.
const StringLength = 2 * ByteLength

// Guid is a 12-byte identifier kept in its canonical form: 24 lowercase
// hexadecimal characters. The zero value is the null Guid, meaning that no
// identifier is present.
type Guid struct {
	s string
}

// Null is the null Guid (no identifier)
var Null Guid

// ValidateString reports whether s is a well-formed GUID string.
// Hex digits are accepted in either case.
func ValidateString(s string) error {
	if s == "" {
		return fmt.Errorf("%w: empty string is not a valid GUID", ErrInvalidGuid)
	}
	if len(s) != StringLength || !isHex(s) {
		return fmt.Errorf("%w: %s is not a valid GUID", ErrInvalidGuid, html.EscapeString(s))
	}
	return nil
}

// IsValidString is like ValidateString but returns a bool
func IsValidString(s string) bool {
	return ValidateString(s) == nil
}

// lowerASCII maps 'A'-'Z' to 'a'-'z' and leaves every other byte as is.
func lowerASCII(s string) []byte {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return b
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
		case 'a' <= c && c <= 'f':
		case 'A' <= c && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// Parse validates s and returns the Guid it represents.
// The stored form is always lowercase.
func Parse(s string) (Guid, error) {
	if err := ValidateString(s); err != nil {
		return Null, err
	}
	return Guid{s: string(lowerASCII(s))}, nil
}

// FromString is an alias for Parse
func FromString(s string) (Guid, error) {
	return Parse(s)
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(s string) Guid {
	g, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("guid: Parse(%q): %v", s, err))
	}
	return g
}

// FromHexString parses the first StringLength characters of s, lowercased.
// Anything after them is ignored; a shorter s is parsed whole.
func FromHexString(s string) (Guid, error) {
	if len(s) > StringLength {
		s = s[:StringLength]
	}
	return Parse(string(lowerASCII(s)))
}

// FromFixedString derives a Guid from seed. The result is the leading
// StringLength hex characters of the MD5 digest of the seed with ASCII
// letters lowercased, so seeds that differ only in ASCII case map to the
// same Guid. All other bytes, including non-ASCII and invalid UTF-8, are
// hashed unchanged.
func FromFixedString(seed string) (Guid, error) {
	sum := md5.Sum(lowerASCII(seed))
	return Parse(hex.EncodeToString(sum[:])[:StringLength])
}

// MustFromFixedString is like FromFixedString but panics on error
func MustFromFixedString(seed string) Guid {
	g, err := FromFixedString(seed)
	if err != nil {
		panic(err)
	}
	return g
}

// FromGuid returns a copy of src
func FromGuid(src Guid) Guid {
	return Guid{s: src.s}
}

// String returns the canonical string representation of the Guid.
// It is empty for the null Guid.
func (g Guid) String() string {
	return g.s
}

// IsNull returns true if g holds no identifier
func (g Guid) IsNull() bool {
	return g.s == ""
}

// Validate checks the stored string again. It fails for the null Guid.
func (g Guid) Validate() error {
	return ValidateString(g.s)
}

// Bytes returns the 12-byte binary form of the Guid
func (g Guid) Bytes() ([]byte, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	b := make([]byte, ByteLength)
	if _, err := hex.Decode(b, []byte(g.s)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGuid, err)
	}
	return b, nil
}

// Equal returns true if other is present and holds the same identifier
func (g Guid) Equal(other Guid) bool {
	return !other.IsNull() && g.s == other.s
}

// Compare returns an integer comparing two Guids lexicographically.
// The result will be 0 if g==other, -1 if g < other, and +1 if g > other.
// The null Guid sorts first.
func (g Guid) Compare(other Guid) int {
	return strings.Compare(g.s, other.s)
}
