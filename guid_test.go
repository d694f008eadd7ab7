package guid

import (
	"errors"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "lowercase",
			input: "5d41402abc4b2a76b9719d91",
			want:  "5d41402abc4b2a76b9719d91",
		},
		{
			name:  "digits only",
			input: "012345678901234567890123",
			want:  "012345678901234567890123",
		},
		{
			name:  "mixed case is canonicalized",
			input: "5D41402ABC4b2a76b9719D91",
			want:  "5d41402abc4b2a76b9719d91",
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "too short",
			input:   "5d41402abc4b2a76b9719d9",
			wantErr: true,
		},
		{
			name:    "too long",
			input:   "5d41402abc4b2a76b9719d911",
			wantErr: true,
		},
		{
			name:    "invalid hex",
			input:   "5d41402abc4b2a76b9719d9g",
			wantErr: true,
		},
		{
			name:    "uuid format",
			input:   "f47ac10b-58cc-4372-a567-0e02b2c3d479",
			wantErr: true,
		},
		{
			name:    "surrounding spaces",
			input:   " 5d41402abc4b2a76b9719d9 ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if IsValidString(tt.input) == tt.wantErr {
				t.Errorf("IsValidString(%q) = %v, want %v", tt.input, tt.wantErr, !tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidGuid) {
					t.Errorf("Parse() error = %v, want ErrInvalidGuid", err)
				}
				if !g.IsNull() {
					t.Errorf("Parse() returned %v on error, want null Guid", g)
				}
				return
			}
			if g.String() != tt.want {
				t.Errorf("Parse() = %v, want %v", g, tt.want)
			}
		})
	}
}

func TestValidateString_Messages(t *testing.T) {
	err := ValidateString("")
	if !errors.Is(err, ErrInvalidGuid) {
		t.Fatalf("ValidateString(\"\") error = %v, want ErrInvalidGuid", err)
	}
	if !strings.Contains(err.Error(), "empty string is not a valid GUID") {
		t.Errorf("ValidateString(\"\") message = %q", err.Error())
	}

	err = ValidateString("<script>")
	if !errors.Is(err, ErrInvalidGuid) {
		t.Fatalf("ValidateString() error = %v, want ErrInvalidGuid", err)
	}
	if !strings.Contains(err.Error(), "&lt;script&gt; is not a valid GUID") {
		t.Errorf("ValidateString() message = %q, want escaped input", err.Error())
	}
}

func TestParse_RoundTrip(t *testing.T) {
	gen := NewGenerator()
	for i := 0; i < 100; i++ {
		g := Must(gen.New())
		parsed, err := Parse(g.String())
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", g, err)
		}
		if !parsed.Equal(g) {
			t.Errorf("Round-trip mismatch: got %v, want %v", parsed, g)
		}
	}
}

func TestMustParse(t *testing.T) {
	g := MustParse("5d41402abc4b2a76b9719d91")
	if g.IsNull() {
		t.Error("MustParse() returned null Guid")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParse() did not panic on invalid input")
		}
	}()
	MustParse("invalid-guid")
}

func TestFromHexString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "uppercase with trailing data",
			input: "ABCDEF0123456789ABCDEF0123456789extra",
			want:  "abcdef0123456789abcdef01",
		},
		{
			name:  "md5 digest",
			input: "5d41402abc4b2a76b9719d911017c592",
			want:  "5d41402abc4b2a76b9719d91",
		},
		{
			name:  "exact length",
			input: "abcdef0123456789abcdef01",
			want:  "abcdef0123456789abcdef01",
		},
		{
			name:    "too short",
			input:   "abcdef",
			wantErr: true,
		},
		{
			name:    "invalid prefix",
			input:   "xyzdef0123456789abcdef0123456789",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := FromHexString(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromHexString() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && g.String() != tt.want {
				t.Errorf("FromHexString() = %v, want %v", g, tt.want)
			}
		})
	}
}

func TestFromFixedString(t *testing.T) {
	// md5("hello") = 5d41402abc4b2a76b9719d911017c592
	const want = "5d41402abc4b2a76b9719d91"

	g, err := FromFixedString("hello")
	if err != nil {
		t.Fatalf("FromFixedString() error = %v", err)
	}
	if g.String() != want {
		t.Errorf("FromFixedString(\"hello\") = %v, want %v", g, want)
	}

	again := MustFromFixedString("hello")
	if !again.Equal(g) {
		t.Errorf("FromFixedString() is not deterministic: %v != %v", again, g)
	}

	upper := MustFromFixedString("HeLLo")
	if !upper.Equal(g) {
		t.Errorf("FromFixedString() should ignore case: %v != %v", upper, g)
	}

	other := MustFromFixedString("world")
	if other.Equal(g) {
		t.Error("FromFixedString() returned the same Guid for different seeds")
	}

	empty, err := FromFixedString("")
	if err != nil {
		t.Fatalf("FromFixedString(\"\") error = %v", err)
	}
	// md5("") = d41d8cd98f00b204e9800998ecf8427e
	if empty.String() != "d41d8cd98f00b204e9800998" {
		t.Errorf("FromFixedString(\"\") = %v", empty)
	}
}

func TestFromFixedString_Bytes(t *testing.T) {
	tests := []struct {
		name string
		seed string
		want string // leading hex of md5 over the seed bytes
	}{
		{"invalid utf-8 ff", "\xff", "00594fd4f42ba43fc1ca0427"},
		{"invalid utf-8 fe", "\xfe", "403ae091d3be6acf11811485"},
		{"truncated utf-8", "ab\xc3", "fa532ab79f2345457c8c0198"},
		{"non-ascii letter kept", "\u00c4", "b66491b03046f0846fe4206b"},
		{"only ascii lowered", "\u00c4B", "ca8517cab44e1f824e2752f2"},
		{"ascii around invalid byte", "x\xffYZ", "7f2a698ec1e44c8701680a9a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := FromFixedString(tt.seed)
			if err != nil {
				t.Fatalf("FromFixedString() error = %v", err)
			}
			if g.String() != tt.want {
				t.Errorf("FromFixedString(%q) = %v, want %v", tt.seed, g, tt.want)
			}
		})
	}

	if MustFromFixedString("\xff").Equal(MustFromFixedString("\xfe")) {
		t.Error("FromFixedString() should not merge distinct invalid UTF-8 seeds")
	}
	if MustFromFixedString("\u00c4").Equal(MustFromFixedString("\u00e4")) {
		t.Error("FromFixedString() should not fold non-ASCII case")
	}
}

func TestFromFixedString_Distinct(t *testing.T) {
	seen := make(map[Guid]string)
	for i := 0; i < 1000; i++ {
		seed := "seed-" + strings.Repeat("x", i%7) + string(rune('a'+i%26)) + strings.Repeat("y", i/26)
		g := MustFromFixedString(seed)
		if prev, ok := seen[g]; ok && prev != seed {
			t.Fatalf("FromFixedString() collision between %q and %q", prev, seed)
		}
		seen[g] = seed
	}
}

func TestFromGuid(t *testing.T) {
	src := MustParse("5d41402abc4b2a76b9719d91")
	cp := FromGuid(src)
	if !cp.Equal(src) {
		t.Errorf("FromGuid() = %v, want %v", cp, src)
	}
}

func TestGuid_IsNull(t *testing.T) {
	if !Null.IsNull() {
		t.Error("Null should return true for IsNull()")
	}

	var zero Guid
	if !zero.IsNull() {
		t.Error("zero Guid should return true for IsNull()")
	}

	if Generate().IsNull() {
		t.Error("generated Guid should return false for IsNull()")
	}
}

func TestGuid_Validate(t *testing.T) {
	if err := MustParse("5d41402abc4b2a76b9719d91").Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	if err := Null.Validate(); !errors.Is(err, ErrInvalidGuid) {
		t.Errorf("Null.Validate() error = %v, want ErrInvalidGuid", err)
	}
}

func TestGuid_Bytes(t *testing.T) {
	g := MustParse("5d41402abc4b2a76b9719d91")
	want := []byte{0x5d, 0x41, 0x40, 0x2a, 0xbc, 0x4b, 0x2a, 0x76, 0xb9, 0x71, 0x9d, 0x91}

	b, err := g.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}
	if len(b) != ByteLength {
		t.Fatalf("Bytes() length = %d, want %d", len(b), ByteLength)
	}
	for i := range want {
		if b[i] != want[i] {
			t.Fatalf("Bytes() = %x, want %x", b, want)
		}
	}

	back, err := FromBytes(b)
	if err != nil {
		t.Fatalf("FromBytes() error = %v", err)
	}
	if !back.Equal(g) {
		t.Errorf("Binary round-trip = %v, want %v", back, g)
	}

	if _, err := Null.Bytes(); !errors.Is(err, ErrInvalidGuid) {
		t.Errorf("Null.Bytes() error = %v, want ErrInvalidGuid", err)
	}
}

func TestGuid_Equal(t *testing.T) {
	g1 := MustParse("5d41402abc4b2a76b9719d91")
	g2 := MustParse("5d41402abc4b2a76b9719d91")
	g3 := MustParse("d41d8cd98f00b204e9800998")
	upper := MustParse("5D41402ABC4B2A76B9719D91")

	if !g1.Equal(g1) {
		t.Error("Equal() should be reflexive")
	}
	if !g1.Equal(g2) || !g2.Equal(g1) {
		t.Error("g1 and g2 should be equal in both directions")
	}
	if g1.Equal(g3) || g3.Equal(g1) {
		t.Error("g1 should not equal g3")
	}
	if !g1.Equal(upper) {
		t.Error("Guids differing only in input case should be equal")
	}
	if g1.Equal(Null) {
		t.Error("Equal() should return false for a missing Guid")
	}
	if Null.Equal(Null) {
		t.Error("Null should not equal Null")
	}
}

func TestGuid_Compare(t *testing.T) {
	g1 := MustParse("000000000000000000000001")
	g2 := MustParse("000000000000000000000002")
	g3 := MustParse("000000000000000000000001")

	if g1.Compare(g2) != -1 {
		t.Error("g1 should be less than g2")
	}
	if g2.Compare(g1) != 1 {
		t.Error("g2 should be greater than g1")
	}
	if g1.Compare(g3) != 0 {
		t.Error("g1 should be equal to g3")
	}
	if Null.Compare(g1) != -1 {
		t.Error("Null should sort first")
	}
}
