// Package guid provides a compact globally unique identifier for Go: a 12-byte
// value written as 24 lowercase hexadecimal characters.
//
// A Guid can be generated at random, parsed from an external string, or
// derived deterministically from an arbitrary seed string. Derived Guids are
// useful when a stable identifier must be computed from existing data, such
// as a natural key or an import record.
//
// Basic Usage:
//
//	// Generate a new Guid
//	id, err := guid.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(id.String())
//
//	// Parse a Guid from string
//	id, err := guid.Parse("5d41402abc4b2a76b9719d91")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Derive a Guid from a seed; the same seed always gives the same Guid
//	id := guid.MustFromFixedString("hello")
//
// Generation:
//
// A random Guid is made of ByteLength random bytes followed by the Unix time
// in seconds, both hex-encoded, of which only the trailing 24 characters are
// kept. Custom random and time sources can be injected for tests:
//
//	gen := guid.NewGeneratorWithSource(reader, clock)
//	id, err := gen.New()
//
// Null Guids:
//
// The zero Guid is the null Guid and means "no identifier". It is never
// equal to another Guid and fails validation. Use NullGuid for nullable
// database columns and JSON fields.
//
// Thread Safety:
//
// Guid is an immutable value and can be shared between goroutines freely.
// The default generator can be used concurrently from multiple goroutines
// without additional synchronization.
//
// Errors:
//
// All validation failures wrap ErrInvalidGuid; test for them with errors.Is.
package guid
