package guid

import (
	"crypto/rand"
	"encoding/hex"
	"io"
	"strconv"
	"time"
)

// Generator produces random Guids. Each Guid is built from ByteLength random
// bytes followed by the hex Unix time in seconds, keeping the trailing
// StringLength characters. The layout matches identifiers issued by earlier
// versions of this scheme and must not change.
//
// A Generator is safe for concurrent use as long as its sources are.
type Generator struct {
	randReader io.Reader
	now        func() time.Time
}

// NewGenerator creates a new generator with crypto/rand as the random source
func NewGenerator() *Generator {
	return &Generator{
		randReader: rand.Reader,
		now:        time.Now,
	}
}

// NewGeneratorWithReader creates a new generator with a custom random source.
// This is primarily useful for testing with deterministic random sources.
func NewGeneratorWithReader(r io.Reader) *Generator {
	return NewGeneratorWithSource(r, time.Now)
}

// NewGeneratorWithSource creates a generator with custom random and time sources.
func NewGeneratorWithSource(r io.Reader, now func() time.Time) *Generator {
	if r == nil {
		r = rand.Reader
	}
	if now == nil {
		now = time.Now
	}
	return &Generator{
		randReader: r,
		now:        now,
	}
}

// New generates a new Guid using the current time.
func (g *Generator) New() (Guid, error) {
	return g.NewWithTime(g.now())
}

// NewWithTime generates a new Guid using t as the time component.
func (g *Generator) NewWithTime(t time.Time) (Guid, error) {
	var randBytes [ByteLength]byte
	if _, err := io.ReadFull(g.randReader, randBytes[:]); err != nil {
		return Null, err
	}

	s := hex.EncodeToString(randBytes[:]) + strconv.FormatUint(uint64(t.Unix()), 16)
	return Guid{s: s[len(s)-StringLength:]}, nil
}

// Must is a helper that wraps a call to a function returning (Guid, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = guid.Must(generator.New())
func Must(g Guid, err error) Guid {
	if err != nil {
		panic(err)
	}
	return g
}

// defaultGenerator is the package-level generator used by New and Generate
var defaultGenerator = NewGenerator()

// New generates a new random Guid using the default generator.
func New() (Guid, error) {
	return defaultGenerator.New()
}

// Generate is like New but panics if the system random source fails.
func Generate() Guid {
	return Must(defaultGenerator.New())
}
