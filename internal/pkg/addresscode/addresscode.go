// Package addresscode produces the short human readable codes handed to residents.
package addresscode

import (
	"math/rand"
	"sync"
	"time"

	"go.uber.org/fx"
)

const (
	digits  = "0123456789"
	letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	otherCity = "OTH"
)

var cityPrefixes = map[string]string{
	"Muscat":  "MUS",
	"Salalah": "SAL",
	"Sohar":   "SOH",
	"Nizwa":   "NIZ",
}

// Module provides the default code generator.
var Module = fx.Options(
	fx.Provide(newGenerator),
)

func newGenerator() Generator {
	return New()
}

// Generator creates address codes for a city.
type Generator interface {
	Generate(city string) string
}

// RandomGenerator builds codes like OM-MUS-4729A from a pseudo random source.
type RandomGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a generator seeded from the clock.
func New() *RandomGenerator {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource creates a generator over the given source.
func NewWithSource(src rand.Source) *RandomGenerator {
	return &RandomGenerator{rng: rand.New(src)}
}

// CityPrefix maps a city name to its three letter segment.
func CityPrefix(city string) string {
	if prefix, ok := cityPrefixes[city]; ok {
		return prefix
	}
	return otherCity
}

// Generate returns OM-<city>-<4 digits><letter>.
func (g *RandomGenerator) Generate(city string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	buf := make([]byte, 0, 12)
	buf = append(buf, "OM-"...)
	buf = append(buf, CityPrefix(city)...)
	buf = append(buf, '-')
	for i := 0; i < 4; i++ {
		buf = append(buf, digits[g.rng.Intn(len(digits))])
	}
	buf = append(buf, letters[g.rng.Intn(len(letters))])
	return string(buf)
}
