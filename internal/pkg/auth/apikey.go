package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
)

const (
	// APIKeyPrefix marks every partner credential.
	APIKeyPrefix = "omaddr_"

	keySeedLength = 32
	keyHexLength  = 32
	keyAlphabet   = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// KeyGenerator issues opaque partner API keys.
type KeyGenerator interface {
	Generate() (string, error)
}

// SHA256KeyGenerator hashes a random alphanumeric seed into a prefixed key.
type SHA256KeyGenerator struct {
	random io.Reader
}

// NewSHA256KeyGenerator creates a generator reading entropy from random,
// falling back to crypto/rand when nil.
func NewSHA256KeyGenerator(random io.Reader) *SHA256KeyGenerator {
	if random == nil {
		random = rand.Reader
	}
	return &SHA256KeyGenerator{random: random}
}

// Generate returns omaddr_ followed by 32 hex characters.
func (g *SHA256KeyGenerator) Generate() (string, error) {
	seed := make([]byte, keySeedLength)
	max := big.NewInt(int64(len(keyAlphabet)))
	for i := range seed {
		n, err := rand.Int(g.random, max)
		if err != nil {
			return "", fmt.Errorf("generate api key: %w", err)
		}
		seed[i] = keyAlphabet[n.Int64()]
	}
	sum := sha256.Sum256(seed)
	return APIKeyPrefix + hex.EncodeToString(sum[:])[:keyHexLength], nil
}

// MaskAPIKey keeps the prefix, four leading and four trailing characters.
func MaskAPIKey(key string) string {
	body := key
	prefix := ""
	if len(key) > len(APIKeyPrefix) && key[:len(APIKeyPrefix)] == APIKeyPrefix {
		prefix = APIKeyPrefix
		body = key[len(APIKeyPrefix):]
	}
	if len(body) <= 8 {
		return prefix + "…"
	}
	return prefix + body[:4] + "…" + body[len(body)-4:]
}
