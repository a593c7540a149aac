// Package secrets generates the random credentials embedded into the
// rendered deployment artifacts.
package secrets

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Charset is the alphabet for generated tokens: decimal digits plus both
// cases of A-D and F. E/e is excluded so a token can never spell a word
// that trips naive hex parsers in downstream config formats.
const Charset = "0123456789ABCDFabcdf"

// Token lengths used for the credential bundle.
const (
	userLen     = 16
	passwordLen = 32
)

// Token returns a random string of length n drawn from Charset. Randomness
// comes from crypto/rand, which reads the OS entropy pool and does not block
// once the pool is initialized.
func Token(n int) (string, error) {
	limit := big.NewInt(int64(len(Charset)))
	buf := make([]byte, n)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("failed to read entropy: %w", err)
		}
		buf[i] = Charset[idx.Int64()]
	}
	return string(buf), nil
}

// Bundle holds the seven per-run credentials. A value generated here is the
// single source for every artifact that references it: the renderer never
// regenerates or transforms a token.
type Bundle struct {
	PostgresUser             string
	PostgresPassword         string
	PostgresDB               string
	RedisPassword            string
	LiveKitKey               string
	LiveKitSecret            string
	RegistrationSharedSecret string
}

// NewBundle generates a fresh credential set. Each token is independent;
// re-running the installer always produces a full replacement set.
func NewBundle() (*Bundle, error) {
	b := &Bundle{}
	fields := []struct {
		dst    *string
		length int
	}{
		{&b.PostgresUser, userLen},
		{&b.PostgresPassword, passwordLen},
		{&b.PostgresDB, userLen},
		{&b.RedisPassword, passwordLen},
		{&b.LiveKitKey, userLen},
		{&b.LiveKitSecret, passwordLen},
		{&b.RegistrationSharedSecret, passwordLen},
	}
	for _, f := range fields {
		token, err := Token(f.length)
		if err != nil {
			return nil, err
		}
		*f.dst = token
	}
	return b, nil
}
