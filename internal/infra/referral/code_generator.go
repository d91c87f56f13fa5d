// Package referral provides the concrete referral-code generator.
package referral

import (
	"crypto/rand"
	"math/big"

	"patron/config"
	"patron/internal/domain/service"
)

// codeAlphabet is the uppercase alphanumeric set codes are sampled from.
const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// codeLength is the number of random characters after the prefix.
const codeLength = 6

// codeGenerator samples random codes of the form <prefix> + 6 characters.
// There is no uniqueness coordination here; the store's unique index rejects
// the rare collision.
type codeGenerator struct {
	prefix string
}

// NewCodeGenerator is the constructor for codeGenerator.
func NewCodeGenerator(cfg *config.Config) service.ReferralCodeGenerator {
	return &codeGenerator{prefix: cfg.Referral.CodePrefix}
}

// Generate returns a fresh referral code.
func (g *codeGenerator) Generate() string {
	buf := make([]byte, codeLength)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range buf {
		// crypto/rand.Int only fails when the OS entropy source is broken;
		// fall back to a fixed character rather than panicking mid-request.
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			buf[i] = codeAlphabet[0]

			continue
		}
		buf[i] = codeAlphabet[n.Int64()]
	}

	return g.prefix + string(buf)
}
