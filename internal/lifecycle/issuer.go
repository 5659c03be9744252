package lifecycle

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/eventlane/eventlane-backend/internal/domain"
)

const (
	// referenceAlphabet is uppercase-only: reference codes are read aloud
	// and typed by humans.
	referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// tokenAlphabet is the larger space for secret tokens.
	tokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// DefaultReferenceLength is the random suffix length of a reference code.
	DefaultReferenceLength = 12
	// DefaultSecretLength is the secret token length. Secrets are embedded
	// in scannable codes and must not be guessable.
	DefaultSecretLength = 40
	// MinSecretLength is the floor below which a secret token is rejected
	// at construction time.
	MinSecretLength = 32
)

// Issuer generates collision-resistant identifiers from crypto/rand.
// Entropy failure is fatal to the operation: issuance never falls back to a
// predictable source, because reference codes back physical access tokens.
type Issuer struct {
	refLen    int
	secretLen int
}

// NewIssuer creates an issuer with the given lengths, falling back to the
// defaults for non-positive values. Secret lengths below MinSecretLength are
// raised to it.
func NewIssuer(refLen, secretLen int) *Issuer {
	if refLen <= 0 {
		refLen = DefaultReferenceLength
	}
	if secretLen <= 0 {
		secretLen = DefaultSecretLength
	}
	if secretLen < MinSecretLength {
		secretLen = MinSecretLength
	}
	return &Issuer{refLen: refLen, secretLen: secretLen}
}

// ReferenceCode returns "<prefix>-<suffix>" with a random uppercase
// alphanumeric suffix. Codes are not checked against the store: the random
// space makes collisions cryptographically improbable, and the storage
// layer's unique constraint is the backstop.
func (i *Issuer) ReferenceCode(prefix string) (string, error) {
	suffix, err := randomString(referenceAlphabet, i.refLen)
	if err != nil {
		return "", err
	}
	prefix = strings.TrimSuffix(strings.ToUpper(strings.TrimSpace(prefix)), "-")
	if prefix == "" {
		return suffix, nil
	}
	return prefix + "-" + suffix, nil
}

// SecretToken returns a random alphanumeric string for lookup links
// embedded in scannable codes.
func (i *Issuer) SecretToken() (string, error) {
	return randomString(tokenAlphabet, i.secretLen)
}

// randomString draws n characters from alphabet using rejection sampling,
// so every character is uniform over the alphabet.
func randomString(alphabet string, n int) (string, error) {
	// largest multiple of len(alphabet) that fits in a byte
	limit := byte(256 - 256%len(alphabet))

	var b strings.Builder
	b.Grow(n)
	buf := make([]byte, n)
	for b.Len() < n {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("read random bytes: %v: %w", err, domain.ErrEntropy)
		}
		for _, c := range buf {
			if c >= limit {
				continue
			}
			b.WriteByte(alphabet[int(c)%len(alphabet)])
			if b.Len() == n {
				break
			}
		}
	}
	return b.String(), nil
}
