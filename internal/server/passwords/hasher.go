// Package passwords wraps the one-way salted password hashing primitive used
// for credential storage and verification.
package passwords

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/Alejandrogv2304/uis-tg-profe-catedra/internal/common"
)

// DefaultCost is the bcrypt cost factor used for all stored credentials.
const DefaultCost = 10

// saltBytes is the number of random bytes behind the stored salt column.
const saltBytes = 16

// Hasher is the hashing capability injected into the services. Compare must
// distinguish a mismatch (false, nil) from an engine failure (false, err);
// login treats both as unauthorized but logs them differently.
type Hasher interface {
	// Hash derives a new salted digest of the plaintext. It returns the digest
	// and the fresh salt; both are persisted on the user record.
	Hash(plaintext string) (hash string, salt string, err error)

	// Compare verifies the plaintext against a stored digest.
	Compare(plaintext, hash string) (bool, error)
}

// BcryptHasher implements Hasher on bcrypt. bcrypt embeds its own salt in the
// digest; the separate salt column is kept for schema compatibility and is a
// random hex string generated alongside the digest.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher constructs a hasher with the given cost factor. Costs
// outside the bcrypt range fall back to DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, string, error) {
	salt, err := common.MakeRandHexString(saltBytes)
	if err != nil {
		return "", "", err
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", "", err
	}
	return string(digest), salt, nil
}

func (h *BcryptHasher) Compare(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	// Malformed digest or engine failure, not a mismatch.
	return false, err
}
