package pkg

import (
	"crypto/sha1"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Algorithm turns the timestamp seed into an opaque token.
type Algorithm func(seed []byte) (string, error)

// UUIDAlgorithm ignores the seed and returns a random UUID string.
func UUIDAlgorithm(_ []byte) (string, error) {
	return uuid.NewString(), nil
}

// HashGenerator produces unique opaque tokens used as surrogate usernames and
// identifiers.
type HashGenerator struct {
	logger zerolog.Logger
	now    func() time.Time
}

func NewHashGenerator(logger zerolog.Logger) *HashGenerator {
	return &HashGenerator{logger: logger, now: time.Now}
}

// Generate digests the current timestamp, by default with SHA-1. A positive
// maxSize truncates the token. A failing custom algorithm is logged and its
// error returned; earlier revisions swallowed the failure and handed out an
// empty identifier, which let duplicate usernames through.
func (slf *HashGenerator) Generate(algorithm Algorithm, maxSize int) (string, error) {
	seed := []byte(slf.now().Format(time.RFC3339Nano))

	var token string
	if algorithm == nil {
		digest := sha1.Sum(seed)
		token = hex.EncodeToString(digest[:])
	} else {
		var err error
		token, err = algorithm(seed)
		if err != nil {
			slf.logger.Error().Err(err).Msg("Hash algorithm failed")
			return "", err
		}
	}

	if maxSize > 0 && maxSize < len(token) {
		return token[:maxSize], nil
	}
	return token, nil
}
