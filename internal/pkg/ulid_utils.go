package pkg

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	ErrEmptyULID   = errors.New("ULID string cannot be empty")
	ErrInvalidULID = errors.New("invalid ULID format")
)

func GenerateULIDObject() ulid.ULID {
	return ulid.MustNew(ulid.Timestamp(time.Now()), ulid.DefaultEntropy())
}

func ParseULID(ulidStr string) (ulid.ULID, error) {
	if ulidStr == "" {
		return ulid.ULID{}, ErrEmptyULID
	}

	parsed, err := ulid.Parse(ulidStr)
	if err != nil {
		return ulid.ULID{}, ErrInvalidULID
	}

	return parsed, nil
}

// ParseULIDPtr trata string vazia ou nil como ausência de valor.
func ParseULIDPtr(ulidStr *string) (*ulid.ULID, error) {
	if ulidStr == nil || *ulidStr == "" {
		return nil, nil
	}
	parsed, err := ParseULID(*ulidStr)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func ULIDPtrToString(id *ulid.ULID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func IsEmptyULID(id ulid.ULID) bool {
	return id == ulid.ULID{}
}

// DeterministicULID gera sempre o mesmo ULID para o mesmo namespace e chave,
// usado nos registros semeados pelas migrations.
func DeterministicULID(namespace, key string) ulid.ULID {
	hash := sha256.Sum256([]byte(namespace + ":" + key))
	timestamp := ulid.Timestamp(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return ulid.MustNew(timestamp, bytes.NewReader(hash[:10]))
}
