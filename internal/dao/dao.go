package dao

import (
	"errors"

	"gorm.io/gorm"
)

// IsDuplicateKey reports a uniqueness-constraint violation. The batch
// jobs treat it as "already done", per the settlement idempotency
// backstop.
func IsDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// IsNotFound reports gorm's record-not-found.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
