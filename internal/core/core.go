package core

import (
	"errors"

	"github.com/gigtrack-dev/gigtrack/internal/models"
	"gorm.io/gorm"
)

// PasswordHasher is the opaque password hashing capability. The core never
// sees a concrete algorithm.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}

// Core implements the entity store, mutation guards, and derived
// projections over the four entity types. Caller identity is always an
// explicit parameter; the core never reads ambient request state.
type Core struct {
	db     *gorm.DB
	hasher PasswordHasher
}

func New(db *gorm.DB, hasher PasswordHasher) *Core {
	return &Core{db: db, hasher: hasher}
}

// requireUser resolves the acting user, failing with NotFound when the id
// does not exist (e.g. the account was deleted under a live session).
func (c *Core) requireUser(userID uint) (*models.User, error) {
	var user models.User
	if err := c.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("User not found")
		}
		return nil, storage(err)
	}
	return &user, nil
}
