package core

import (
	"errors"
	"strings"

	"github.com/gigtrack-dev/gigtrack/internal/models"
	"github.com/gigtrack-dev/gigtrack/internal/validation"
	"gorm.io/gorm"
)

// Register creates a new user account. Username and email uniqueness is
// enforced by the store's unique indexes; the lookups here are only a
// fast-path rejection with a friendlier message.
func (c *Core) Register(in validation.UserInput) (*UserDetail, error) {
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		in.Email = &email
	}

	if errs := validation.User(in, false); !errs.Empty() {
		return nil, invalid(errs)
	}

	var count int64
	if err := c.db.Model(&models.User{}).Where("email = ?", *in.Email).Count(&count).Error; err != nil {
		return nil, storage(err)
	}
	if count > 0 {
		return nil, conflict("Email already exists")
	}

	if err := c.db.Model(&models.User{}).Where("username = ?", *in.Username).Count(&count).Error; err != nil {
		return nil, storage(err)
	}
	if count > 0 {
		return nil, conflict("Username already exists")
	}

	digest, err := c.hasher.Hash(*in.Password)
	if err != nil {
		return nil, storage(err)
	}

	user := models.User{
		Username:     *in.Username,
		Email:        *in.Email,
		PasswordHash: digest,
	}

	if err := c.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, conflict("Username or email already exists")
		}
		return nil, storage(err)
	}

	return c.userDetail(user)
}

// Authenticate verifies a username/password pair and returns the user's
// projection on success.
func (c *Core) Authenticate(username, password string) (*UserDetail, error) {
	var user models.User
	if err := c.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, unauthorized("Invalid credentials")
		}
		return nil, storage(err)
	}

	if !c.hasher.Verify(password, user.PasswordHash) {
		return nil, unauthorized("Invalid credentials")
	}

	return c.userDetail(user)
}

// GetUser returns the full projection of a user: owned clients, orders,
// and the derived job view.
func (c *Core) GetUser(userID uint) (*UserDetail, error) {
	user, err := c.requireUser(userID)
	if err != nil {
		return nil, err
	}
	return c.userDetail(*user)
}

// UserPatch carries a partial update to the acting user's account.
// Changing the password requires the current one.
type UserPatch struct {
	Username        *string
	Email           *string
	CurrentPassword *string
	NewPassword     *string
}

// UpdateUser applies a partial patch to the acting user's account. Touched
// fields re-run field validation; username and email keep their global
// uniqueness guarantees.
func (c *Core) UpdateUser(actorID uint, patch UserPatch) (*UserDetail, error) {
	user, err := c.requireUser(actorID)
	if err != nil {
		return nil, err
	}

	if patch.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*patch.Email))
		patch.Email = &email
	}

	in := validation.UserInput{
		Username: patch.Username,
		Email:    patch.Email,
		Password: patch.NewPassword,
	}
	if errs := validation.User(in, true); !errs.Empty() {
		return nil, invalid(errs)
	}

	updates := map[string]interface{}{}

	if patch.Username != nil && *patch.Username != user.Username {
		var count int64
		if err := c.db.Model(&models.User{}).Where("username = ? AND id != ?", *patch.Username, actorID).Count(&count).Error; err != nil {
			return nil, storage(err)
		}
		if count > 0 {
			return nil, conflict("Username already exists")
		}
		updates["username"] = *patch.Username
	}

	if patch.Email != nil && *patch.Email != user.Email {
		var count int64
		if err := c.db.Model(&models.User{}).Where("email = ? AND id != ?", *patch.Email, actorID).Count(&count).Error; err != nil {
			return nil, storage(err)
		}
		if count > 0 {
			return nil, conflict("Email already exists")
		}
		updates["email"] = *patch.Email
	}

	if patch.NewPassword != nil {
		if patch.CurrentPassword == nil || !c.hasher.Verify(*patch.CurrentPassword, user.PasswordHash) {
			return nil, forbidden("Current password is incorrect")
		}
		digest, err := c.hasher.Hash(*patch.NewPassword)
		if err != nil {
			return nil, storage(err)
		}
		updates["password_hash"] = digest
	}

	if len(updates) > 0 {
		if err := c.db.Model(user).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, conflict("Username or email already exists")
			}
			return nil, storage(err)
		}
		if err := c.db.First(user, actorID).Error; err != nil {
			return nil, storage(err)
		}
	}

	return c.userDetail(*user)
}

// DeleteUser removes the acting user's account after password
// confirmation, cascading to the user's clients and orders in one
// transaction. Jobs are shared and survive. Returns the pre-delete
// snapshot.
func (c *Core) DeleteUser(actorID uint, password string) (*UserDetail, error) {
	user, err := c.requireUser(actorID)
	if err != nil {
		return nil, err
	}

	if !c.hasher.Verify(password, user.PasswordHash) {
		return nil, forbidden("Incorrect password")
	}

	snapshot, err := c.userDetail(*user)
	if err != nil {
		return nil, err
	}

	err = c.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", actorID).Delete(&models.Order{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", actorID).Delete(&models.Client{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, actorID).Error
	})
	if err != nil {
		return nil, storage(err)
	}

	return snapshot, nil
}

func (c *Core) userDetail(user models.User) (*UserDetail, error) {
	var clients []models.Client
	if err := c.db.Where("user_id = ?", user.ID).Order("id").Find(&clients).Error; err != nil {
		return nil, storage(err)
	}

	var orders []models.Order
	if err := c.db.Where("user_id = ?", user.ID).Order("id").Preload("Client").Preload("Job").Find(&orders).Error; err != nil {
		return nil, storage(err)
	}

	detail := &UserDetail{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Clients:  make([]ClientDetail, 0, len(clients)),
		Orders:   make([]OrderDetail, 0, len(orders)),
		Jobs:     JobsForUser(user.ID, orders),
	}

	for _, client := range clients {
		clientView, err := c.clientDetail(client)
		if err != nil {
			return nil, err
		}
		detail.Clients = append(detail.Clients, *clientView)
	}

	for _, order := range orders {
		detail.Orders = append(detail.Orders, orderDetail(order))
	}

	return detail, nil
}
