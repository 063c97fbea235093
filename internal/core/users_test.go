package core

import (
	"testing"

	"github.com/gigtrack-dev/gigtrack/internal/models"
	"github.com/gigtrack-dev/gigtrack/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	c := newTestCore(t)

	user, err := c.Register(validation.UserInput{
		Username: str("alice"),
		Email:    str("alice@example.com"),
		Password: str("password"),
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Empty(t, user.Clients)
	assert.Empty(t, user.Orders)
	assert.Empty(t, user.Jobs)
}

func TestRegisterNormalizesEmail(t *testing.T) {
	c := newTestCore(t)

	user := registerUser(t, c, "alice", "  Alice@Example.COM ")
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	c := newTestCore(t)

	registerUser(t, c, "alice", "alice@example.com")

	_, err := c.Register(validation.UserInput{
		Username: str("someone else"),
		Email:    str("alice@example.com"),
		Password: str("password123"),
	})
	requireKind(t, err, KindConflict)

	var count int64
	require.NoError(t, c.db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	existing, err := c.GetUser(1)
	require.NoError(t, err)
	assert.Equal(t, "alice", existing.Username)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	c := newTestCore(t)

	registerUser(t, c, "alice", "alice@example.com")

	_, err := c.Register(validation.UserInput{
		Username: str("alice"),
		Email:    str("other@example.com"),
		Password: str("password123"),
	})
	requireKind(t, err, KindConflict)
}

func TestRegisterValidation(t *testing.T) {
	c := newTestCore(t)

	_, err := c.Register(validation.UserInput{
		Username: str("a"),
		Email:    str("bad"),
		Password: str("short"),
	})
	coreErr := requireKind(t, err, KindValidation)
	assert.Len(t, coreErr.Fields, 3)
}

func TestAuthenticate(t *testing.T) {
	c := newTestCore(t)

	registerUser(t, c, "alice", "alice@example.com")

	user, err := c.Authenticate("alice", "password123")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = c.Authenticate("alice", "wrong password")
	requireKind(t, err, KindUnauthorized)

	_, err = c.Authenticate("nobody", "password123")
	requireKind(t, err, KindUnauthorized)
}

func TestGetUserNotFound(t *testing.T) {
	c := newTestCore(t)

	_, err := c.GetUser(42)
	requireKind(t, err, KindNotFound)
}

func TestUpdateUser(t *testing.T) {
	c := newTestCore(t)

	alice := registerUser(t, c, "alice", "alice@example.com")

	updated, err := c.UpdateUser(alice.ID, UserPatch{Username: str("alice smith")})
	require.NoError(t, err)
	assert.Equal(t, "alice smith", updated.Username)
	assert.Equal(t, "alice@example.com", updated.Email)
}

func TestUpdateUserUniqueness(t *testing.T) {
	c := newTestCore(t)

	registerUser(t, c, "alice", "alice@example.com")
	bob := registerUser(t, c, "bob", "bob@example.com")

	_, err := c.UpdateUser(bob.ID, UserPatch{Email: str("alice@example.com")})
	requireKind(t, err, KindConflict)

	_, err = c.UpdateUser(bob.ID, UserPatch{Username: str("alice")})
	requireKind(t, err, KindConflict)
}

func TestUpdateUserPassword(t *testing.T) {
	c := newTestCore(t)

	alice := registerUser(t, c, "alice", "alice@example.com")

	_, err := c.UpdateUser(alice.ID, UserPatch{NewPassword: str("newpassword1")})
	requireKind(t, err, KindForbidden)

	_, err = c.UpdateUser(alice.ID, UserPatch{
		CurrentPassword: str("password123"),
		NewPassword:     str("newpassword1"),
	})
	require.NoError(t, err)

	_, err = c.Authenticate("alice", "newpassword1")
	require.NoError(t, err)
}

func TestUpdateUserPartialValidation(t *testing.T) {
	c := newTestCore(t)

	alice := registerUser(t, c, "alice", "alice@example.com")

	_, err := c.UpdateUser(alice.ID, UserPatch{Username: str("!")})
	coreErr := requireKind(t, err, KindValidation)
	assert.Contains(t, coreErr.Fields, "username")
}

func TestDeleteUserCascades(t *testing.T) {
	c := newTestCore(t)

	alice := registerUser(t, c, "alice", "alice@example.com")
	bob := registerUser(t, c, "bob", "bob@example.com")

	aliceClient := createClient(t, c, alice.ID, "TechStart Inc.", "contact@techstart.com")
	bobClient := createClient(t, c, bob.ID, "Design Studio Pro", "hello@designstudiopro.com")
	job := createJob(t, c, alice.ID, "Website Development")

	createOrder(t, c, alice.ID, aliceClient.ID, job.ID, "pending")
	bobOrder := createOrder(t, c, bob.ID, bobClient.ID, job.ID, "pending")

	snapshot, err := c.DeleteUser(alice.ID, "password123")
	require.NoError(t, err)
	assert.Equal(t, "alice", snapshot.Username)
	require.Len(t, snapshot.Clients, 1)
	require.Len(t, snapshot.Orders, 1)

	_, err = c.GetUser(alice.ID)
	requireKind(t, err, KindNotFound)

	var clientCount, orderCount, jobCount int64
	require.NoError(t, c.db.Model(&models.Client{}).Count(&clientCount).Error)
	require.NoError(t, c.db.Model(&models.Order{}).Count(&orderCount).Error)
	require.NoError(t, c.db.Model(&models.Job{}).Count(&jobCount).Error)

	// Bob's client and order survive; the shared job survives.
	assert.Equal(t, int64(1), clientCount)
	assert.Equal(t, int64(1), orderCount)
	assert.Equal(t, int64(1), jobCount)

	var remaining models.Order
	require.NoError(t, c.db.First(&remaining, bobOrder.ID).Error)
	assert.Equal(t, bob.ID, remaining.UserID)
}

func TestDeleteUserWrongPassword(t *testing.T) {
	c := newTestCore(t)

	alice := registerUser(t, c, "alice", "alice@example.com")

	_, err := c.DeleteUser(alice.ID, "wrong")
	requireKind(t, err, KindForbidden)

	_, err = c.GetUser(alice.ID)
	require.NoError(t, err)
}
