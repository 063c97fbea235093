package core

import (
	"testing"

	"github.com/gigtrack-dev/gigtrack/internal/models"
	"github.com/gigtrack-dev/gigtrack/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClient(t *testing.T) {
	c := newTestCore(t)

	alice := registerUser(t, c, "alice", "alice@example.com")

	client, err := c.CreateClient(alice.ID, validation.ClientInput{
		Name:    str("TechStart Inc."),
		Email:   str("contact@techstart.com"),
		Phone:   str("555-010-1001"),
		Company: str("TechStart Inc."),
		Address: str("123 Innovation Drive"),
		Notes:   str("Startup looking for web development services on a tight budget."),
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), client.ID)
	assert.Equal(t, alice.ID, client.UserID)
	assert.Empty(t, client.Jobs)
}

func TestCreateClientReportsAllFieldErrors(t *testing.T) {
	c := newTestCore(t)

	alice := registerUser(t, c, "alice", "alice@example.com")

	_, err := c.CreateClient(alice.ID, validation.ClientInput{
		Name:  str("X"),
		Email: str("contact@techstart.com"),
		Phone: str("5550101001"),
		Notes: str("Valid notes that are definitely over twenty characters long."),
	})
	coreErr := requireKind(t, err, KindValidation)
	require.Len(t, coreErr.Fields, 2)
	assert.Contains(t, coreErr.Fields, "name")
	assert.Contains(t, coreErr.Fields, "phone")
}

func TestCreateClientRequiresActor(t *testing.T) {
	c := newTestCore(t)

	_, err := c.CreateClient(99, validation.ClientInput{})
	requireKind(t, err, KindNotFound)
}

func TestUpdateClient(t *testing.T) {
	c := newTestCore(t)

	alice := registerUser(t, c, "alice", "alice@example.com")
	client := createClient(t, c, alice.ID, "TechStart Inc.", "contact@techstart.com")

	updated, err := c.UpdateClient(alice.ID, client.ID, validation.ClientInput{
		Name: str("TechStart Global"),
	})
	require.NoError(t, err)
	assert.Equal(t, "TechStart Global", updated.Name)
	// Untouched fields keep their values.
	assert.Equal(t, "contact@techstart.com", updated.Email)
}

func TestUpdateClientPartialValidation(t *testing.T) {
	c := newTestCore(t)

	alice := registerUser(t, c, "alice", "alice@example.com")
	client := createClient(t, c, alice.ID, "TechStart Inc.", "contact@techstart.com")

	// Only the supplied field is validated.
	_, err := c.UpdateClient(alice.ID, client.ID, validation.ClientInput{
		Phone: str("not-a-phone"),
	})
	coreErr := requireKind(t, err, KindValidation)
	require.Len(t, coreErr.Fields, 1)
	assert.Contains(t, coreErr.Fields, "phone")
}

func TestUpdateClientOwnership(t *testing.T) {
	c := newTestCore(t)

	alice := registerUser(t, c, "alice", "alice@example.com")
	bob := registerUser(t, c, "bob", "bob@example.com")
	client := createClient(t, c, alice.ID, "TechStart Inc.", "contact@techstart.com")

	_, err := c.UpdateClient(bob.ID, client.ID, validation.ClientInput{Name: str("Hijacked Name")})
	requireKind(t, err, KindForbidden)

	detail, _, err := c.ClientWithOrders(alice.ID, client.ID)
	require.NoError(t, err)
	assert.Equal(t, "TechStart Inc.", detail.Name)
}

func TestDeleteClient(t *testing.T) {
	c := newTestCore(t)

	alice := registerUser(t, c, "alice", "alice@example.com")
	client := createClient(t, c, alice.ID, "TechStart Inc.", "contact@techstart.com")

	snapshot, err := c.DeleteClient(alice.ID, client.ID)
	require.NoError(t, err)
	assert.Equal(t, "TechStart Inc.", snapshot.Name)

	var count int64
	require.NoError(t, c.db.Model(&models.Client{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestDeleteClientWithOrdersBlocked(t *testing.T) {
	c := newTestCore(t)

	alice := registerUser(t, c, "alice", "alice@example.com")
	client := createClient(t, c, alice.ID, "TechStart Inc.", "contact@techstart.com")
	job := createJob(t, c, alice.ID, "Website Development")
	order := createOrder(t, c, alice.ID, client.ID, job.ID, "pending")

	_, err := c.DeleteClient(alice.ID, client.ID)
	requireKind(t, err, KindConflict)

	// Client and its orders are unchanged.
	var clientRecord models.Client
	require.NoError(t, c.db.First(&clientRecord, client.ID).Error)
	var orderRecord models.Order
	require.NoError(t, c.db.First(&orderRecord, order.ID).Error)
}

func TestDeleteClientByNonOwner(t *testing.T) {
	c := newTestCore(t)

	alice := registerUser(t, c, "alice", "alice@example.com")
	bob := registerUser(t, c, "bob", "bob@example.com")
	client := createClient(t, c, alice.ID, "TechStart Inc.", "contact@techstart.com")

	_, err := c.DeleteClient(bob.ID, client.ID)
	requireKind(t, err, KindForbidden)

	var record models.Client
	require.NoError(t, c.db.First(&record, client.ID).Error)
}

func TestDeleteClientNotFoundBeforeOwnership(t *testing.T) {
	c := newTestCore(t)

	bob := registerUser(t, c, "bob", "bob@example.com")

	_, err := c.DeleteClient(bob.ID, 42)
	requireKind(t, err, KindNotFound)
}

func TestClientWithOrders(t *testing.T) {
	c := newTestCore(t)

	alice := registerUser(t, c, "alice", "alice@example.com")
	client := createClient(t, c, alice.ID, "TechStart Inc.", "contact@techstart.com")
	job := createJob(t, c, alice.ID, "Website Development")
	createOrder(t, c, alice.ID, client.ID, job.ID, "pending")

	detail, orders, err := c.ClientWithOrders(alice.ID, client.ID)
	require.NoError(t, err)
	require.Len(t, detail.Jobs, 1)
	assert.Equal(t, "Website Development", detail.Jobs[0].Title)
	require.Len(t, orders, 1)
	require.NotNil(t, orders[0].Job)
	assert.Equal(t, job.ID, orders[0].Job.ID)
}

func TestListClients(t *testing.T) {
	c := newTestCore(t)

	alice := registerUser(t, c, "alice", "alice@example.com")
	bob := registerUser(t, c, "bob", "bob@example.com")
	createClient(t, c, alice.ID, "TechStart Inc.", "contact@techstart.com")
	createClient(t, c, bob.ID, "Design Studio Pro", "hello@designstudiopro.com")

	clients, err := c.ListClients(alice.ID)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "TechStart Inc.", clients[0].Name)
}
