package core

import (
	"testing"
	"time"

	"github.com/gigtrack-dev/gigtrack/internal/models"
	"github.com/gigtrack-dev/gigtrack/internal/validation"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// plainHasher keeps tests fast and exercises the opaque hashing capability.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "digest:" + password, nil
}

func (plainHasher) Verify(password, digest string) bool {
	return digest == "digest:"+password
}

func newTestCore(t *testing.T) *Core {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Job{},
		&models.Order{},
	))

	return New(db, plainHasher{})
}

func str(s string) *string { return &s }

func ptr(u uint) *uint { return &u }

func date(s string) *time.Time {
	parsed, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return &parsed
}

func registerUser(t *testing.T, c *Core, username, email string) *UserDetail {
	t.Helper()

	user, err := c.Register(validation.UserInput{
		Username: str(username),
		Email:    str(email),
		Password: str("password123"),
	})
	require.NoError(t, err)
	return user
}

func createClient(t *testing.T, c *Core, userID uint, name, email string) *ClientDetail {
	t.Helper()

	client, err := c.CreateClient(userID, validation.ClientInput{
		Name:  str(name),
		Email: str(email),
		Phone: str("555-010-1001"),
		Notes: str("Long-standing client with recurring design and development work."),
	})
	require.NoError(t, err)
	return client
}

func createJob(t *testing.T, c *Core, userID uint, title string) *JobDetail {
	t.Helper()

	job, err := c.CreateJob(userID, validation.JobInput{
		Title:       str(title),
		Category:    str("Web Development"),
		Description: str("Build and ship the thing end to end."),
		Duration:    str("2-3 weeks"),
	})
	require.NoError(t, err)
	return job
}

func createOrder(t *testing.T, c *Core, userID, clientID, jobID uint, status string) *OrderDetail {
	t.Helper()

	order, err := c.CreateOrder(userID, validation.OrderInput{
		Description: str("Kickoff phase and first milestone"),
		Rate:        str("$80 per hour"),
		Location:    str("Remote, weekly sync calls"),
		StartDate:   date("2026-09-07"),
		DueDate:     date("2026-10-07"),
		Status:      str(status),
		ClientID:    ptr(clientID),
		JobID:       ptr(jobID),
	})
	require.NoError(t, err)
	return order
}

func requireKind(t *testing.T, err error, kind Kind) *Error {
	t.Helper()

	coreErr, ok := AsError(err)
	require.True(t, ok, "expected a core error, got %v", err)
	require.Equal(t, kind, coreErr.Kind)
	return coreErr
}
