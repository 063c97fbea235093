package core

import (
	"testing"

	"github.com/gigtrack-dev/gigtrack/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeOrder(jobID, clientID, userID uint, job models.Job, client models.Client) models.Order {
	job.ID = jobID
	client.ID = clientID
	client.UserID = userID
	return models.Order{
		JobID:    jobID,
		ClientID: clientID,
		UserID:   userID,
		Job:      job,
		Client:   client,
	}
}

func TestJobsForUserGroupsClientsUnderOneJob(t *testing.T) {
	job := models.Job{Title: "Website Development", Category: "Web", Description: "Build the site", Duration: "4 weeks"}
	c1 := models.Client{Name: "TechStart Inc.", Email: "contact@techstart.com"}
	c2 := models.Client{Name: "Design Studio Pro", Email: "hello@designstudiopro.com"}

	orders := []models.Order{
		makeOrder(1, 1, 7, job, c1),
		makeOrder(1, 2, 7, job, c2),
	}

	jobs := JobsForUser(7, orders)
	require.Len(t, jobs, 1)
	require.Len(t, jobs[0].Clients, 2)
	assert.Equal(t, "TechStart Inc.", jobs[0].Clients[0].Name)
	assert.Equal(t, "Design Studio Pro", jobs[0].Clients[1].Name)
}

func TestJobsForUserDeduplicatesClientsByID(t *testing.T) {
	job := models.Job{Title: "Website Development"}
	client := models.Client{Name: "TechStart Inc."}

	orders := []models.Order{
		makeOrder(1, 1, 7, job, client),
		makeOrder(1, 1, 7, job, client),
	}

	jobs := JobsForUser(7, orders)
	require.Len(t, jobs, 1)
	assert.Len(t, jobs[0].Clients, 1)
}

func TestJobsForUserSkipsForeignClients(t *testing.T) {
	job := models.Job{Title: "Website Development"}
	foreign := models.Client{Name: "Someone Else's Client"}

	orders := []models.Order{makeOrder(1, 1, 99, job, foreign)}

	jobs := JobsForUser(7, orders)
	require.Len(t, jobs, 1)
	assert.Empty(t, jobs[0].Clients)
}

func TestJobsForUserEmpty(t *testing.T) {
	jobs := JobsForUser(7, nil)
	assert.Empty(t, jobs)
	assert.NotNil(t, jobs)
}

func TestJobsForClientDeduplicatesByFullEquality(t *testing.T) {
	a := models.Job{Title: "Website Development", Category: "Web", Description: "Build the site", Duration: "4 weeks"}
	b := a
	b.Duration = "6 weeks" // differs in one field, so it is a distinct summary

	orders := []models.Order{
		makeOrder(1, 1, 7, a, models.Client{}),
		makeOrder(1, 1, 7, a, models.Client{}),
		makeOrder(1, 1, 7, b, models.Client{}),
	}

	jobs := JobsForClient(orders)
	require.Len(t, jobs, 2)
	assert.Equal(t, "4 weeks", jobs[0].Duration)
	assert.Equal(t, "6 weeks", jobs[1].Duration)
}

func TestClientsForJobScoped(t *testing.T) {
	mine := models.Client{Name: "TechStart Inc."}
	theirs := models.Client{Name: "Design Studio Pro"}

	orders := []models.Order{
		makeOrder(1, 1, 7, models.Job{}, mine),
		makeOrder(1, 2, 8, models.Job{}, theirs),
	}

	all := ClientsForJob(orders, nil)
	assert.Len(t, all, 2)

	scope := uint(7)
	scoped := ClientsForJob(orders, &scope)
	require.Len(t, scoped, 1)
	assert.Equal(t, "TechStart Inc.", scoped[0].Name)
}

func TestClientsForJobEmpty(t *testing.T) {
	clients := ClientsForJob(nil, nil)
	assert.Empty(t, clients)
	assert.NotNil(t, clients)
}
