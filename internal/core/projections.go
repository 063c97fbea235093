package core

import (
	"strconv"
	"time"

	"github.com/gigtrack-dev/gigtrack/internal/models"
)

// Date renders as YYYY-MM-DD in JSON.
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.Format(time.DateOnly))), nil
}

type ClientSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type JobSummary struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
}

// JobWithClients annotates a job with the subset of one user's clients
// that ordered it.
type JobWithClients struct {
	JobSummary
	Clients []ClientSummary `json:"clients"`
}

type ClientDetail struct {
	ID      uint         `json:"id"`
	Name    string       `json:"name"`
	Email   string       `json:"email"`
	Phone   string       `json:"phone"`
	Company string       `json:"company"`
	Address string       `json:"address"`
	Notes   string       `json:"notes"`
	UserID  uint         `json:"user_id"`
	Jobs    []JobSummary `json:"jobs"`
}

type JobDetail struct {
	JobSummary
	Clients []ClientSummary `json:"clients"`
}

type OrderDetail struct {
	ID          uint           `json:"id"`
	Description string         `json:"description"`
	Rate        string         `json:"rate"`
	Location    string         `json:"location"`
	StartDate   Date           `json:"start_date"`
	DueDate     Date           `json:"due_date"`
	Status      string         `json:"status"`
	UserID      uint           `json:"user_id"`
	ClientID    uint           `json:"client_id"`
	JobID       uint           `json:"job_id"`
	Client      *ClientSummary `json:"client,omitempty"`
	Job         *JobSummary    `json:"job,omitempty"`
}

type UserDetail struct {
	ID       uint             `json:"id"`
	Username string           `json:"username"`
	Email    string           `json:"email"`
	Clients  []ClientDetail   `json:"clients"`
	Orders   []OrderDetail    `json:"orders"`
	Jobs     []JobWithClients `json:"jobs"`
}

func clientSummary(client models.Client) ClientSummary {
	return ClientSummary{ID: client.ID, Name: client.Name, Email: client.Email}
}

func jobSummary(job models.Job) JobSummary {
	return JobSummary{
		ID:          job.ID,
		Title:       job.Title,
		Category:    job.Category,
		Description: job.Description,
		Duration:    job.Duration,
	}
}

func orderDetail(order models.Order) OrderDetail {
	return OrderDetail{
		ID:          order.ID,
		Description: order.Description,
		Rate:        order.Rate,
		Location:    order.Location,
		StartDate:   Date{order.StartDate},
		DueDate:     Date{order.DueDate},
		Status:      order.Status,
		UserID:      order.UserID,
		ClientID:    order.ClientID,
		JobID:       order.JobID,
	}
}

// JobsForUser derives the jobs a user has ordered, each annotated with the
// de-duplicated set of that user's own clients that ordered it. orders must
// be the user's orders with Job and Client preloaded. Jobs appear in
// first-encounter order; clients de-duplicate by id.
func JobsForUser(userID uint, orders []models.Order) []JobWithClients {
	jobs := []JobWithClients{}
	index := map[uint]int{}
	seenClients := map[uint]map[uint]bool{}

	for _, order := range orders {
		pos, ok := index[order.JobID]
		if !ok {
			pos = len(jobs)
			index[order.JobID] = pos
			seenClients[order.JobID] = map[uint]bool{}
			jobs = append(jobs, JobWithClients{
				JobSummary: jobSummary(order.Job),
				Clients:    []ClientSummary{},
			})
		}
		if order.Client.UserID != userID {
			continue
		}
		if seenClients[order.JobID][order.ClientID] {
			continue
		}
		seenClients[order.JobID][order.ClientID] = true
		jobs[pos].Clients = append(jobs[pos].Clients, clientSummary(order.Client))
	}

	return jobs
}

// JobsForClient derives the distinct jobs reached through one client's
// orders, with Job preloaded. Two summaries merge only when every emitted
// field matches.
func JobsForClient(orders []models.Order) []JobSummary {
	jobs := []JobSummary{}
	for _, order := range orders {
		summary := jobSummary(order.Job)
		if containsJob(jobs, summary) {
			continue
		}
		jobs = append(jobs, summary)
	}
	return jobs
}

// ClientsForJob derives the distinct clients reached through one job's
// orders, with Client preloaded. A non-nil scopeUserID restricts the result
// to clients owned by that user. De-duplication is by full summary
// equality.
func ClientsForJob(orders []models.Order, scopeUserID *uint) []ClientSummary {
	clients := []ClientSummary{}
	for _, order := range orders {
		if scopeUserID != nil && order.Client.UserID != *scopeUserID {
			continue
		}
		summary := clientSummary(order.Client)
		if containsClient(clients, summary) {
			continue
		}
		clients = append(clients, summary)
	}
	return clients
}

func containsJob(jobs []JobSummary, candidate JobSummary) bool {
	for _, job := range jobs {
		if job == candidate {
			return true
		}
	}
	return false
}

func containsClient(clients []ClientSummary, candidate ClientSummary) bool {
	for _, client := range clients {
		if client == candidate {
			return true
		}
	}
	return false
}
