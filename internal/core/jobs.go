package core

import (
	"errors"

	"github.com/gigtrack-dev/gigtrack/internal/models"
	"github.com/gigtrack-dev/gigtrack/internal/validation"
	"gorm.io/gorm"
)

// ListJobs returns the shared job catalog. Each job carries the distinct
// clients that ordered it, unscoped.
func (c *Core) ListJobs() ([]JobDetail, error) {
	var jobs []models.Job
	if err := c.db.Order("id").Find(&jobs).Error; err != nil {
		return nil, storage(err)
	}

	details := make([]JobDetail, 0, len(jobs))
	for _, job := range jobs {
		detail, err := c.jobDetail(job, nil)
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}

	return details, nil
}

// GetJob returns one job. A non-nil scopeUserID restricts the derived
// client list to that user's own clients.
func (c *Core) GetJob(jobID uint, scopeUserID *uint) (*JobDetail, error) {
	job, err := c.findJob(jobID)
	if err != nil {
		return nil, err
	}
	return c.jobDetail(*job, scopeUserID)
}

// CreateJob adds a job to the shared catalog. Any authenticated user may
// create one; jobs have no owner.
func (c *Core) CreateJob(actorID uint, in validation.JobInput) (*JobDetail, error) {
	if _, err := c.requireUser(actorID); err != nil {
		return nil, err
	}

	if errs := validation.Job(in, false); !errs.Empty() {
		return nil, invalid(errs)
	}

	job := models.Job{
		Title:       *in.Title,
		Category:    *in.Category,
		Description: *in.Description,
		Duration:    *in.Duration,
	}

	if err := c.db.Create(&job).Error; err != nil {
		return nil, storage(err)
	}

	return c.jobDetail(job, nil)
}

// UpdateJob applies a partial patch to a shared catalog job.
func (c *Core) UpdateJob(actorID, jobID uint, in validation.JobInput) (*JobDetail, error) {
	job, err := c.findJob(jobID)
	if err != nil {
		return nil, err
	}

	if _, err := c.requireUser(actorID); err != nil {
		return nil, err
	}

	if errs := validation.Job(in, true); !errs.Empty() {
		return nil, invalid(errs)
	}

	updates := map[string]interface{}{}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Category != nil {
		updates["category"] = *in.Category
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Duration != nil {
		updates["duration"] = *in.Duration
	}

	if len(updates) > 0 {
		if err := c.db.Model(job).Updates(updates).Error; err != nil {
			return nil, storage(err)
		}
		if err := c.db.First(job, job.ID).Error; err != nil {
			return nil, storage(err)
		}
	}

	return c.jobDetail(*job, nil)
}

// RemoveJobForUser removes a job from the acting user's view by deleting
// that user's orders referencing it, in one transaction. The shared job
// record itself is never deleted. Fails with NotFound when the user has no
// orders for the job, and with Conflict when any of them is in progress.
// Returns the job snapshot scoped to the user's clients, taken before the
// orders are deleted.
func (c *Core) RemoveJobForUser(actorID, jobID uint) (*JobDetail, error) {
	job, err := c.findJob(jobID)
	if err != nil {
		return nil, err
	}

	var orders []models.Order
	if err := c.db.Where("job_id = ? AND user_id = ?", jobID, actorID).Find(&orders).Error; err != nil {
		return nil, storage(err)
	}

	if len(orders) == 0 {
		return nil, notFound("No orders found for this job")
	}

	for _, order := range orders {
		if order.Status == "in progress" {
			return nil, conflict("Cannot remove job with active orders!")
		}
	}

	snapshot, err := c.jobDetail(*job, &actorID)
	if err != nil {
		return nil, err
	}

	err = c.db.Transaction(func(tx *gorm.DB) error {
		return tx.Where("job_id = ? AND user_id = ?", jobID, actorID).Delete(&models.Order{}).Error
	})
	if err != nil {
		return nil, storage(err)
	}

	return snapshot, nil
}

// JobWithOrders returns a job together with the acting user's orders for
// it, each annotated with the ordering client.
func (c *Core) JobWithOrders(actorID, jobID uint) (*JobDetail, []OrderDetail, error) {
	job, err := c.findJob(jobID)
	if err != nil {
		return nil, nil, err
	}

	detail, err := c.jobDetail(*job, &actorID)
	if err != nil {
		return nil, nil, err
	}

	var orders []models.Order
	if err := c.db.Where("job_id = ? AND user_id = ?", jobID, actorID).Order("id").Preload("Client").Find(&orders).Error; err != nil {
		return nil, nil, storage(err)
	}

	details := make([]OrderDetail, 0, len(orders))
	for _, order := range orders {
		view := orderDetail(order)
		client := clientSummary(order.Client)
		view.Client = &client
		details = append(details, view)
	}

	return detail, details, nil
}

func (c *Core) findJob(jobID uint) (*models.Job, error) {
	var job models.Job
	if err := c.db.First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Job not found")
		}
		return nil, storage(err)
	}
	return &job, nil
}

func (c *Core) jobDetail(job models.Job, scopeUserID *uint) (*JobDetail, error) {
	var orders []models.Order
	if err := c.db.Where("job_id = ?", job.ID).Order("id").Preload("Client").Find(&orders).Error; err != nil {
		return nil, storage(err)
	}

	return &JobDetail{
		JobSummary: jobSummary(job),
		Clients:    ClientsForJob(orders, scopeUserID),
	}, nil
}
