package core

import (
	"errors"
	"strings"

	"github.com/gigtrack-dev/gigtrack/internal/models"
	"github.com/gigtrack-dev/gigtrack/internal/validation"
	"gorm.io/gorm"
)

// CreateOrder places an order on behalf of the acting user. Both foreign
// keys are resolved at write time: a missing client or job fails with
// MissingReference, and a client owned by another user fails with
// Forbidden. Status defaults to pending and is stored lowercase.
func (c *Core) CreateOrder(actorID uint, in validation.OrderInput) (*OrderDetail, error) {
	if _, err := c.requireUser(actorID); err != nil {
		return nil, err
	}

	if errs := validation.Order(in, false); !errs.Empty() {
		return nil, invalid(errs)
	}

	var client models.Client
	if err := c.db.First(&client, *in.ClientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, missingReference("Client not found")
		}
		return nil, storage(err)
	}
	if client.UserID != actorID {
		return nil, forbidden("Client does not belong to the acting user")
	}

	var job models.Job
	if err := c.db.First(&job, *in.JobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, missingReference("Job not found")
		}
		return nil, storage(err)
	}

	status := validation.DefaultOrderStatus
	if in.Status != nil {
		status = validation.NormalizeStatus(*in.Status)
	}

	order := models.Order{
		Description: strings.TrimSpace(*in.Description),
		Rate:        *in.Rate,
		Location:    strings.TrimSpace(*in.Location),
		StartDate:   *in.StartDate,
		DueDate:     *in.DueDate,
		Status:      status,
		UserID:      actorID,
		ClientID:    client.ID,
		JobID:       job.ID,
	}

	if err := c.db.Create(&order).Error; err != nil {
		return nil, storage(err)
	}

	detail := orderDetail(order)
	clientView := clientSummary(client)
	jobView := jobSummary(job)
	detail.Client = &clientView
	detail.Job = &jobView
	return &detail, nil
}

// UpdateOrder applies a partial patch to an order owned by the acting
// user. The user, client, and job references are immutable; partial
// validation rejects any attempt to change them.
func (c *Core) UpdateOrder(actorID, orderID uint, in validation.OrderInput) (*OrderDetail, error) {
	order, err := c.findOrder(orderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != actorID {
		return nil, forbidden("Unauthorized access to order")
	}

	if errs := validation.Order(in, true); !errs.Empty() {
		return nil, invalid(errs)
	}

	updates := map[string]interface{}{}
	if in.Description != nil {
		updates["description"] = strings.TrimSpace(*in.Description)
	}
	if in.Rate != nil {
		updates["rate"] = *in.Rate
	}
	if in.Location != nil {
		updates["location"] = strings.TrimSpace(*in.Location)
	}
	if in.StartDate != nil {
		updates["start_date"] = *in.StartDate
	}
	if in.DueDate != nil {
		updates["due_date"] = *in.DueDate
	}
	if in.Status != nil {
		updates["status"] = validation.NormalizeStatus(*in.Status)
	}

	if len(updates) > 0 {
		if err := c.db.Model(order).Updates(updates).Error; err != nil {
			return nil, storage(err)
		}
		if err := c.db.First(order, order.ID).Error; err != nil {
			return nil, storage(err)
		}
	}

	detail := orderDetail(*order)
	return &detail, nil
}

// DeleteOrder removes an order owned by the acting user and returns its
// pre-delete snapshot.
func (c *Core) DeleteOrder(actorID, orderID uint) (*OrderDetail, error) {
	order, err := c.findOrder(orderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != actorID {
		return nil, forbidden("Unauthorized access to order")
	}

	snapshot := orderDetail(*order)

	if err := c.db.Delete(order).Error; err != nil {
		return nil, storage(err)
	}

	return &snapshot, nil
}

func (c *Core) findOrder(orderID uint) (*models.Order, error) {
	var order models.Order
	if err := c.db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Order not found")
		}
		return nil, storage(err)
	}
	return &order, nil
}
