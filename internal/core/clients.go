package core

import (
	"errors"
	"strings"

	"github.com/gigtrack-dev/gigtrack/internal/models"
	"github.com/gigtrack-dev/gigtrack/internal/validation"
	"gorm.io/gorm"
)

// ListClients returns the acting user's clients, each with its derived job
// view.
func (c *Core) ListClients(actorID uint) ([]ClientDetail, error) {
	if _, err := c.requireUser(actorID); err != nil {
		return nil, err
	}

	var clients []models.Client
	if err := c.db.Where("user_id = ?", actorID).Order("id").Find(&clients).Error; err != nil {
		return nil, storage(err)
	}

	details := make([]ClientDetail, 0, len(clients))
	for _, client := range clients {
		detail, err := c.clientDetail(client)
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}

	return details, nil
}

// CreateClient creates a client owned by the acting user.
func (c *Core) CreateClient(actorID uint, in validation.ClientInput) (*ClientDetail, error) {
	if _, err := c.requireUser(actorID); err != nil {
		return nil, err
	}

	if errs := validation.Client(in, false); !errs.Empty() {
		return nil, invalid(errs)
	}

	client := models.Client{
		Name:   strings.TrimSpace(*in.Name),
		Email:  *in.Email,
		Phone:  *in.Phone,
		Notes:  strings.TrimSpace(*in.Notes),
		UserID: actorID,
	}
	if in.Company != nil {
		client.Company = *in.Company
	}
	if in.Address != nil {
		client.Address = *in.Address
	}

	if err := c.db.Create(&client).Error; err != nil {
		return nil, storage(err)
	}

	return c.clientDetail(client)
}

// UpdateClient applies a partial patch to a client owned by the acting
// user. Only supplied fields are validated and written. The owning user is
// immutable.
func (c *Core) UpdateClient(actorID, clientID uint, in validation.ClientInput) (*ClientDetail, error) {
	client, err := c.findClient(clientID)
	if err != nil {
		return nil, err
	}

	if client.UserID != actorID {
		return nil, forbidden("Unauthorized access to client")
	}

	if errs := validation.Client(in, true); !errs.Empty() {
		return nil, invalid(errs)
	}

	updates := map[string]interface{}{}
	if in.Name != nil {
		updates["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		updates["email"] = *in.Email
	}
	if in.Phone != nil {
		updates["phone"] = *in.Phone
	}
	if in.Company != nil {
		updates["company"] = *in.Company
	}
	if in.Address != nil {
		updates["address"] = *in.Address
	}
	if in.Notes != nil {
		updates["notes"] = strings.TrimSpace(*in.Notes)
	}

	if len(updates) > 0 {
		if err := c.db.Model(client).Updates(updates).Error; err != nil {
			return nil, storage(err)
		}
		if err := c.db.First(client, client.ID).Error; err != nil {
			return nil, storage(err)
		}
	}

	return c.clientDetail(*client)
}

// DeleteClient removes a client owned by the acting user and returns its
// pre-delete snapshot. A client with any orders cannot be deleted.
func (c *Core) DeleteClient(actorID, clientID uint) (*ClientDetail, error) {
	client, err := c.findClient(clientID)
	if err != nil {
		return nil, err
	}

	if client.UserID != actorID {
		return nil, forbidden("Unauthorized access to client")
	}

	var orderCount int64
	if err := c.db.Model(&models.Order{}).Where("client_id = ?", clientID).Count(&orderCount).Error; err != nil {
		return nil, storage(err)
	}
	if orderCount > 0 {
		return nil, conflict("Cannot delete client with existing order!")
	}

	snapshot, err := c.clientDetail(*client)
	if err != nil {
		return nil, err
	}

	if err := c.db.Delete(client).Error; err != nil {
		return nil, storage(err)
	}

	return snapshot, nil
}

// ClientWithOrders returns a client owned by the acting user together with
// its orders, each annotated with the ordered job.
func (c *Core) ClientWithOrders(actorID, clientID uint) (*ClientDetail, []OrderDetail, error) {
	client, err := c.findClient(clientID)
	if err != nil {
		return nil, nil, err
	}

	if client.UserID != actorID {
		return nil, nil, forbidden("Unauthorized access to client")
	}

	detail, err := c.clientDetail(*client)
	if err != nil {
		return nil, nil, err
	}

	var orders []models.Order
	if err := c.db.Where("client_id = ?", clientID).Order("id").Preload("Job").Find(&orders).Error; err != nil {
		return nil, nil, storage(err)
	}

	details := make([]OrderDetail, 0, len(orders))
	for _, order := range orders {
		view := orderDetail(order)
		job := jobSummary(order.Job)
		view.Job = &job
		details = append(details, view)
	}

	return detail, details, nil
}

func (c *Core) findClient(clientID uint) (*models.Client, error) {
	var client models.Client
	if err := c.db.First(&client, clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Client not found")
		}
		return nil, storage(err)
	}
	return &client, nil
}

func (c *Core) clientDetail(client models.Client) (*ClientDetail, error) {
	var orders []models.Order
	if err := c.db.Where("client_id = ?", client.ID).Order("id").Preload("Job").Find(&orders).Error; err != nil {
		return nil, storage(err)
	}

	return &ClientDetail{
		ID:      client.ID,
		Name:    client.Name,
		Email:   client.Email,
		Phone:   client.Phone,
		Company: client.Company,
		Address: client.Address,
		Notes:   client.Notes,
		UserID:  client.UserID,
		Jobs:    JobsForClient(orders),
	}, nil
}
