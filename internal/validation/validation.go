package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Errors maps a field name to the list of messages it failed with. All
// violations in one submission are collected before anything is persisted.
type Errors map[string][]string

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e Errors) Empty() bool {
	return len(e) == 0
}

var (
	clientNamePattern = regexp.MustCompile(`^[a-zA-Z0-9\s\-'.]+$`)
	emailPattern      = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern      = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)
	usernamePattern   = regexp.MustCompile(`^[a-zA-Z0-9\s]+$`)
)

// OrderStatuses are the accepted order states. Input is matched
// case-insensitively and stored lowercase.
var OrderStatuses = []string{"pending", "in progress", "completed", "canceled"}

const DefaultOrderStatus = "pending"

// NormalizeStatus lowercases a submitted status for validation and storage.
func NormalizeStatus(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func validStatus(s string) bool {
	for _, allowed := range OrderStatuses {
		if NormalizeStatus(s) == allowed {
			return true
		}
	}
	return false
}

// UserInput carries candidate User fields. Nil means the field was not
// supplied; partial validation skips unsupplied fields.
type UserInput struct {
	Username *string
	Email    *string
	Password *string
}

func User(in UserInput, partial bool) Errors {
	errs := Errors{}

	if in.Username == nil {
		if !partial {
			errs.Add("username", "Username is required")
		}
	} else {
		if len(*in.Username) < 2 {
			errs.Add("username", "Username must be at least 2 characters long")
		}
		if *in.Username != "" && !usernamePattern.MatchString(*in.Username) {
			errs.Add("username", "Username must contain only letters, numbers, and spaces")
		}
	}

	if in.Email == nil {
		if !partial {
			errs.Add("email", "Email is required")
		}
	} else {
		validateEmail(errs, *in.Email)
	}

	if in.Password == nil {
		if !partial {
			errs.Add("password", "Password is required")
		}
	} else if len(*in.Password) < 8 {
		errs.Add("password", "Password must be at least 8 characters long")
	}

	return errs
}

// ClientInput carries candidate Client fields. The owning user id is not
// part of the payload; it comes from the acting caller.
type ClientInput struct {
	Name    *string
	Email   *string
	Phone   *string
	Company *string
	Address *string
	Notes   *string
}

func Client(in ClientInput, partial bool) Errors {
	errs := Errors{}

	if in.Name == nil {
		if !partial {
			errs.Add("name", "Name is required")
		}
	} else {
		name := strings.TrimSpace(*in.Name)
		if len(name) < 2 {
			errs.Add("name", "Client name must be at least 2 characters long")
		} else if len(name) > 30 {
			errs.Add("name", "Client name must be 30 characters or less")
		} else if !clientNamePattern.MatchString(name) {
			errs.Add("name", "Client name can only contain letters, numbers, spaces, hyphens, apostrophes, and periods")
		}
	}

	if in.Email == nil {
		if !partial {
			errs.Add("email", "Email is required")
		}
	} else {
		validateEmail(errs, *in.Email)
	}

	if in.Phone == nil {
		if !partial {
			errs.Add("phone", "Phone number is required")
		}
	} else if !phonePattern.MatchString(*in.Phone) {
		errs.Add("phone", "Phone number must be in format: ###-###-####")
	}

	if in.Notes == nil {
		if !partial {
			errs.Add("notes", "Notes are required")
		}
	} else {
		notes := strings.TrimSpace(*in.Notes)
		if len(notes) < 20 {
			errs.Add("notes", "Client notes must be at least 20 characters long")
		} else if len(notes) > 1000 {
			errs.Add("notes", "Client notes must be 1000 characters or less")
		}
	}

	return errs
}

// JobInput carries candidate Job fields.
type JobInput struct {
	Title       *string
	Category    *string
	Description *string
	Duration    *string
}

func Job(in JobInput, partial bool) Errors {
	errs := Errors{}

	if in.Title == nil {
		if !partial {
			errs.Add("title", "Title is required")
		}
	} else if len(*in.Title) < 5 {
		errs.Add("title", "Job title must be at least 5 characters long")
	}

	if in.Category == nil {
		if !partial {
			errs.Add("category", "Category is required")
		}
	} else if strings.TrimSpace(*in.Category) == "" {
		errs.Add("category", "Category is required")
	}

	if in.Description == nil {
		if !partial {
			errs.Add("description", "Description is required")
		}
	} else if len(*in.Description) < 10 {
		errs.Add("description", "Job description must be at least 10 characters long")
	}

	if in.Duration == nil {
		if !partial {
			errs.Add("duration", "Duration is required")
		}
	} else if strings.TrimSpace(*in.Duration) == "" {
		errs.Add("duration", "Duration is required")
	}

	return errs
}

// OrderInput carries candidate Order fields. ClientID and JobID are
// validated for presence only; referential checks happen at write time.
// The foreign keys are immutable, so they are rejected in partial mode.
type OrderInput struct {
	Description *string
	Rate        *string
	Location    *string
	StartDate   *time.Time
	DueDate     *time.Time
	Status      *string
	ClientID    *uint
	JobID       *uint
}

func Order(in OrderInput, partial bool) Errors {
	errs := Errors{}

	if in.Description == nil {
		if !partial {
			errs.Add("description", "Description is required")
		}
	} else if len(strings.TrimSpace(*in.Description)) < 5 {
		errs.Add("description", "Order description must be at least 5 characters long")
	}

	if in.Rate == nil {
		if !partial {
			errs.Add("rate", "Rate is required")
		}
	} else if len(*in.Rate) < 10 {
		errs.Add("rate", "Job rate must be at least 10 characters long")
	}

	if in.Location == nil {
		if !partial {
			errs.Add("location", "Location is required")
		}
	} else if len(strings.TrimSpace(*in.Location)) < 10 {
		errs.Add("location", "Order location must be at least 10 characters long")
	}

	if in.StartDate == nil && !partial {
		errs.Add("start_date", "Start date is required")
	}

	if in.DueDate == nil && !partial {
		errs.Add("due_date", "Due date is required")
	}

	if in.Status != nil && !validStatus(*in.Status) {
		errs.Add("status", fmt.Sprintf("Status must be one of: %s", strings.Join(OrderStatuses, ", ")))
	}

	if partial {
		if in.ClientID != nil {
			errs.Add("client_id", "Client cannot be changed after creation")
		}
		if in.JobID != nil {
			errs.Add("job_id", "Job cannot be changed after creation")
		}
	} else {
		if in.ClientID == nil {
			errs.Add("client_id", "Client is required")
		}
		if in.JobID == nil {
			errs.Add("job_id", "Job is required")
		}
	}

	return errs
}

func validateEmail(errs Errors, email string) {
	if len(email) < 5 {
		errs.Add("email", "Email must be at least 5 characters long")
		return
	}
	if !emailPattern.MatchString(email) {
		errs.Add("email", "Invalid email format")
	}
}
