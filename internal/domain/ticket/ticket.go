package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "bugtrail/internal/domain/ticket/valueobjects"
)

// Ticket is an issue within a project. Its index is sequential per project,
// assigned once at creation and never reused after deletion.
type Ticket struct {
	id          uint
	projectID   uint
	creatorID   uint
	title       string
	description string
	priority    vo.Priority
	closed      bool
	index       uint
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTicket(
	projectID uint,
	creatorID uint,
	title string,
	description string,
	priority vo.Priority,
) (*Ticket, error) {
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}
	if len(strings.TrimSpace(title)) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	now := time.Now()
	return &Ticket{
		projectID:   projectID,
		creatorID:   creatorID,
		title:       title,
		description: description,
		priority:    priority,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	projectID uint,
	creatorID uint,
	title string,
	description string,
	priority vo.Priority,
	closed bool,
	index uint,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if index == 0 {
		return nil, fmt.Errorf("index is required")
	}

	return &Ticket{
		id:          id,
		projectID:   projectID,
		creatorID:   creatorID,
		title:       title,
		description: description,
		priority:    priority,
		closed:      closed,
		index:       index,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) ProjectID() uint {
	return t.projectID
}

func (t *Ticket) CreatorID() uint {
	return t.creatorID
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) IsClosed() bool {
	return t.closed
}

func (t *Ticket) Index() uint {
	return t.index
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) SetIndex(index uint) error {
	if t.index != 0 {
		return fmt.Errorf("ticket index is already set")
	}
	if index == 0 {
		return fmt.Errorf("ticket index cannot be zero")
	}
	t.index = index
	return nil
}

// ApplyPatch merges the patch into the ticket. A zero-valued field is treated
// as not supplied and ignored; in particular, closed=false never reopens a
// closed ticket through this path.
func (t *Ticket) ApplyPatch(title, description string, priority vo.Priority, closed bool) error {
	if priority != "" && !priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", priority)
	}

	if title != "" {
		t.title = title
	}
	if description != "" {
		t.description = description
	}
	if priority != "" {
		t.priority = priority
	}
	if closed {
		t.closed = true
	}
	t.updatedAt = time.Now()
	return nil
}
