package ticket

import (
	"fmt"
	"strings"
	"time"
)

// Comment is an immutable text note on a ticket. The project id is copied
// from the ticket at creation so reporting queries never need the join.
type Comment struct {
	id        uint
	ticketID  uint
	projectID uint
	creatorID uint
	text      string
	createdAt time.Time
}

func NewComment(ticketID, projectID, creatorID uint, text string) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}
	if len(strings.TrimSpace(text)) == 0 {
		return nil, fmt.Errorf("text is required")
	}

	return &Comment{
		ticketID:  ticketID,
		projectID: projectID,
		creatorID: creatorID,
		text:      text,
		createdAt: time.Now(),
	}, nil
}

func ReconstructComment(
	id uint,
	ticketID uint,
	projectID uint,
	creatorID uint,
	text string,
	createdAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Comment{
		id:        id,
		ticketID:  ticketID,
		projectID: projectID,
		creatorID: creatorID,
		text:      text,
		createdAt: createdAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) TicketID() uint {
	return c.ticketID
}

func (c *Comment) ProjectID() uint {
	return c.projectID
}

func (c *Comment) CreatorID() uint {
	return c.creatorID
}

func (c *Comment) Text() string {
	return c.text
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
