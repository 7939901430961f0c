package ticket

import (
	"time"

	"bugtrail/internal/application/ticket/usecases"
	"bugtrail/internal/domain/ticket"
)

type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"omitempty,max=5000"`
	Priority    string `json:"priority" binding:"required"`
}

func (r *CreateTicketRequest) ToCommand(projectID, creatorID uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		ProjectID:   projectID,
		CreatorID:   creatorID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
	}
}

// UpdateTicketRequest carries merge-style fields: anything left at its zero
// value is ignored, including Closed=false.
type UpdateTicketRequest struct {
	Title       string `json:"title" binding:"omitempty,max=200"`
	Description string `json:"description" binding:"omitempty,max=5000"`
	Priority    string `json:"priority" binding:"omitempty"`
	Closed      bool   `json:"closed"`
}

type PushCommentRequest struct {
	Text string `json:"text" binding:"required,max=10000"`
}

type TicketResponse struct {
	ID          uint      `json:"id"`
	ProjectID   uint      `json:"projectId"`
	CreatorID   uint      `json:"creatorId"`
	Index       uint      `json:"index"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Priority    string    `json:"priority"`
	Closed      bool      `json:"closed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewTicketResponse(t *ticket.Ticket) TicketResponse {
	return TicketResponse{
		ID:          t.ID(),
		ProjectID:   t.ProjectID(),
		CreatorID:   t.CreatorID(),
		Index:       t.Index(),
		Title:       t.Title(),
		Description: t.Description(),
		Priority:    t.Priority().String(),
		Closed:      t.IsClosed(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func NewTicketListResponse(tickets []*ticket.Ticket) []TicketResponse {
	responses := make([]TicketResponse, len(tickets))
	for i, t := range tickets {
		responses[i] = NewTicketResponse(t)
	}
	return responses
}

type CommentResponse struct {
	ID        uint      `json:"id"`
	TicketID  uint      `json:"ticketId"`
	ProjectID uint      `json:"projectId"`
	CreatorID uint      `json:"creatorId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewCommentResponse(c *ticket.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		ProjectID: c.ProjectID(),
		CreatorID: c.CreatorID(),
		Text:      c.Text(),
		CreatedAt: c.CreatedAt(),
	}
}

type TicketWithCommentsResponse struct {
	Ticket   TicketResponse    `json:"ticket"`
	Comments []CommentResponse `json:"comments"`
}

func NewTicketWithCommentsResponse(result *usecases.GetTicketResult) TicketWithCommentsResponse {
	comments := make([]CommentResponse, len(result.Comments))
	for i, c := range result.Comments {
		comments[i] = NewCommentResponse(c)
	}
	return TicketWithCommentsResponse{
		Ticket:   NewTicketResponse(result.Ticket),
		Comments: comments,
	}
}
