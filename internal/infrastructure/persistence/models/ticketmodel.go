package models

import (
	"time"

	"bugtrail/internal/shared/constants"
)

type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	ProjectID   uint   `gorm:"not null;uniqueIndex:idx_project_ticket_index,priority:1"`
	CreatorID   uint   `gorm:"not null;index"`
	Title       string `gorm:"not null;size:200"`
	Description string `gorm:"type:text"`
	Priority    string `gorm:"not null;size:20;index"`
	Closed      bool   `gorm:"not null;default:false;index"`
	TicketIndex uint   `gorm:"column:ticket_index;not null;uniqueIndex:idx_project_ticket_index,priority:2"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

type CommentModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	ProjectID uint   `gorm:"not null;index"`
	CreatorID uint   `gorm:"not null;index"`
	Text      string `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index"`
}

func (CommentModel) TableName() string {
	return constants.TableComments
}

// TicketSequenceModel backs per-project ticket index allocation. The row is
// incremented inside the same transaction as the ticket insert so concurrent
// creates can never hand out the same index.
type TicketSequenceModel struct {
	ProjectID uint `gorm:"primaryKey;autoIncrement:false"`
	LastIndex uint `gorm:"not null"`
}

func (TicketSequenceModel) TableName() string {
	return constants.TableTicketSequences
}
