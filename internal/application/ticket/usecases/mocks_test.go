package usecases

import (
	"context"
	"testing"

	"bugtrail/internal/domain/project"
	"bugtrail/internal/domain/ticket"
	vo "bugtrail/internal/domain/ticket/valueobjects"
	"bugtrail/internal/shared/logger"
)

type mockTicketRepo struct {
	createFunc        func(ctx context.Context, t *ticket.Ticket) error
	updateFunc        func(ctx context.Context, t *ticket.Ticket) error
	deleteFunc        func(ctx context.Context, ticketID uint) error
	findByIDFunc      func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	findByProjectFunc func(ctx context.Context, projectID uint) ([]*ticket.Ticket, error)
}

func (m *mockTicketRepo) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, t)
	}
	if err := t.SetIndex(1); err != nil {
		return err
	}
	return t.SetID(1)
}

func (m *mockTicketRepo) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepo) Delete(ctx context.Context, ticketID uint) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepo) FindByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepo) FindByProject(ctx context.Context, projectID uint) ([]*ticket.Ticket, error) {
	if m.findByProjectFunc != nil {
		return m.findByProjectFunc(ctx, projectID)
	}
	return nil, nil
}

type mockCommentRepo struct {
	saveFunc           func(ctx context.Context, c *ticket.Comment) error
	deleteFunc         func(ctx context.Context, commentID uint) error
	findByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
}

func (m *mockCommentRepo) Save(ctx context.Context, c *ticket.Comment) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, c)
	}
	return c.SetID(1)
}

func (m *mockCommentRepo) Delete(ctx context.Context, commentID uint) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, commentID)
	}
	return nil
}

func (m *mockCommentRepo) FindByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.findByTicketIDFunc != nil {
		return m.findByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockProjectRepo struct {
	findByIDFunc func(ctx context.Context, projectID uint) (*project.Project, error)
}

func (m *mockProjectRepo) Save(ctx context.Context, p *project.Project) error   { return nil }
func (m *mockProjectRepo) Update(ctx context.Context, p *project.Project) error { return nil }
func (m *mockProjectRepo) Delete(ctx context.Context, projectID uint) error     { return nil }

func (m *mockProjectRepo) FindByID(ctx context.Context, projectID uint) (*project.Project, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *mockProjectRepo) FindByOwner(ctx context.Context, ownerID uint) ([]*project.Project, error) {
	return nil, nil
}

func existingProject(t *testing.T) *project.Project {
	p, err := project.NewProject(1, "Project", "", "")
	if err != nil {
		t.Fatalf("failed to build project: %v", err)
	}
	if err := p.SetID(1); err != nil {
		t.Fatalf("failed to set project id: %v", err)
	}
	return p
}

func existingTicket(t *testing.T, closed bool) *ticket.Ticket {
	tk, err := ticket.NewTicket(1, 2, "Existing Ticket", "original description", vo.PriorityMedium)
	if err != nil {
		t.Fatalf("failed to build ticket: %v", err)
	}
	if err := tk.SetID(1); err != nil {
		t.Fatalf("failed to set ticket id: %v", err)
	}
	if err := tk.SetIndex(1); err != nil {
		t.Fatalf("failed to set ticket index: %v", err)
	}
	if closed {
		if err := tk.ApplyPatch("", "", "", true); err != nil {
			t.Fatalf("failed to close ticket: %v", err)
		}
	}
	return tk
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
