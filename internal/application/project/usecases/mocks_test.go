package usecases

import (
	"context"
	"testing"

	"bugtrail/internal/domain/project"
	"bugtrail/internal/domain/user"
	"bugtrail/internal/shared/logger"
)

type mockProjectRepo struct {
	saveFunc        func(ctx context.Context, p *project.Project) error
	updateFunc      func(ctx context.Context, p *project.Project) error
	deleteFunc      func(ctx context.Context, projectID uint) error
	findByIDFunc    func(ctx context.Context, projectID uint) (*project.Project, error)
	findByOwnerFunc func(ctx context.Context, ownerID uint) ([]*project.Project, error)
}

func (m *mockProjectRepo) Save(ctx context.Context, p *project.Project) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, p)
	}
	return p.SetID(1)
}

func (m *mockProjectRepo) Update(ctx context.Context, p *project.Project) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepo) Delete(ctx context.Context, projectID uint) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, projectID)
	}
	return nil
}

func (m *mockProjectRepo) FindByID(ctx context.Context, projectID uint) (*project.Project, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *mockProjectRepo) FindByOwner(ctx context.Context, ownerID uint) ([]*project.Project, error) {
	if m.findByOwnerFunc != nil {
		return m.findByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

type mockUserRepo struct {
	findByIDFunc func(ctx context.Context, id uint) (*user.User, error)
}

func (m *mockUserRepo) Save(ctx context.Context, u *user.User) error   { return nil }
func (m *mockUserRepo) Update(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByEmailOrPhone(ctx context.Context, identifier string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepo) ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error) {
	return false, nil
}

func (m *mockUserRepo) SearchByPrefix(ctx context.Context, prefix string) ([]*user.User, error) {
	return nil, nil
}

func testProject(t *testing.T, ownerID uint, name string) *project.Project {
	p, err := project.NewProject(ownerID, name, "", "")
	if err != nil {
		t.Fatalf("failed to build project: %v", err)
	}
	if err := p.SetID(1); err != nil {
		t.Fatalf("failed to set project id: %v", err)
	}
	return p
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
