package usecases

import (
	"context"
	"fmt"

	"bugtrail/internal/domain/user"
	"bugtrail/internal/shared/logger"
)

type mockUserRepo struct {
	saveFunc                func(ctx context.Context, u *user.User) error
	updateFunc              func(ctx context.Context, u *user.User) error
	findByIDFunc            func(ctx context.Context, id uint) (*user.User, error)
	findByEmailOrPhoneFunc  func(ctx context.Context, identifier string) (*user.User, error)
	existsByEmailOrPhoneFn  func(ctx context.Context, email, phone string) (bool, error)
	searchByPrefixFunc      func(ctx context.Context, prefix string) ([]*user.User, error)
}

func (m *mockUserRepo) Save(ctx context.Context, u *user.User) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, u)
	}
	return u.SetID(1)
}

func (m *mockUserRepo) Update(ctx context.Context, u *user.User) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByEmailOrPhone(ctx context.Context, identifier string) (*user.User, error) {
	if m.findByEmailOrPhoneFunc != nil {
		return m.findByEmailOrPhoneFunc(ctx, identifier)
	}
	return nil, nil
}

func (m *mockUserRepo) ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error) {
	if m.existsByEmailOrPhoneFn != nil {
		return m.existsByEmailOrPhoneFn(ctx, email, phone)
	}
	return false, nil
}

func (m *mockUserRepo) SearchByPrefix(ctx context.Context, prefix string) ([]*user.User, error) {
	if m.searchByPrefixFunc != nil {
		return m.searchByPrefixFunc(ctx, prefix)
	}
	return nil, nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Verify(password, hash string) error {
	if "hashed:"+password != hash {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

type fakeTokenService struct {
	generateFunc func(userID uint) (string, error)
}

func (f *fakeTokenService) Generate(userID uint) (string, error) {
	if f.generateFunc != nil {
		return f.generateFunc(userID)
	}
	return fmt.Sprintf("token-%d", userID), nil
}

func testUser(name, email, phone, password string) *user.User {
	u, _ := user.NewUser(name, email, phone, false)
	_ = u.SetPassword(password, fakeHasher{})
	_ = u.SetID(1)
	return u
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
