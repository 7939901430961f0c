package user

import (
	"fmt"
	"strings"
	"time"
)

// PasswordHasher abstracts the one-way password digest scheme.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

const minPasswordLength = 6

type User struct {
	id           uint
	name         string
	email        string
	phone        string
	passwordHash string
	projectOwner bool
	profileImage string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(name, email, phone string, projectOwner bool) (*User, error) {
	if len(strings.TrimSpace(name)) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}
	if len(phone) == 0 {
		return nil, fmt.Errorf("phone is required")
	}

	now := time.Now()
	return &User{
		name:         name,
		email:        email,
		phone:        phone,
		projectOwner: projectOwner,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	name string,
	email string,
	phone string,
	passwordHash string,
	projectOwner bool,
	profileImage string,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}

	return &User{
		id:           id,
		name:         name,
		email:        email,
		phone:        phone,
		passwordHash: passwordHash,
		projectOwner: projectOwner,
		profileImage: profileImage,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) Phone() string {
	return u.phone
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) IsProjectOwner() bool {
	return u.projectOwner
}

func (u *User) ProfileImage() string {
	return u.profileImage
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// SetPassword hashes and stores the password digest.
func (u *User) SetPassword(password string, hasher PasswordHasher) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	u.passwordHash = hash
	u.updatedAt = time.Now()
	return nil
}

// VerifyPassword checks a plaintext password against the stored digest.
func (u *User) VerifyPassword(password string, hasher PasswordHasher) error {
	if u.passwordHash == "" {
		return fmt.Errorf("password not set")
	}
	return hasher.Verify(password, u.passwordHash)
}

// ChangePassword verifies the current password before storing the new digest.
func (u *User) ChangePassword(currentPassword, newPassword string, hasher PasswordHasher) error {
	if err := u.VerifyPassword(currentPassword, hasher); err != nil {
		return err
	}
	return u.SetPassword(newPassword, hasher)
}

// UpdateProfile applies a merge-style patch: empty fields stay unchanged.
func (u *User) UpdateProfile(name, email, phone, profileImage string) error {
	if email != "" && !strings.Contains(email, "@") {
		return fmt.Errorf("invalid email address")
	}

	if name != "" {
		u.name = name
	}
	if email != "" {
		u.email = email
	}
	if phone != "" {
		u.phone = phone
	}
	if profileImage != "" {
		u.profileImage = profileImage
	}
	u.updatedAt = time.Now()
	return nil
}
