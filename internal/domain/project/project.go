package project

import (
	"fmt"
	"strings"
	"time"
)

// Project is a unit of work owned by one user. Supervisors are users granted
// reporting visibility without ownership rights; their slice order is the
// insertion order and is significant for dashboard tie-breaking.
type Project struct {
	id          uint
	ownerID     uint
	name        string
	description string
	image       string
	supervisors []uint
	createdAt   time.Time
	updatedAt   time.Time
}

func NewProject(ownerID uint, name, description, image string) (*Project, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if len(strings.TrimSpace(name)) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	now := time.Now()
	return &Project{
		ownerID:     ownerID,
		name:        name,
		description: description,
		image:       image,
		supervisors: []uint{},
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructProject(
	id uint,
	ownerID uint,
	name string,
	description string,
	image string,
	supervisors []uint,
	createdAt, updatedAt time.Time,
) (*Project, error) {
	if id == 0 {
		return nil, fmt.Errorf("project ID cannot be zero")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	if supervisors == nil {
		supervisors = []uint{}
	}

	return &Project{
		id:          id,
		ownerID:     ownerID,
		name:        name,
		description: description,
		image:       image,
		supervisors: supervisors,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (p *Project) ID() uint {
	return p.id
}

func (p *Project) OwnerID() uint {
	return p.ownerID
}

func (p *Project) Name() string {
	return p.name
}

func (p *Project) Description() string {
	return p.description
}

func (p *Project) Image() string {
	return p.image
}

// Supervisors returns supervisor user ids in insertion order.
func (p *Project) Supervisors() []uint {
	out := make([]uint, len(p.supervisors))
	copy(out, p.supervisors)
	return out
}

func (p *Project) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Project) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Project) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("project ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("project ID cannot be zero")
	}
	p.id = id
	return nil
}

// IsOwnedBy reports whether the given user owns this project.
func (p *Project) IsOwnedBy(userID uint) bool {
	return p.ownerID == userID
}

// ApplyPatch merges non-empty fields into the project. The owner is immutable.
func (p *Project) ApplyPatch(name, description, image string) {
	if name != "" {
		p.name = name
	}
	if description != "" {
		p.description = description
	}
	if image != "" {
		p.image = image
	}
	p.updatedAt = time.Now()
}

// AddSupervisor appends a supervisor. Duplicate adds are an error, not a no-op.
func (p *Project) AddSupervisor(userID uint) error {
	if userID == 0 {
		return fmt.Errorf("supervisor ID cannot be zero")
	}
	if p.HasSupervisor(userID) {
		return fmt.Errorf("user is already a supervisor")
	}

	p.supervisors = append(p.supervisors, userID)
	p.updatedAt = time.Now()
	return nil
}

// RemoveSupervisor removes a supervisor. Removing a non-member is an error.
func (p *Project) RemoveSupervisor(userID uint) error {
	for i, id := range p.supervisors {
		if id == userID {
			p.supervisors = append(p.supervisors[:i], p.supervisors[i+1:]...)
			p.updatedAt = time.Now()
			return nil
		}
	}
	return fmt.Errorf("user is not a supervisor")
}

func (p *Project) HasSupervisor(userID uint) bool {
	for _, id := range p.supervisors {
		if id == userID {
			return true
		}
	}
	return false
}
