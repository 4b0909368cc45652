// Package identity resolves login identities. Students live in the database;
// teachers come from a fixed roster configured at boot. Both are reached
// through the same FindIdentity capability so the auth layer never
// special-cases role.
package identity

import (
	"errors"

	"disasterprep/config"
	"disasterprep/database"
	"disasterprep/models"

	"gorm.io/gorm"
)

// Role values accepted by the API.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
)

// Identity is a verifiable login identity.
type Identity struct {
	Role         string
	Name         string
	PasswordHash string
}

// ErrNotFound is returned when no identity matches the given role and name.
var ErrNotFound = errors.New("identity: not found")

// Store finds an identity by name within one role.
type Store interface {
	FindIdentity(name string) (*Identity, error)
}

var stores map[string]Store

// Init wires the per-role stores. Must run after config and database setup.
func Init() error {
	roster, err := NewTeacherRoster(config.AppConfig.TeacherAccounts)
	if err != nil {
		return err
	}

	stores = map[string]Store{
		RoleStudent: &studentStore{},
		RoleTeacher: roster,
	}
	return nil
}

// ValidRole reports whether role names a known identity class.
func ValidRole(role string) bool {
	return role == RoleStudent || role == RoleTeacher
}

// Find looks up an identity by role and name.
func Find(role, name string) (*Identity, error) {
	store, ok := stores[role]
	if !ok {
		return nil, ErrNotFound
	}
	return store.FindIdentity(name)
}

// studentStore resolves identities from durable student records.
type studentStore struct{}

func (s *studentStore) FindIdentity(name string) (*Identity, error) {
	var student models.Student
	err := database.Database.Db.Where("name = ? AND is_deleted = ?", name, false).First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &Identity{
		Role:         RoleStudent,
		Name:         student.Name,
		PasswordHash: student.PasswordHash,
	}, nil
}
