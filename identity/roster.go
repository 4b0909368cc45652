package identity

import (
	"fmt"
	"strings"

	"disasterprep/utils"
)

// TeacherRoster is the fixed in-memory identity store for teachers.
// Passwords from the accounts list are bcrypt-hashed at load so verification
// goes through the same code path as student credentials.
type TeacherRoster struct {
	hashes map[string]string
}

// NewTeacherRoster parses a comma separated "name:password" list.
func NewTeacherRoster(accounts string) (*TeacherRoster, error) {
	roster := &TeacherRoster{hashes: make(map[string]string)}

	for _, account := range strings.Split(accounts, ",") {
		account = strings.TrimSpace(account)
		if account == "" {
			continue
		}

		name, password, ok := strings.Cut(account, ":")
		if !ok || name == "" || password == "" {
			return nil, fmt.Errorf("identity: malformed teacher account %q", account)
		}

		hash, err := utils.HashPassword(password)
		if err != nil {
			return nil, fmt.Errorf("identity: hashing teacher password: %w", err)
		}
		roster.hashes[name] = hash
	}

	return roster, nil
}

func (r *TeacherRoster) FindIdentity(name string) (*Identity, error) {
	hash, ok := r.hashes[name]
	if !ok {
		return nil, ErrNotFound
	}

	return &Identity{
		Role:         RoleTeacher,
		Name:         name,
		PasswordHash: hash,
	}, nil
}
