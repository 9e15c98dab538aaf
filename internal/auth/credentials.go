package auth

import (
	"errors"
	"strings"
	"sync"

	"github.com/ims-io/ims/internal/models"
)

// ErrInvalidCredentials is returned for an unknown email or a wrong
// password; callers must not distinguish the two.
var ErrInvalidCredentials = errors.New("invalid email or password")

// CredentialTable is the demo's mocked user database: two fixed accounts,
// bcrypt-hashed at construction. No registration, no password changes.
type CredentialTable struct {
	mu    sync.RWMutex
	users []models.User
}

type demoUser struct {
	id, email, password, name, role string
}

var demoUsers = []demoUser{
	{id: "1", email: "admin@test.com", password: "Admin123!", name: "Admin User", role: "admin"},
	{id: "2", email: "user@test.com", password: "User123!", name: "Regular User", role: "user"},
}

func NewCredentialTable() (*CredentialTable, error) {
	t := &CredentialTable{}
	for _, d := range demoUsers {
		u := models.User{ID: d.id, Email: d.email, Name: d.name, Role: d.role}
		if err := u.SetPassword(d.password); err != nil {
			return nil, err
		}
		t.users = append(t.users, u)
	}
	return t, nil
}

// Authenticate looks the email up and verifies the password.
func (t *CredentialTable) Authenticate(email, password string) (*models.User, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for i := range t.users {
		u := &t.users[i]
		if strings.EqualFold(u.Email, email) && u.CheckPassword(password) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, ErrInvalidCredentials
}

func (t *CredentialTable) GetByID(id string) (*models.User, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for i := range t.users {
		if t.users[i].ID == id {
			clone := t.users[i]
			return &clone, nil
		}
	}
	return nil, ErrInvalidCredentials
}
