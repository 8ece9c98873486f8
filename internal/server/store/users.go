// Package store implements the in-memory record stores. State lives for the
// process lifetime and is reset on restart. Each store guards its backing
// slice with a mutex so that check-then-act sequences (notably the email
// uniqueness check in Create) cannot interleave across requests.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/akarpov/gqltodo/internal/common"
	"github.com/akarpov/gqltodo/internal/server/models"
)

// Users is the identity store. Users are only ever created; there is no
// update or delete.
type Users struct {
	mu    sync.Mutex
	users []*models.User
}

func NewUsers() *Users {
	return &Users{}
}

// Create allocates a fresh id and appends the user. The duplicate-email
// check and the insert happen under one lock, so uniqueness holds even with
// concurrent signups. Returns common.ErrEmailTaken on collision.
func (s *Users) Create(name, email, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return nil, common.ErrEmailTaken
		}
	}

	u := &models.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Password:  password,
		CreatedAt: time.Now(),
	}
	s.users = append(s.users, u)

	c := *u
	return &c, nil
}

// FindByID returns a copy of the user with the given id.
func (s *Users) FindByID(id string) (*models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			c := *u
			return &c, true
		}
	}
	return nil, false
}

// FindByEmail returns a copy of the first user with the given email.
// The match is exact and case-sensitive ("John@x.com" and "john@x.com"
// are different accounts).
func (s *Users) FindByEmail(email string) (*models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			c := *u
			return &c, true
		}
	}
	return nil, false
}

// Count reports the number of stored users.
func (s *Users) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}
