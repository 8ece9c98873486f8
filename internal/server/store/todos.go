package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/akarpov/gqltodo/internal/server/models"
)

// Todos is the task store. Records keep insertion order; deletion compacts
// the slice without reordering the rest. All methods return copies, so the
// backing records are only ever touched under the store lock.
type Todos struct {
	mu    sync.Mutex
	todos []*models.Todo
}

func NewTodos() *Todos {
	return &Todos{}
}

// Create allocates a fresh id and appends a todo owned by ownerID, with
// Completed=false and CreatedAt=now.
func (s *Todos) Create(title, description, ownerID string) *models.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()

	td := &models.Todo{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Completed:   false,
		CreatedAt:   time.Now(),
		UserID:      ownerID,
	}
	s.todos = append(s.todos, td)

	c := *td
	return &c
}

// FindAll returns all todos in insertion order.
func (s *Todos) FindAll() []*models.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Todo, 0, len(s.todos))
	for _, td := range s.todos {
		c := *td
		out = append(out, &c)
	}
	return out
}

// FindByOwner returns the todos owned by ownerID, in insertion order.
func (s *Todos) FindByOwner(ownerID string) []*models.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Todo, 0)
	for _, td := range s.todos {
		if td.UserID == ownerID {
			c := *td
			out = append(out, &c)
		}
	}
	return out
}

// FindByID returns a copy of the todo with the given id.
func (s *Todos) FindByID(id string) (*models.Todo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, td := range s.todos {
		if td.ID == id {
			c := *td
			return &c, true
		}
	}
	return nil, false
}

// UpdateByID applies the patch to the todo with the given id and returns the
// updated record. Only fields present in the patch are written; ID,
// CreatedAt, and UserID are never touched. Returns false when no record has
// that id.
func (s *Todos) UpdateByID(id string, patch models.TodoPatch) (*models.Todo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, td := range s.todos {
		if td.ID != id {
			continue
		}
		if patch.Title != nil {
			td.Title = *patch.Title
		}
		if patch.Description != nil {
			td.Description = *patch.Description
		}
		if patch.Completed != nil {
			td.Completed = *patch.Completed
		}
		c := *td
		return &c, true
	}
	return nil, false
}

// DeleteByID physically removes the todo with the given id, preserving the
// order of the remaining records. Reports whether a record was removed;
// deleting an unknown id is a no-op, not an error.
func (s *Todos) DeleteByID(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, td := range s.todos {
		if td.ID == id {
			s.todos = append(s.todos[:i], s.todos[i+1:]...)
			return true
		}
	}
	return false
}
