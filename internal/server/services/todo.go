package services

import (
	"context"

	"github.com/akarpov/gqltodo/internal/common"
	"github.com/akarpov/gqltodo/internal/server/models"
	"github.com/akarpov/gqltodo/internal/server/store"
)

// TodoService exposes the task operations. Ownership is strict equality
// between a todo's immutable UserID and the caller's principal id; there is
// no admin override and no shared ownership.
type TodoService struct {
	todos *store.Todos
	users *store.Users
}

func NewTodoService(todos *store.Todos, users *store.Users) *TodoService {
	return &TodoService{todos: todos, users: users}
}

// List returns the caller's own todos in creation order.
func (s *TodoService) List(ctx context.Context, principal *models.Principal) ([]*models.Todo, error) {
	if principal == nil {
		return nil, common.ErrNotAuthenticated
	}
	return s.todos.FindByOwner(principal.ID), nil
}

// ListAll returns every user's todos in creation order. Any authenticated
// caller may list them; single-record access stays owner-only.
func (s *TodoService) ListAll(ctx context.Context, principal *models.Principal) ([]*models.Todo, error) {
	if principal == nil {
		return nil, common.ErrNotAuthenticated
	}
	return s.todos.FindAll(), nil
}

// Get returns one todo, owner-only.
func (s *TodoService) Get(ctx context.Context, principal *models.Principal, id string) (*models.Todo, error) {
	if principal == nil {
		return nil, common.ErrNotAuthenticated
	}
	todo, ok := s.todos.FindByID(id)
	if !ok {
		return nil, common.ErrNotFound
	}
	if todo.UserID != principal.ID {
		return nil, common.ErrNotAuthorized
	}
	return todo, nil
}

// Create adds a todo owned by the caller.
func (s *TodoService) Create(ctx context.Context, principal *models.Principal, title, description string) (*models.Todo, error) {
	if principal == nil {
		return nil, common.ErrNotAuthenticated
	}
	return s.todos.Create(title, description, principal.ID), nil
}

// Update applies a partial patch to the caller's own todo. The ownership
// check runs before any field is written, so a non-owner attempt leaves the
// record untouched. Owners never change, so the only thing that can
// invalidate the check before the store applies the patch is a concurrent
// delete, which surfaces as ErrNotFound.
func (s *TodoService) Update(ctx context.Context, principal *models.Principal, id string, patch models.TodoPatch) (*models.Todo, error) {
	if principal == nil {
		return nil, common.ErrNotAuthenticated
	}
	todo, ok := s.todos.FindByID(id)
	if !ok {
		return nil, common.ErrNotFound
	}
	if todo.UserID != principal.ID {
		return nil, common.ErrNotAuthorized
	}

	updated, ok := s.todos.UpdateByID(id, patch)
	if !ok {
		return nil, common.ErrNotFound
	}
	return updated, nil
}

// Delete removes the caller's own todo.
func (s *TodoService) Delete(ctx context.Context, principal *models.Principal, id string) error {
	if principal == nil {
		return common.ErrNotAuthenticated
	}
	todo, ok := s.todos.FindByID(id)
	if !ok {
		return common.ErrNotFound
	}
	if todo.UserID != principal.ID {
		return common.ErrNotAuthorized
	}

	if !s.todos.DeleteByID(id) {
		return common.ErrNotFound
	}
	return nil
}

// Owner resolves a todo's owning user to its public projection. This is a
// derived, read-only join for output; it never mutates anything.
func (s *TodoService) Owner(ctx context.Context, todo *models.Todo) (*models.Principal, error) {
	user, ok := s.users.FindByID(todo.UserID)
	if !ok {
		return nil, common.ErrNotFound
	}
	return user.Public(), nil
}
