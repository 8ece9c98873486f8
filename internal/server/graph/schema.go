// Package graph wires the access-controlled operations into a GraphQL
// schema. Resolvers only translate arguments and errors; every
// authorization decision lives in the services layer.
package graph

import (
	"time"

	"github.com/graphql-go/graphql"

	"github.com/akarpov/gqltodo/internal/logging"
	"github.com/akarpov/gqltodo/internal/server/models"
	"github.com/akarpov/gqltodo/internal/server/services"
)

type resolver struct {
	users  *services.UserService
	todos  *services.TodoService
	logger logging.Logger
}

// NewSchema builds the executable schema over the given services.
func NewSchema(users *services.UserService, todos *services.TodoService, logger logging.Logger) (graphql.Schema, error) {
	r := &resolver{users: users, todos: todos, logger: logger.With("module", "graphql")}

	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Principal).ID, nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Principal).Name, nil
				},
			},
			"email": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Principal).Email, nil
				},
			},
		},
	})

	authPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "AuthPayload",
		Fields: graphql.Fields{
			"token": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*services.AuthPayload).Token, nil
				},
			},
			"user": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*services.AuthPayload).User, nil
				},
			},
		},
	})

	todoType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Todo",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Todo).ID, nil
				},
			},
			"title": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Todo).Title, nil
				},
			},
			"description": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Todo).Description, nil
				},
			},
			"completed": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Todo).Completed, nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Todo).CreatedAt.UTC().Format(time.RFC3339), nil
				},
			},
			"user": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.todos.Owner(p.Context, p.Source.(*models.Todo))
				},
			},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"me": &graphql.Field{
				Type: userType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.users.Me(p.Context, PrincipalFromContext(p.Context))
				},
			},
			"getTodos": &graphql.Field{
				Type: graphql.NewList(todoType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.todos.List(p.Context, PrincipalFromContext(p.Context))
				},
			},
			"getAllTodos": &graphql.Field{
				Type: graphql.NewList(todoType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.todos.ListAll(p.Context, PrincipalFromContext(p.Context))
				},
			},
			"getTodo": &graphql.Field{
				Type: todoType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.todos.Get(p.Context, PrincipalFromContext(p.Context), p.Args["id"].(string))
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"signup": &graphql.Field{
				Type: graphql.NewNonNull(authPayloadType),
				Args: graphql.FieldConfigArgument{
					"name":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.signup,
			},
			"login": &graphql.Field{
				Type: graphql.NewNonNull(authPayloadType),
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.login,
			},
			"createTodo": &graphql.Field{
				Type: todoType,
				Args: graphql.FieldConfigArgument{
					"title":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"description": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.createTodo,
			},
			"updateTodo": &graphql.Field{
				Type: todoType,
				Args: graphql.FieldConfigArgument{
					"id":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"title":       &graphql.ArgumentConfig{Type: graphql.String},
					"description": &graphql.ArgumentConfig{Type: graphql.String},
					"completed":   &graphql.ArgumentConfig{Type: graphql.Boolean},
				},
				Resolve: r.updateTodo,
			},
			"deleteTodo": &graphql.Field{
				Type: graphql.String,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.deleteTodo,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

func (r *resolver) signup(p graphql.ResolveParams) (interface{}, error) {
	name := p.Args["name"].(string)
	email := p.Args["email"].(string)
	password := p.Args["password"].(string)

	payload, err := r.users.Signup(p.Context, name, email, password)
	if err != nil {
		return nil, err
	}

	r.logger.Info(p.Context, "user signed up", "email", email)
	return payload, nil
}

func (r *resolver) login(p graphql.ResolveParams) (interface{}, error) {
	email := p.Args["email"].(string)
	password := p.Args["password"].(string)

	payload, err := r.users.Login(p.Context, email, password)
	if err != nil {
		return nil, err
	}

	r.logger.Info(p.Context, "user logged in", "email", email)
	return payload, nil
}

func (r *resolver) createTodo(p graphql.ResolveParams) (interface{}, error) {
	title := p.Args["title"].(string)
	description, _ := optionalString(p.Args, "description")

	return r.todos.Create(p.Context, PrincipalFromContext(p.Context), title, description)
}

func (r *resolver) updateTodo(p graphql.ResolveParams) (interface{}, error) {
	id := p.Args["id"].(string)

	var patch models.TodoPatch
	if v, ok := optionalStringArg(p.Args, "title"); ok {
		patch.Title = v
	}
	if v, ok := optionalStringArg(p.Args, "description"); ok {
		patch.Description = v
	}
	if v, ok := p.Args["completed"]; ok && v != nil {
		b := v.(bool)
		patch.Completed = &b
	}

	return r.todos.Update(p.Context, PrincipalFromContext(p.Context), id, patch)
}

func (r *resolver) deleteTodo(p graphql.ResolveParams) (interface{}, error) {
	id := p.Args["id"].(string)

	if err := r.todos.Delete(p.Context, PrincipalFromContext(p.Context), id); err != nil {
		return nil, err
	}
	return "Todo deleted successfully", nil
}

func optionalString(args map[string]interface{}, key string) (string, bool) {
	if v, ok := args[key]; ok && v != nil {
		return v.(string), true
	}
	return "", false
}

// optionalStringArg distinguishes an omitted argument (nil, false) from one
// that was supplied, including an explicit empty string.
func optionalStringArg(args map[string]interface{}, key string) (*string, bool) {
	if v, ok := args[key]; ok && v != nil {
		s := v.(string)
		return &s, true
	}
	return nil, false
}
