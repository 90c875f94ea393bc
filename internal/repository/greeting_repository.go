// Package repository provides data access interfaces and implementations.
package repository

import (
	"context"

	"github.com/sebasr/hello-service/internal/models"
)

// GreetingRepository defines the interface for greeting data access.
// Every list is ordered newest first.
type GreetingRepository interface {
	// Save inserts a new greeting or updates an existing one, keyed by ID
	Save(ctx context.Context, greeting *models.Greeting) (*models.Greeting, error)

	// FindByID retrieves a greeting by its ID
	FindByID(ctx context.Context, id int64) (*models.Greeting, error)

	// FindAll retrieves every greeting
	FindAll(ctx context.Context) ([]*models.Greeting, error)

	// FindAllPaged retrieves one page of greetings
	FindAllPaged(ctx context.Context, offset, limit int) ([]*models.Greeting, error)

	// FindByName retrieves greetings whose name matches exactly
	FindByName(ctx context.Context, name string) ([]*models.Greeting, error)

	// FindByNameContainingIgnoreCase retrieves greetings whose name contains substr, ignoring case
	FindByNameContainingIgnoreCase(ctx context.Context, substr string) ([]*models.Greeting, error)

	// FindByNamePrefix retrieves greetings whose name starts with prefix
	FindByNamePrefix(ctx context.Context, prefix string) ([]*models.Greeting, error)

	// Count returns the total number of greetings
	Count(ctx context.Context) (int64, error)

	// CountByName returns the number of greetings whose name matches exactly
	CountByName(ctx context.Context, name string) (int64, error)

	// ExistsByName reports whether any greeting has exactly this name
	ExistsByName(ctx context.Context, name string) (bool, error)

	// DeleteByID removes a greeting and reports whether a row was removed
	DeleteByID(ctx context.Context, id int64) (bool, error)

	// DeleteByName removes every greeting with exactly this name and returns how many were removed
	DeleteByName(ctx context.Context, name string) (int64, error)
}
