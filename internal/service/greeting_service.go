// Package service holds the greeting business logic that sits between the
// HTTP handlers and the greeting store.
package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sebasr/hello-service/internal/models"
	"github.com/sebasr/hello-service/internal/repository"
)

// AnonymousName replaces a missing or blank name
const AnonymousName = "Anonymous"

// GreetingStats summarizes the stored greetings
type GreetingStats struct {
	TotalGreetings int64 `json:"totalGreetings"`
}

// GreetingService builds, persists and queries greetings
type GreetingService struct {
	repo   repository.GreetingRepository
	logger *zap.Logger
}

// NewGreetingService creates a new greeting service
func NewGreetingService(repo repository.GreetingRepository, logger *zap.Logger) *GreetingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GreetingService{
		repo:   repo,
		logger: logger,
	}
}

// CreateGreeting stores a casual greeting for name and returns its message.
// A blank name is greeted as Anonymous.
func (s *GreetingService) CreateGreeting(ctx context.Context, name string) (string, error) {
	name = normalizeName(name)
	s.logger.Info("creating greeting", zap.String("name", name))

	return s.create(ctx, name, "Hello, "+name+"!", models.GreetingTypeCasual)
}

// CreateFormalGreeting stores a formal greeting for name and returns its message
func (s *GreetingService) CreateFormalGreeting(ctx context.Context, name string) (string, error) {
	name = normalizeName(name)
	s.logger.Info("creating formal greeting", zap.String("name", name))

	return s.create(ctx, name, "Good day, "+name+"!", models.GreetingTypeFormal)
}

func (s *GreetingService) create(ctx context.Context, name, message string, greetingType models.GreetingType) (string, error) {
	saved, err := s.repo.Save(ctx, models.NewGreeting(name, message, greetingType))
	if err != nil {
		return "", fmt.Errorf("failed to save greeting: %w", err)
	}

	s.logger.Debug("greeting saved",
		zap.Int64("id", saved.ID),
		zap.String("type", string(saved.GreetingType)),
	)
	return saved.Message, nil
}

// GetAllGreetings returns every greeting, newest first
func (s *GreetingService) GetAllGreetings(ctx context.Context) ([]*models.Greeting, error) {
	s.logger.Info("fetching all greetings")
	return s.repo.FindAll(ctx)
}

// GetOrderedGreetings returns every greeting, newest first
func (s *GreetingService) GetOrderedGreetings(ctx context.Context) ([]*models.Greeting, error) {
	s.logger.Info("fetching greetings ordered by creation date")
	return s.repo.FindAll(ctx)
}

// GetGreetingsPage returns one page of greetings, newest first
func (s *GreetingService) GetGreetingsPage(ctx context.Context, offset, limit int) ([]*models.Greeting, error) {
	s.logger.Info("fetching greetings page", zap.Int("offset", offset), zap.Int("limit", limit))
	return s.repo.FindAllPaged(ctx, offset, limit)
}

// GetGreetingsByName returns greetings whose name matches exactly
func (s *GreetingService) GetGreetingsByName(ctx context.Context, name string) ([]*models.Greeting, error) {
	s.logger.Info("fetching greetings by name", zap.String("name", name))
	return s.repo.FindByName(ctx, name)
}

// SearchGreetingsByName returns greetings whose name contains substr, ignoring case
func (s *GreetingService) SearchGreetingsByName(ctx context.Context, substr string) ([]*models.Greeting, error) {
	s.logger.Info("searching greetings by name", zap.String("query", substr))
	return s.repo.FindByNameContainingIgnoreCase(ctx, substr)
}

// GetGreetingsByNamePrefix returns greetings whose name starts with prefix
func (s *GreetingService) GetGreetingsByNamePrefix(ctx context.Context, prefix string) ([]*models.Greeting, error) {
	s.logger.Info("fetching greetings by name prefix", zap.String("prefix", prefix))
	return s.repo.FindByNamePrefix(ctx, prefix)
}

// GetGreetingStats returns the total number of stored greetings
func (s *GreetingService) GetGreetingStats(ctx context.Context) (GreetingStats, error) {
	s.logger.Info("calculating greeting statistics")

	total, err := s.repo.Count(ctx)
	if err != nil {
		return GreetingStats{}, err
	}
	return GreetingStats{TotalGreetings: total}, nil
}

// GetGreetingCountByName returns how many greetings exactly match name
func (s *GreetingService) GetGreetingCountByName(ctx context.Context, name string) (int64, error) {
	s.logger.Info("counting greetings by name", zap.String("name", name))
	return s.repo.CountByName(ctx, name)
}

// GreetingExistsForName reports whether name has been greeted
func (s *GreetingService) GreetingExistsForName(ctx context.Context, name string) (bool, error) {
	s.logger.Info("checking greeting existence", zap.String("name", name))
	return s.repo.ExistsByName(ctx, name)
}

// GetGreetingByID returns repository.ErrGreetingNotFound when id is unknown
func (s *GreetingService) GetGreetingByID(ctx context.Context, id int64) (*models.Greeting, error) {
	s.logger.Info("fetching greeting by id", zap.Int64("id", id))
	return s.repo.FindByID(ctx, id)
}

// DeleteGreeting removes a greeting and reports whether it existed
func (s *GreetingService) DeleteGreeting(ctx context.Context, id int64) (bool, error) {
	s.logger.Info("deleting greeting", zap.Int64("id", id))

	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return false, err
	}
	if !deleted {
		s.logger.Info("greeting not found for deletion", zap.Int64("id", id))
	}
	return deleted, nil
}

// DeleteGreetingsByName removes every greeting for name and returns how many were removed
func (s *GreetingService) DeleteGreetingsByName(ctx context.Context, name string) (int64, error) {
	s.logger.Info("deleting greetings by name", zap.String("name", name))
	return s.repo.DeleteByName(ctx, name)
}

func normalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return AnonymousName
	}
	return name
}
