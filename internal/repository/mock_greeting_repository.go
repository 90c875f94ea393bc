package repository

import (
	"context"

	"github.com/sebasr/hello-service/internal/models"
)

// MockGreetingRepository is a mock implementation of GreetingRepository for testing
type MockGreetingRepository struct {
	SaveFunc                           func(ctx context.Context, greeting *models.Greeting) (*models.Greeting, error)
	FindByIDFunc                       func(ctx context.Context, id int64) (*models.Greeting, error)
	FindAllFunc                        func(ctx context.Context) ([]*models.Greeting, error)
	FindAllPagedFunc                   func(ctx context.Context, offset, limit int) ([]*models.Greeting, error)
	FindByNameFunc                     func(ctx context.Context, name string) ([]*models.Greeting, error)
	FindByNameContainingIgnoreCaseFunc func(ctx context.Context, substr string) ([]*models.Greeting, error)
	FindByNamePrefixFunc               func(ctx context.Context, prefix string) ([]*models.Greeting, error)
	CountFunc                          func(ctx context.Context) (int64, error)
	CountByNameFunc                    func(ctx context.Context, name string) (int64, error)
	ExistsByNameFunc                   func(ctx context.Context, name string) (bool, error)
	DeleteByIDFunc                     func(ctx context.Context, id int64) (bool, error)
	DeleteByNameFunc                   func(ctx context.Context, name string) (int64, error)
}

// NewMockGreetingRepository creates a mock whose defaults behave like an empty table
func NewMockGreetingRepository() *MockGreetingRepository {
	return &MockGreetingRepository{
		SaveFunc: func(_ context.Context, greeting *models.Greeting) (*models.Greeting, error) {
			return greeting, nil
		},
		FindByIDFunc: func(_ context.Context, _ int64) (*models.Greeting, error) {
			return nil, ErrGreetingNotFound
		},
		FindAllFunc: func(_ context.Context) ([]*models.Greeting, error) {
			return []*models.Greeting{}, nil
		},
		FindAllPagedFunc: func(_ context.Context, _, _ int) ([]*models.Greeting, error) {
			return []*models.Greeting{}, nil
		},
		FindByNameFunc: func(_ context.Context, _ string) ([]*models.Greeting, error) {
			return []*models.Greeting{}, nil
		},
		FindByNameContainingIgnoreCaseFunc: func(_ context.Context, _ string) ([]*models.Greeting, error) {
			return []*models.Greeting{}, nil
		},
		FindByNamePrefixFunc: func(_ context.Context, _ string) ([]*models.Greeting, error) {
			return []*models.Greeting{}, nil
		},
		CountFunc: func(_ context.Context) (int64, error) {
			return 0, nil
		},
		CountByNameFunc: func(_ context.Context, _ string) (int64, error) {
			return 0, nil
		},
		ExistsByNameFunc: func(_ context.Context, _ string) (bool, error) {
			return false, nil
		},
		DeleteByIDFunc: func(_ context.Context, _ int64) (bool, error) {
			return false, nil
		},
		DeleteByNameFunc: func(_ context.Context, _ string) (int64, error) {
			return 0, nil
		},
	}
}

// Save implements GreetingRepository.Save
func (m *MockGreetingRepository) Save(ctx context.Context, greeting *models.Greeting) (*models.Greeting, error) {
	return m.SaveFunc(ctx, greeting)
}

// FindByID implements GreetingRepository.FindByID
func (m *MockGreetingRepository) FindByID(ctx context.Context, id int64) (*models.Greeting, error) {
	return m.FindByIDFunc(ctx, id)
}

// FindAll implements GreetingRepository.FindAll
func (m *MockGreetingRepository) FindAll(ctx context.Context) ([]*models.Greeting, error) {
	return m.FindAllFunc(ctx)
}

// FindAllPaged implements GreetingRepository.FindAllPaged
func (m *MockGreetingRepository) FindAllPaged(ctx context.Context, offset, limit int) ([]*models.Greeting, error) {
	return m.FindAllPagedFunc(ctx, offset, limit)
}

// FindByName implements GreetingRepository.FindByName
func (m *MockGreetingRepository) FindByName(ctx context.Context, name string) ([]*models.Greeting, error) {
	return m.FindByNameFunc(ctx, name)
}

// FindByNameContainingIgnoreCase implements GreetingRepository.FindByNameContainingIgnoreCase
func (m *MockGreetingRepository) FindByNameContainingIgnoreCase(ctx context.Context, substr string) ([]*models.Greeting, error) {
	return m.FindByNameContainingIgnoreCaseFunc(ctx, substr)
}

// FindByNamePrefix implements GreetingRepository.FindByNamePrefix
func (m *MockGreetingRepository) FindByNamePrefix(ctx context.Context, prefix string) ([]*models.Greeting, error) {
	return m.FindByNamePrefixFunc(ctx, prefix)
}

// Count implements GreetingRepository.Count
func (m *MockGreetingRepository) Count(ctx context.Context) (int64, error) {
	return m.CountFunc(ctx)
}

// CountByName implements GreetingRepository.CountByName
func (m *MockGreetingRepository) CountByName(ctx context.Context, name string) (int64, error) {
	return m.CountByNameFunc(ctx, name)
}

// ExistsByName implements GreetingRepository.ExistsByName
func (m *MockGreetingRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return m.ExistsByNameFunc(ctx, name)
}

// DeleteByID implements GreetingRepository.DeleteByID
func (m *MockGreetingRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	return m.DeleteByIDFunc(ctx, id)
}

// DeleteByName implements GreetingRepository.DeleteByName
func (m *MockGreetingRepository) DeleteByName(ctx context.Context, name string) (int64, error) {
	return m.DeleteByNameFunc(ctx, name)
}
