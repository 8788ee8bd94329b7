package services

import (
	"sourdough-tracker/internal/domain"
	"sourdough-tracker/internal/errors"
)

// mockConfigRepository implements configfile.Repository in memory
type mockConfigRepository struct {
	configs map[string]domain.Config
	saveErr error
	loadErr error
	saves   int
}

// newMockConfigRepository creates an empty mock repository
func newMockConfigRepository() *mockConfigRepository {
	return &mockConfigRepository{
		configs: make(map[string]domain.Config),
	}
}

func (m *mockConfigRepository) Save(path string, cfg domain.Config) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.configs[path] = cfg
	return nil
}

func (m *mockConfigRepository) Load(path string) (domain.Config, error) {
	if m.loadErr != nil {
		return domain.Config{}, m.loadErr
	}
	cfg, ok := m.configs[path]
	if !ok {
		return domain.Config{}, errors.NewNotFoundError("config file", path).WithHint(errors.InitHint)
	}
	return cfg, nil
}
