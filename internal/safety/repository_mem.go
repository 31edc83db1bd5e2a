package safety

import (
	"context"
	"sync"
)

type memRepo struct {
	mu      sync.Mutex
	banned  map[string]struct{}
	reports map[string]int64
}

func NewMemoryRepo() Repo {
	return &memRepo{
		banned:  make(map[string]struct{}),
		reports: make(map[string]int64),
	}
}

func (m *memRepo) IsBanned(ctx context.Context, origin string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.banned[origin]
	return ok, nil
}

func (m *memRepo) Ban(ctx context.Context, origin string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.banned[origin] = struct{}{}
	return nil
}

func (m *memRepo) Report(ctx context.Context, origin string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports[origin]++
	return m.reports[origin], nil
}

func (m *memRepo) Reports(ctx context.Context, origin string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reports[origin], nil
}
