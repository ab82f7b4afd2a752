package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"clinic-backoffice/internal/stock"
	repo "clinic-backoffice/internal/stock/repository"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// memRepo is an in-memory repository.Repository.
type memRepo struct {
	mu       sync.Mutex
	items    map[string]stock.StockItem
	requests map[string]stock.RestockRequest
	staff    map[string]string

	staffCalls int
	// bumpOnGet simulates a concurrent writer between read and update.
	bumpOnGet bool
}

func newMemRepo() *memRepo {
	return &memRepo{
		items:    map[string]stock.StockItem{},
		requests: map[string]stock.RestockRequest{},
		staff:    map[string]string{},
	}
}

func (m *memRepo) CreateItem(_ context.Context, opt repo.CreateItemOptions) (stock.StockItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, it := range m.items {
		if stock.NameKey(it.Name) == stock.NameKey(opt.Item.Name) {
			return stock.StockItem{}, repo.ErrDuplicate
		}
	}
	item := opt.Item
	item.Version = 1
	m.items[item.ID] = item
	return item, nil
}

func (m *memRepo) GetOneItem(_ context.Context, opt repo.GetOneItemOptions) (stock.StockItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, it := range m.items {
		if opt.ID != "" && it.ID != opt.ID {
			continue
		}
		if opt.NameKey != "" && stock.NameKey(it.Name) != opt.NameKey {
			continue
		}
		if opt.ExcludeID != "" && it.ID == opt.ExcludeID {
			continue
		}
		if m.bumpOnGet {
			stored := it
			stored.Version++
			m.items[id] = stored
		}
		return it, nil
	}
	return stock.StockItem{}, nil
}

func (m *memRepo) ListItems(_ context.Context, opt repo.ListItemsOptions) ([]stock.StockItem, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []stock.StockItem
	search := strings.ToLower(opt.Search)
	for _, it := range m.items {
		if search != "" && !strings.Contains(strings.ToLower(it.Name), search) &&
			!strings.Contains(strings.ToLower(it.Manufacturer), search) {
			continue
		}
		if opt.Category != "" && it.Category != opt.Category {
			continue
		}
		all = append(all, it)
	}
	sort.Slice(all, func(i, j int) bool { return stock.NameKey(all[i].Name) < stock.NameKey(all[j].Name) })
	total := len(all)
	if opt.Offset >= total {
		return []stock.StockItem{}, total, nil
	}
	end := opt.Offset + opt.Limit
	if end > total {
		end = total
	}
	return all[opt.Offset:end], total, nil
}

func (m *memRepo) ListCategories(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	set := map[string]bool{}
	for _, it := range m.items {
		if it.Category != "" {
			set[it.Category] = true
		}
	}
	out := []string{}
	for c := range set {
		out = append(out, c)
	}
	sort.Strings(out)
	return out, nil
}

func (m *memRepo) UpdateItem(_ context.Context, opt repo.UpdateItemOptions) (stock.StockItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.items[opt.Item.ID]
	if !ok || stored.Version != opt.ExpectedVersion {
		return stock.StockItem{}, repo.ErrVersionConflict
	}
	item := opt.Item
	item.Version = opt.ExpectedVersion + 1
	m.items[item.ID] = item
	return item, nil
}

func (m *memRepo) enrich(r stock.RestockRequest) stock.RestockRequest {
	it := m.items[r.ItemID]
	r.ItemName = it.Name
	r.ItemQuantity = it.Quantity
	return r
}

func (m *memRepo) CreateRestockRequest(_ context.Context, opt repo.CreateRestockRequestOptions) (stock.RestockRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := opt.Request
	r.Version = 1
	m.requests[r.ID] = r
	return m.enrich(r), nil
}

func (m *memRepo) GetOneRestockRequest(_ context.Context, opt repo.GetOneRestockRequestOptions) (stock.RestockRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.requests[opt.ID]
	if !ok || r.ItemID != opt.ItemID {
		return stock.RestockRequest{}, nil
	}
	return m.enrich(r), nil
}

func (m *memRepo) ListRestockRequests(_ context.Context, opt repo.ListRestockRequestsOptions) ([]stock.RestockRequest, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []stock.RestockRequest
	for _, r := range m.requests {
		if opt.Status != "" && string(r.Status) != opt.Status {
			continue
		}
		all = append(all, m.enrich(r))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	total := len(all)
	if opt.Offset >= total {
		return []stock.RestockRequest{}, total, nil
	}
	end := opt.Offset + opt.Limit
	if end > total {
		end = total
	}
	return all[opt.Offset:end], total, nil
}

func (m *memRepo) UpdateRestockRequestStatus(_ context.Context, opt repo.UpdateRestockRequestStatusOptions) (stock.RestockRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.requests[opt.ID]
	if !ok || r.Version != opt.ExpectedVersion {
		return stock.RestockRequest{}, repo.ErrVersionConflict
	}
	r.Status = opt.Status
	r.Version++
	r.UpdatedAt = opt.UpdatedAt
	m.requests[r.ID] = r
	return m.enrich(r), nil
}

func (m *memRepo) GetStaffNames(_ context.Context, ids []string) (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.staffCalls++
	out := map[string]string{}
	for _, id := range ids {
		if name, ok := m.staff[id]; ok {
			out[id] = name
		}
	}
	return out, nil
}

var testNow = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

func newTestUseCase(r *memRepo) *implUseCase {
	uc := New(&mockLogger{}, r, Config{})
	uc.now = func() time.Time { return testNow }
	return uc
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
