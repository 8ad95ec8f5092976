package employee

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/timeclock-adjustment/internal/domain/directory"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/domain/employee"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/domain/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testManagerEmail = "alcina@ajusteponto.local"

type mockEmployeeRepo struct {
	mock.Mock
}

func (m *mockEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(employee.Employee), args.Error(1)
}

func (m *mockEmployeeRepo) ListByManager(ctx context.Context, managerEmail string) ([]employee.Employee, error) {
	args := m.Called(ctx, managerEmail)
	return args.Get(0).([]employee.Employee), args.Error(1)
}

func (m *mockEmployeeRepo) CountByManager(ctx context.Context, managerEmail string) (int64, error) {
	args := m.Called(ctx, managerEmail)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockEmployeeRepo) CreateMany(ctx context.Context, employees []employee.Employee) (int, error) {
	args := m.Called(ctx, employees)
	return args.Int(0), args.Error(1)
}

// memoryCache is an in-process EmployeeCache for tests.
type memoryCache struct {
	data        map[string][]employee.Employee
	invalidated []string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]employee.Employee)}
}

func (c *memoryCache) Get(_ context.Context, email string) ([]employee.Employee, bool) {
	v, ok := c.data[email]
	return v, ok
}

func (c *memoryCache) Set(_ context.Context, email string, employees []employee.Employee) {
	c.data[email] = employees
}

func (c *memoryCache) Invalidate(_ context.Context, email string) {
	delete(c.data, email)
	c.invalidated = append(c.invalidated, email)
}

type passthroughTx struct{}

func (passthroughTx) WithinTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

func managerCtx() context.Context {
	return session.NewContext(context.Background(), session.Session{
		ManagerID:    "m-1",
		ManagerName:  "Alcina",
		ManagerEmail: testManagerEmail,
	})
}

func testRoster(t *testing.T) *directory.Roster {
	t.Helper()
	_, roster, err := directory.ParseRosterRows([][]string{
		{"Manager", "Employee", "User ID"},
		{"Alcina", "Maria Silva", "1001"},
		{"Alcina", "José Souza"},
		{"Erick Café", "Ana Lima"},
	}, "")
	require.NoError(t, err)
	return roster
}

func TestEmployeeService_List_UsesCache(t *testing.T) {
	ctx := managerCtx()
	repo := &mockEmployeeRepo{}
	cache := newMemoryCache()
	svc := NewEmployeeService(passthroughTx{}, repo, nil, cache)

	repo.On("ListByManager", ctx, testManagerEmail).Return([]employee.Employee{
		{ID: "e1", Name: "Ana", CreatedAt: time.Now()},
		{ID: "e2", Name: "Bruno", CreatedAt: time.Now()},
	}, nil).Once()

	first, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, first.TotalCount)
	assert.Equal(t, "Ana", first.Employees[0].Name)

	second, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	repo.AssertNumberOfCalls(t, "ListByManager", 1)
}

func TestEmployeeService_List_NoCache(t *testing.T) {
	ctx := managerCtx()
	repo := &mockEmployeeRepo{}
	svc := NewEmployeeService(passthroughTx{}, repo, nil, nil)

	repo.On("ListByManager", ctx, testManagerEmail).Return([]employee.Employee{}, nil)

	resp, err := svc.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, resp.Employees)
	assert.Equal(t, 0, resp.TotalCount)
}

func TestEmployeeService_List_RequiresSession(t *testing.T) {
	svc := NewEmployeeService(passthroughTx{}, &mockEmployeeRepo{}, nil, nil)

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestEmployeeService_ImportRoster(t *testing.T) {
	ctx := managerCtx()
	repo := &mockEmployeeRepo{}
	cache := newMemoryCache()
	svc := NewEmployeeService(passthroughTx{}, repo, testRoster(t), cache)

	repo.On("CountByManager", ctx, testManagerEmail).Return(int64(0), nil)
	repo.On("CreateMany", ctx, mock.MatchedBy(func(es []employee.Employee) bool {
		return len(es) == 2 &&
			es[0].Name == "Maria Silva" && es[0].UserID != nil && *es[0].UserID == "1001" &&
			es[1].Name == "José Souza" && es[1].UserID == nil &&
			es[0].ManagerEmail == testManagerEmail && es[0].ID != es[1].ID
	})).Return(2, nil)

	resp, err := svc.ImportRoster(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Imported)
	assert.Equal(t, []string{testManagerEmail}, cache.invalidated)
	repo.AssertExpectations(t)
}

func TestEmployeeService_ImportRoster_AlreadyImported(t *testing.T) {
	ctx := managerCtx()
	repo := &mockEmployeeRepo{}
	svc := NewEmployeeService(passthroughTx{}, repo, testRoster(t), nil)

	repo.On("CountByManager", ctx, testManagerEmail).Return(int64(3), nil)

	_, err := svc.ImportRoster(ctx)
	assert.ErrorIs(t, err, employee.ErrAlreadyImported)
	repo.AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything)
}

func TestEmployeeService_ImportRoster_EmptyRoster(t *testing.T) {
	ctx := session.NewContext(context.Background(), session.Session{
		ManagerID: "m-2", ManagerName: "Fernando Ramos", ManagerEmail: "fernando-ramos@ajusteponto.local",
	})
	svc := NewEmployeeService(passthroughTx{}, &mockEmployeeRepo{}, testRoster(t), nil)

	_, err := svc.ImportRoster(ctx)
	assert.ErrorIs(t, err, employee.ErrRosterEmpty)
}

func TestEmployeeService_ImportRoster_NoRoster(t *testing.T) {
	svc := NewEmployeeService(passthroughTx{}, &mockEmployeeRepo{}, nil, nil)

	_, err := svc.ImportRoster(managerCtx())
	assert.ErrorIs(t, err, employee.ErrRosterEmpty)
}
