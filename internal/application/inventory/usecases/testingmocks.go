package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/plotwise-inc/plotwise/internal/domain/inventory"
	"github.com/plotwise-inc/plotwise/internal/shared/db"
	"github.com/plotwise-inc/plotwise/internal/shared/logger"
)

// testTxManager builds a TransactionManager over an in-memory database so
// transactional use cases can run against mocked repositories.
func testTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	return db.NewTransactionManager(gdb)
}

type mockPlotRepository struct {
	mock.Mock
}

func (m *mockPlotRepository) Create(ctx context.Context, plot *inventory.Plot) error {
	args := m.Called(ctx, plot)
	return args.Error(0)
}

func (m *mockPlotRepository) Update(ctx context.Context, plot *inventory.Plot) error {
	args := m.Called(ctx, plot)
	return args.Error(0)
}

func (m *mockPlotRepository) Delete(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockPlotRepository) GetByID(ctx context.Context, id uint) (*inventory.Plot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Plot), args.Error(1)
}

func (m *mockPlotRepository) ListByBlock(ctx context.Context, blockID uint) ([]*inventory.Plot, error) {
	args := m.Called(ctx, blockID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*inventory.Plot), args.Error(1)
}

func (m *mockPlotRepository) ExistsByNumber(ctx context.Context, blockID uint, number string) (bool, error) {
	args := m.Called(ctx, blockID, number)
	return args.Bool(0), args.Error(1)
}

func (m *mockPlotRepository) NextNumber(ctx context.Context, blockID uint, prefix string) (string, error) {
	args := m.Called(ctx, blockID, prefix)
	return args.String(0), args.Error(1)
}

func (m *mockPlotRepository) DeleteByProperty(ctx context.Context, propertyID uint) error {
	args := m.Called(ctx, propertyID)
	return args.Error(0)
}

type mockStatusRecorder struct {
	mock.Mock
}

func (m *mockStatusRecorder) Record(ctx context.Context, change *inventory.StatusChange) error {
	args := m.Called(ctx, change)
	return args.Error(0)
}

type mockLogger struct {
	mock.Mock
}

func (m *mockLogger) Debug(msg string, args ...any) {
	m.Called(msg, args)
}

func (m *mockLogger) Info(msg string, args ...any) {
	m.Called(msg, args)
}

func (m *mockLogger) Warn(msg string, args ...any) {
	m.Called(msg, args)
}

func (m *mockLogger) Error(msg string, args ...any) {
	m.Called(msg, args)
}

func (m *mockLogger) With(args ...any) logger.Interface {
	called := m.Called(args)
	if called.Get(0) == nil {
		return m
	}
	return called.Get(0).(logger.Interface)
}

func (m *mockLogger) Named(name string) logger.Interface {
	called := m.Called(name)
	if called.Get(0) == nil {
		return m
	}
	return called.Get(0).(logger.Interface)
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	m.Called(msg, keysAndValues)
}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	m.Called(msg, keysAndValues)
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	m.Called(msg, keysAndValues)
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	m.Called(msg, keysAndValues)
}
