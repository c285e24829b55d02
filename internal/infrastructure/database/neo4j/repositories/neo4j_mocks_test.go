package repositories

import (
	"context"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/mock"
	infraNeo4j "github.com/turtacn/WheatGuard-Intelligence/internal/infrastructure/database/neo4j"
)

// MockInfraDriver implements infraNeo4j.DriverInterface
type MockInfraDriver struct {
	mock.Mock
}

func (m *MockInfraDriver) ExecuteRead(ctx context.Context, work infraNeo4j.TransactionWork) (interface{}, error) {
	args := m.Called(ctx, work)
	if fn, ok := args.Get(0).(func(context.Context, infraNeo4j.TransactionWork) (interface{}, error)); ok {
		return fn(ctx, work)
	}
	tx := new(MockInfraTransaction)
	return work(tx)
}

func (m *MockInfraDriver) ExecuteWrite(ctx context.Context, work infraNeo4j.TransactionWork) (interface{}, error) {
	args := m.Called(ctx, work)
	if fn, ok := args.Get(0).(func(context.Context, infraNeo4j.TransactionWork) (interface{}, error)); ok {
		return fn(ctx, work)
	}
	tx := new(MockInfraTransaction)
	return work(tx)
}

// MockInfraTransaction implements infraNeo4j.Transaction
type MockInfraTransaction struct {
	mock.Mock
}

func (m *MockInfraTransaction) Run(ctx context.Context, cypher string, params map[string]any) (infraNeo4j.Result, error) {
	args := m.Called(ctx, cypher, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(infraNeo4j.Result), args.Error(1)
}

// MockResult implements infraNeo4j.Result over a fixed record list.
type MockResult struct {
	Records []*neo4j.Record
	Current int
}

func (m *MockResult) Next(ctx context.Context) bool {
	return m.Current < len(m.Records)
}

func (m *MockResult) Record() *neo4j.Record {
	if m.Current < len(m.Records) {
		rec := m.Records[m.Current]
		m.Current++
		return rec
	}
	return nil
}

func (m *MockResult) Err() error {
	return nil
}

func (m *MockResult) Consume(ctx context.Context) (neo4j.ResultSummary, error) {
	return nil, nil
}

// Helper to create a record with values
func NewRecord(keys []string, values []any) *neo4j.Record {
	return &neo4j.Record{
		Keys:   keys,
		Values: values,
	}
}

// Helper for tests to setup mock driver to return a transaction mock
func SetupMockDriver(t *testing.T) (*MockInfraDriver, *MockInfraTransaction) {
	t.Helper()
	d := new(MockInfraDriver)
	tx := new(MockInfraTransaction)

	d.On("ExecuteRead", mock.Anything, mock.Anything).Return(func(ctx context.Context, work infraNeo4j.TransactionWork) (interface{}, error) {
		return work(tx)
	})
	d.On("ExecuteWrite", mock.Anything, mock.Anything).Return(func(ctx context.Context, work infraNeo4j.TransactionWork) (interface{}, error) {
		return work(tx)
	})

	return d, tx
}

//Personal.AI order the ending
