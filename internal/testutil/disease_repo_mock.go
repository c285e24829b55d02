package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/turtacn/WheatGuard-Intelligence/internal/domain/disease"
	types "github.com/turtacn/WheatGuard-Intelligence/pkg/types/diagnosis"
)

// MockDiseaseRepo is a testify mock of disease.Repository shared by the
// application-layer and interface-layer tests.
type MockDiseaseRepo struct {
	mock.Mock
}

func (m *MockDiseaseRepo) Rebuild(ctx context.Context, diseases []*disease.Disease) error {
	args := m.Called(ctx, diseases)
	return args.Error(0)
}

func (m *MockDiseaseRepo) Match(ctx context.Context, fp types.Fingerprint, limit int) ([]types.DiseaseCandidate, error) {
	args := m.Called(ctx, fp, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.DiseaseCandidate), args.Error(1)
}

func (m *MockDiseaseRepo) FindByName(ctx context.Context, name string) (*types.DiseaseCandidate, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.DiseaseCandidate), args.Error(1)
}

func (m *MockDiseaseRepo) Stats(ctx context.Context) (*types.GraphStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.GraphStats), args.Error(1)
}

//Personal.AI order the ending
