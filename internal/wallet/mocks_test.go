package wallet

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/FairSlots_Go/internal/worker"
)

// MockSettler for testing
type MockSettler struct {
	mock.Mock
}

func (m *MockSettler) Settle(ctx context.Context, s Settlement) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

// MockQueue runs jobs inline or rejects them
type MockQueue struct {
	mock.Mock
}

func (m *MockQueue) Enqueue(job worker.Job) error {
	args := m.Called(job)
	if err := args.Error(0); err != nil {
		return err
	}
	return job.Process(context.Background())
}
