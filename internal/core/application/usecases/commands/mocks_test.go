package commands_test

import (
	"context"
	"errors"
	"time"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/domain/model/distance"
	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/user"
	"booking/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Add(ctx context.Context, j *job.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockJobRepository) Update(ctx context.Context, j *job.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetPendingDueBefore(ctx context.Context, deadline time.Time) ([]*job.Job, error) {
	args := m.Called(ctx, deadline)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetAcceptedStartingWithin(ctx context.Context, now time.Time, window time.Duration) ([]*job.Job, error) {
	args := m.Called(ctx, now, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(_ context.Context, _ *user.User) error {
	return errors.New("not implemented in mock")
}

func (m *MockUserRepository) Update(_ context.Context, _ *user.User) error {
	return errors.New("not implemented in mock")
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetTranslatorsByLanguage(ctx context.Context, language kernel.Language) ([]*user.User, error) {
	args := m.Called(ctx, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.User), args.Error(1)
}

type MockDistanceRepository struct{ mock.Mock }

func (m *MockDistanceRepository) Add(ctx context.Context, d *distance.Distance) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDistanceRepository) Update(ctx context.Context, d *distance.Distance) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDistanceRepository) GetByJobID(ctx context.Context, jobID kernel.UUID) (*distance.Distance, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*distance.Distance), args.Error(1)
}

// MockUoW satisfies every narrow unit-of-work interface in this package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) JobRepository() ports.JobRepository {
	args := m.Called()
	return args.Get(0).(ports.JobRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockUoW) DistanceRepository() ports.DistanceRepository {
	args := m.Called()
	return args.Get(0).(ports.DistanceRepository)
}

type MockJobUoWFactory struct{ mock.Mock }

func (m *MockJobUoWFactory) Create() commands.JobUoW {
	args := m.Called()
	return args.Get(0).(commands.JobUoW)
}

type MockJobUserUoWFactory struct{ mock.Mock }

func (m *MockJobUserUoWFactory) Create() commands.JobUserUoW {
	args := m.Called()
	return args.Get(0).(commands.JobUserUoW)
}

type MockJobDistanceUoWFactory struct{ mock.Mock }

func (m *MockJobDistanceUoWFactory) Create() commands.JobDistanceUoW {
	args := m.Called()
	return args.Get(0).(commands.JobDistanceUoW)
}

type MockDistanceUoWFactory struct{ mock.Mock }

func (m *MockDistanceUoWFactory) Create() commands.DistanceUoW {
	args := m.Called()
	return args.Get(0).(commands.DistanceUoW)
}

type MockPushSender struct{ mock.Mock }

func (m *MockPushSender) SendPush(ctx context.Context, notification ports.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

type MockSMSSender struct{ mock.Mock }

func (m *MockSMSSender) SendSMS(ctx context.Context, notification ports.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}
