package jobrepo_test

import (
	"context"
	"testing"
	"time"

	"booking/internal/adapters/out/postgres/jobrepo"
	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GormJobRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *jobrepo.GormJobRepository
}

func (suite *GormJobRepositoryTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&jobrepo.JobDTO{})
	suite.Require().NoError(err)

	suite.repo = jobrepo.NewGormJobRepository(db, &mockAggregateTracker{})
}

func (suite *GormJobRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GormJobRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE jobs CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GormJobRepositoryTestSuite) mustLanguage(code string) kernel.Language {
	language, err := kernel.NewLanguage(code)
	suite.Require().NoError(err)
	return language
}

func (suite *GormJobRepositoryTestSuite) newPendingJob(startAt time.Time) *job.Job {
	j, err := job.NewJob(
		kernel.NewUUID(),
		kernel.NewUUID(),
		suite.mustLanguage("sv"),
		startAt,
		60,
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return j
}

func (suite *GormJobRepositoryTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	startAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	created := suite.newPendingJob(startAt)
	suite.Require().NoError(created.UpdateDetails(time.Time{}, 0, "booker@example.com", "REF-1"))

	err := suite.repo.Add(ctx, created)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, created.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(created))
	suite.Equal(job.Pending, loaded.Status())
	suite.Equal("booker@example.com", loaded.ContactEmail())
	suite.Equal("REF-1", loaded.Reference())
	suite.Equal(1, loaded.Version())
	suite.True(loaded.StartAt().Equal(startAt))
	suite.Nil(loaded.Translator())
}

func (suite *GormJobRepositoryTestSuite) TestGet_NotFound() {
	_, err := suite.repo.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GormJobRepositoryTestSuite) TestUpdate_BumpsVersion() {
	ctx := context.Background()
	created := suite.newPendingJob(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	suite.Require().NoError(suite.repo.Add(ctx, created))

	loaded, err := suite.repo.Get(ctx, created.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.Accept(kernel.NewUUID(), time.Now().UTC()))

	err = suite.repo.Update(ctx, loaded)
	suite.Require().NoError(err)

	reloaded, err := suite.repo.Get(ctx, created.ID())
	suite.Require().NoError(err)
	suite.Equal(job.Accepted, reloaded.Status())
	suite.Equal(2, reloaded.Version())
	suite.NotNil(reloaded.Translator())
}

func (suite *GormJobRepositoryTestSuite) TestUpdate_StaleVersionRejected() {
	ctx := context.Background()
	created := suite.newPendingJob(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	suite.Require().NoError(suite.repo.Add(ctx, created))

	// Two sessions load the same version of the job.
	first, err := suite.repo.Get(ctx, created.ID())
	suite.Require().NoError(err)
	second, err := suite.repo.Get(ctx, created.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.Accept(kernel.NewUUID(), time.Now().UTC()))
	suite.Require().NoError(suite.repo.Update(ctx, first))

	suite.Require().NoError(second.Accept(kernel.NewUUID(), time.Now().UTC()))
	err = suite.repo.Update(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)

	reloaded, err := suite.repo.Get(ctx, created.ID())
	suite.Require().NoError(err)
	suite.True(reloaded.Translator().IsEqual(*first.Translator()), "first accept must win")
}

func (suite *GormJobRepositoryTestSuite) TestUpdate_ConcurrentAccepts_ExactlyOneWinner() {
	ctx := context.Background()
	created := suite.newPendingJob(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	suite.Require().NoError(suite.repo.Add(ctx, created))

	const contenders = 8
	errCh := make(chan error, contenders)

	for range contenders {
		go func() {
			loaded, err := suite.repo.Get(ctx, created.ID())
			if err != nil {
				errCh <- err
				return
			}
			if err = loaded.Accept(kernel.NewUUID(), time.Now().UTC()); err != nil {
				errCh <- err
				return
			}
			errCh <- suite.repo.Update(ctx, loaded)
		}()
	}

	winners := 0
	for range contenders {
		err := <-errCh
		if err == nil {
			winners++
		}
	}

	suite.Equal(1, winners, "exactly one concurrent accept must win")

	reloaded, err := suite.repo.Get(ctx, created.ID())
	suite.Require().NoError(err)
	suite.Equal(job.Accepted, reloaded.Status())
	suite.Equal(2, reloaded.Version())
}

func (suite *GormJobRepositoryTestSuite) TestGetPendingDueBefore() {
	ctx := context.Background()
	deadline := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	overdue := suite.newPendingJob(deadline.Add(-2 * time.Hour))
	upcoming := suite.newPendingJob(deadline.Add(2 * time.Hour))
	acceptedOverdue := suite.newPendingJob(deadline.Add(-1 * time.Hour))
	suite.Require().NoError(acceptedOverdue.Accept(kernel.NewUUID(), time.Now().UTC()))

	suite.Require().NoError(suite.repo.Add(ctx, overdue))
	suite.Require().NoError(suite.repo.Add(ctx, upcoming))
	suite.Require().NoError(suite.repo.Add(ctx, acceptedOverdue))

	due, err := suite.repo.GetPendingDueBefore(ctx, deadline)

	suite.Require().NoError(err)
	suite.Require().Len(due, 1)
	suite.True(due[0].IsEqual(overdue))
}

func (suite *GormJobRepositoryTestSuite) TestGetAcceptedStartingWithin() {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	window := time.Hour

	soon := suite.newPendingJob(now.Add(30 * time.Minute))
	suite.Require().NoError(soon.Accept(kernel.NewUUID(), now))

	alreadyReminded := suite.newPendingJob(now.Add(45 * time.Minute))
	suite.Require().NoError(alreadyReminded.Accept(kernel.NewUUID(), now))
	suite.Require().NoError(alreadyReminded.MarkReminderSent())

	farOut := suite.newPendingJob(now.Add(3 * time.Hour))
	suite.Require().NoError(farOut.Accept(kernel.NewUUID(), now))

	stillPending := suite.newPendingJob(now.Add(30 * time.Minute))

	for _, j := range []*job.Job{soon, alreadyReminded, farOut, stillPending} {
		suite.Require().NoError(suite.repo.Add(ctx, j))
	}

	due, err := suite.repo.GetAcceptedStartingWithin(ctx, now, window)

	suite.Require().NoError(err)
	suite.Require().Len(due, 1)
	suite.True(due[0].IsEqual(soon))
}

func TestGormJobRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GormJobRepositoryTestSuite))
}
