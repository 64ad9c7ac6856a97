package postgres_test

import (
	"context"
	"testing"
	"time"

	"booking/internal/adapters/out/postgres"
	"booking/internal/adapters/out/postgres/distancerepo"
	"booking/internal/adapters/out/postgres/jobrepo"
	"booking/internal/adapters/out/postgres/userrepo"
	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GormUnitOfWorkTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *GormUnitOfWorkTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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

	err = db.AutoMigrate(
		&jobrepo.JobDTO{},
		&distancerepo.DistanceDTO{},
		&userrepo.UserDTO{},
		&userrepo.UserLanguageDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *GormUnitOfWorkTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GormUnitOfWorkTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE jobs, distances, users, user_languages CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GormUnitOfWorkTestSuite) newPendingJob() *job.Job {
	language, err := kernel.NewLanguage("sv")
	suite.Require().NoError(err)

	j, err := job.NewJob(
		kernel.NewUUID(),
		kernel.NewUUID(),
		language,
		time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		60,
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return j
}

func (suite *GormUnitOfWorkTestSuite) TestCommit_PersistsChanges() {
	ctx := context.Background()
	created := suite.newPendingJob()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	err := uow.JobRepository().Add(ctx, created)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	loaded, err := suite.factory.Create().JobRepository().Get(ctx, created.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(created))
}

func (suite *GormUnitOfWorkTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	created := suite.newPendingJob()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	err := uow.JobRepository().Add(ctx, created)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	_, err = suite.factory.Create().JobRepository().Get(ctx, created.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GormUnitOfWorkTestSuite) TestRepositoryBeforeBegin_UsesMainConnection() {
	ctx := context.Background()
	created := suite.newPendingJob()

	uow := suite.factory.Create()

	// Without Begin, repository writes go straight to the pool and stick.
	err := uow.JobRepository().Add(ctx, created)
	suite.Require().NoError(err)

	loaded, err := suite.factory.Create().JobRepository().Get(ctx, created.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(created))
}

func (suite *GormUnitOfWorkTestSuite) TestCommitWithoutBegin_Fails() {
	uow := suite.factory.Create()

	err := uow.Commit(context.Background())

	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *GormUnitOfWorkTestSuite) TestBeginTwice_IsNoOp() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func TestGormUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(GormUnitOfWorkTestSuite))
}
