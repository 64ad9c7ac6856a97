package cmd

import (
	"booking/internal/adapters/out/postgres"
	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/application/usecases/queries"
	"booking/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into command and query handlers. It is the
// only place that knows the concrete implementations behind the ports.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	pushSender ports.PushSender
	smsSender  ports.SMSSender
	timeouts   commands.NotificationTimeouts
}

// NewCompositionRoot creates the composition root from the shared database
// connection and the notification gateways.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	pushSender ports.PushSender,
	smsSender ports.SMSSender,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		pushSender: pushSender,
		smsSender:  smsSender,
		timeouts: commands.NotificationTimeouts{
			Push: config.PushTimeout,
			SMS:  config.SMSTimeout,
		},
	}
}

func (c *CompositionRoot) jobUoWFactory() commands.JobUoWFactory {
	return FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) jobUserUoWFactory() commands.JobUserUoWFactory {
	return FuncJobUserUoWFactory(func() commands.JobUserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateJobCommandHandler() commands.CreateJobCommandHandler {
	var f commands.JobDistanceUoWFactory = FuncJobDistanceUoWFactory(func() commands.JobDistanceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateJobCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateJobCommandHandler() commands.UpdateJobCommandHandler {
	return commands.NewUpdateJobCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateAcceptJobCommandHandler() commands.AcceptJobCommandHandler {
	return commands.NewAcceptJobCommandHandler(c.jobUserUoWFactory())
}

func (c *CompositionRoot) CreateStartJobCommandHandler() commands.StartJobCommandHandler {
	return commands.NewStartJobCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateCancelJobCommandHandler() commands.CancelJobCommandHandler {
	return commands.NewCancelJobCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateEndJobCommandHandler() commands.EndJobCommandHandler {
	return commands.NewEndJobCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateCustomerNotCallCommandHandler() commands.CustomerNotCallCommandHandler {
	return commands.NewCustomerNotCallCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateReopenJobCommandHandler() commands.ReopenJobCommandHandler {
	return commands.NewReopenJobCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateCorrectDistanceCommandHandler() commands.CorrectDistanceCommandHandler {
	var f commands.DistanceUoWFactory = FuncDistanceUoWFactory(func() commands.DistanceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCorrectDistanceCommandHandler(f)
}

func (c *CompositionRoot) CreateNotifyTranslatorsCommandHandler() commands.NotifyTranslatorsCommandHandler {
	return commands.NewNotifyTranslatorsCommandHandler(
		c.jobUserUoWFactory(),
		c.pushSender,
		c.smsSender,
		c.timeouts,
	)
}

func (c *CompositionRoot) CreateExpireOverdueJobsCommandHandler() commands.ExpireOverdueJobsCommandHandler {
	return commands.NewExpireOverdueJobsCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateSendSessionRemindersCommandHandler() commands.SendSessionRemindersCommandHandler {
	return commands.NewSendSessionRemindersCommandHandler(
		c.jobUserUoWFactory(),
		c.pushSender,
		c.timeouts,
	)
}

func (c *CompositionRoot) CreateGetJobQueryHandler() queries.GetJobQueryHandler {
	return queries.NewGetJobQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUsersJobsQueryHandler() queries.GetUsersJobsQueryHandler {
	return queries.NewGetUsersJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUsersJobsHistoryQueryHandler() queries.GetUsersJobsHistoryQueryHandler {
	return queries.NewGetUsersJobsHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllJobsQueryHandler() queries.GetAllJobsQueryHandler {
	return queries.NewGetAllJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPotentialJobsQueryHandler() queries.GetPotentialJobsQueryHandler {
	return queries.NewGetPotentialJobsQueryHandler(c.gormDB)
}

type FuncJobUoWFactory func() commands.JobUoW

func (f FuncJobUoWFactory) Create() commands.JobUoW {
	return f()
}

type FuncJobUserUoWFactory func() commands.JobUserUoW

func (f FuncJobUserUoWFactory) Create() commands.JobUserUoW {
	return f()
}

type FuncJobDistanceUoWFactory func() commands.JobDistanceUoW

func (f FuncJobDistanceUoWFactory) Create() commands.JobDistanceUoW {
	return f()
}

type FuncDistanceUoWFactory func() commands.DistanceUoW

func (f FuncDistanceUoWFactory) Create() commands.DistanceUoW {
	return f()
}
