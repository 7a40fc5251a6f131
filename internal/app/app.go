package app

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/saradorri/prospera/internal/config"
	"go.uber.org/fx"
)

// Application provides application level setup
type Application interface {
	Setup()
	GetContext() context.Context
}

// application represents context and configure file
type application struct {
	ctx    context.Context
	config *config.Config
}

// NewApplication creates a new application
func NewApplication(ctx context.Context) Application {
	return &application{ctx: ctx}
}

// GetContext returns application context
func (a *application) GetContext() context.Context {
	return a.ctx
}

// Setup creates a new fx application with all modules
func (a *application) Setup() {
	fmt.Println("[x] Starting Prospera API...")

	path := flag.String("e", "./config", "env file directory")
	flag.Parse()

	err := a.setupViper(*path)
	if err != nil {
		log.Panic(err.Error())
	}

	app := fx.New(a.options())

	app.Run()
}

// options wires every provider of the API process
func (a *application) options() fx.Option {
	return fx.Options(
		fx.NopLogger,
		fx.Provide(
			a.InitLogger,
			a.InitSentry,
			a.InitDatabase,
			a.InitGormDB,
			a.InitUserRepository,
			a.InitProgressRepository,
			a.InitTransactionRepository,
			a.InitGameScoreRepository,
			a.InitContentRepository,
			a.InitUnitOfWork,
			a.InitUserUseCase,
			a.InitTransactionUseCase,
			a.InitGameUseCase,
			a.InitContentUseCase,
			a.InitUserHandler,
			a.InitTransactionHandler,
			a.InitGameHandler,
			a.InitContentHandler,
			a.InitHealthHandler,
			a.InitErrorHandler,
			a.InitHTTPServer,
		),
		fx.Invoke(a.RegisterLifecycle),
	)
}
