package bootstrap

import (
	"github.com/foodops/stockbook/internal/adapters/http/in"
	"github.com/foodops/stockbook/internal/events"
	"github.com/foodops/stockbook/internal/repository"
	"github.com/foodops/stockbook/internal/services/command"
	"github.com/foodops/stockbook/internal/services/query"
	"github.com/foodops/stockbook/internal/settings"
	"github.com/foodops/stockbook/internal/turnover"
	"github.com/foodops/stockbook/pkg"
	"github.com/foodops/stockbook/pkg/mlog"
	"github.com/foodops/stockbook/pkg/mmodel"
)

// Service is the application glue: it holds the wired server and the logger.
type Service struct {
	*Server
	mlog.Logger
}

// Run starts the application.
func (s *Service) Run() {
	pkg.NewLauncher(
		pkg.WithLogger(s.Logger),
		pkg.RunApp("service", s.Server),
	).Run()
}

// InitServers wires the whole application: repository, bus, integrity
// registration, turnover cache, settings, use cases, handlers and router.
func InitServers(cfg *Config, logger mlog.Logger) (*Service, error) {
	repo := repository.New()
	bus := events.NewBus(logger)

	// Every entity entering the repository gets its integrity handler
	// registered with the bus; leaving unregisters it.
	repo.OnAppend = func(e mmodel.Entity) {
		bus.Subscribe(events.NewIntegrity(e))
	}
	repo.OnRemove = func(e mmodel.Entity) {
		bus.Unsubscribe(events.NewIntegrity(e))
	}

	bus.Subscribe(events.NewLoggerSubscriber(logger))

	turnoverSvc := turnover.New(repo)
	manager := settings.NewManager(cfg.SettingsFile, cfg.TurnoverCacheFile, turnoverSvc, bus)

	loaded, err := manager.Load()
	if err != nil {
		return nil, err
	}

	if !loaded {
		if err := manager.Save(); err != nil {
			return nil, err
		}
	}

	if manager.Settings().IsFirstStart {
		if _, err := LoadRecipeFile(cfg.RecipeFile, repo); err != nil {
			return nil, err
		}

		manager.Settings().IsFirstStart = false

		if err := manager.Save(); err != nil {
			return nil, err
		}
	}

	if _, err := turnoverSvc.Load(cfg.TurnoverCacheFile); err != nil {
		logger.Warnf("Turnover cache not loaded: %v", err)
	}

	commandUseCase := &command.UseCase{
		Repo:     repo,
		Bus:      bus,
		Settings: manager,
	}

	queryUseCase := &query.UseCase{
		Repo:     repo,
		Turnover: turnoverSvc,
		Settings: manager,
		Bus:      bus,
	}

	referenceHandler := &in.ReferenceHandler{Command: commandUseCase, Query: queryUseCase}
	dataHandler := &in.DataHandler{Query: queryUseCase}
	reportHandler := &in.ReportHandler{Query: queryUseCase}
	settingsHandler := &in.SettingsHandler{Command: commandUseCase, Settings: manager}

	app := in.NewRouter(logger, referenceHandler, dataHandler, reportHandler, settingsHandler)

	server := NewServer(cfg, app, logger)

	return &Service{
		Server: server,
		Logger: logger,
	}, nil
}
