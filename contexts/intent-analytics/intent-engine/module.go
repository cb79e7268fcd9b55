package intentengine

import (
	"log/slog"

	httpadapter "istari/contexts/intent-analytics/intent-engine/adapters/http"
	"istari/contexts/intent-analytics/intent-engine/adapters/memory"
	"istari/contexts/intent-analytics/intent-engine/application/commands"
	"istari/contexts/intent-analytics/intent-engine/application/inference"
	"istari/contexts/intent-analytics/intent-engine/application/plugins"
	"istari/contexts/intent-analytics/intent-engine/application/queries"
	"istari/contexts/intent-analytics/intent-engine/domain/entities"
	"istari/contexts/intent-analytics/intent-engine/domain/rules"
	"istari/contexts/intent-analytics/intent-engine/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Machine *inference.StateMachine
	Engine  *inference.Engine
	Plugins *plugins.Registry
	Store   *memory.Store
}

type Dependencies struct {
	Sessions ports.SessionRepository
	Rules    []rules.Rule
	Clock    ports.Clock
	IDs      ports.IDGenerator
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	engine := inference.NewEngine(deps.Rules, deps.Logger)
	machine := inference.NewStateMachine(engine)

	tracker := commands.TrackUseCase{
		Sessions: deps.Sessions,
		Machine:  machine,
		Clock:    deps.Clock,
		IDs:      deps.IDs,
		Logger:   deps.Logger,
	}
	summaries := queries.SummaryUseCase{
		Sessions: deps.Sessions,
	}

	return Module{
		Handler: httpadapter.Handler{
			Tracker:   tracker,
			Summaries: summaries,
			Logger:    deps.Logger,
		},
		Machine: machine,
		Engine:  engine,
		Plugins: plugins.NewRegistry(),
	}
}

// NewInMemoryModule wires the module against the in-memory store with the
// built-in rule set. Tests and the single-process API use this path.
func NewInMemoryModule(seed []*entities.Session, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Sessions: store,
		Rules:    rules.Defaults(),
		Clock:    memory.SystemClock{},
		IDs:      memory.UUIDGenerator{},
		Logger:   logger,
	})
	module.Store = store
	return module
}
