package submissionservice

import (
	"log/slog"

	httpadapter "formdesk/contexts/intake/submission-service/adapters/http"
	"formdesk/contexts/intake/submission-service/adapters/memory"
	"formdesk/contexts/intake/submission-service/application/commands"
	"formdesk/contexts/intake/submission-service/application/queries"
	"formdesk/contexts/intake/submission-service/domain/entities"
	"formdesk/contexts/intake/submission-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Authorizer ports.Authorizer
	Repository ports.Repository
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	createSubmission := commands.CreateSubmissionUseCase{
		Authorizer: deps.Authorizer,
		Repository: deps.Repository,
		Clock:      deps.Clock,
		IDGen:      deps.IDGen,
		Logger:     deps.Logger,
	}
	listSubmissions := queries.ListSubmissionsQuery{
		Authorizer: deps.Authorizer,
		Repository: deps.Repository,
		Logger:     deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			CreateSubmission: createSubmission,
			ListSubmissions:  listSubmissions,
			Logger:           deps.Logger,
		},
	}
}

func NewInMemoryModule(authorizer ports.Authorizer, seed []entities.FormSubmission, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Authorizer: authorizer,
		Repository: store,
		Clock:      store,
		IDGen:      store,
		Logger:     logger,
	})
	module.Store = store
	return module
}
