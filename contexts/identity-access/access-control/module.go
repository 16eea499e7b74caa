package accesscontrol

import (
	"log/slog"

	httpadapter "formdesk/contexts/identity-access/access-control/adapters/http"
	"formdesk/contexts/identity-access/access-control/adapters/memory"
	"formdesk/contexts/identity-access/access-control/application"
	"formdesk/contexts/identity-access/access-control/application/commands"
	"formdesk/contexts/identity-access/access-control/application/queries"
	"formdesk/contexts/identity-access/access-control/domain/entities"
	"formdesk/contexts/identity-access/access-control/ports"
)

type Module struct {
	Handler          httpadapter.Handler
	Guard            application.Guard
	SubmissionAccess queries.SubmissionAccessQuery
	Store            *memory.Store
}

type Dependencies struct {
	Profiles    ports.ProfileRepository
	Credentials ports.CredentialProvisioner
	Audit       ports.AuditOutbox
	Clock       ports.Clock
	IDGen       ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	guard := application.Guard{
		Profiles: deps.Profiles,
		Logger:   deps.Logger,
	}
	profileQueries := queries.ProfileQueries{
		Guard:  guard,
		Logger: deps.Logger,
	}
	createUser := commands.CreateUserUseCase{
		Guard:       guard,
		Credentials: deps.Credentials,
		Profiles:    deps.Profiles,
		Audit:       deps.Audit,
		Clock:       deps.Clock,
		IDGen:       deps.IDGen,
		Logger:      deps.Logger,
	}
	updateUser := commands.UpdateUserUseCase{
		Guard:    guard,
		Profiles: deps.Profiles,
		Audit:    deps.Audit,
		Clock:    deps.Clock,
		IDGen:    deps.IDGen,
		Logger:   deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			Profiles:   profileQueries,
			CreateUser: createUser,
			UpdateUser: updateUser,
			Logger:     deps.Logger,
		},
		Guard: guard,
		SubmissionAccess: queries.SubmissionAccessQuery{
			Guard:  guard,
			Logger: deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []entities.Profile, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Profiles:    store,
		Credentials: store,
		Audit:       store,
		Clock:       store,
		IDGen:       store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
