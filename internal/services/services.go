// Package services holds the domain consistency layer: owner-scoped
// authorization, the project cascade, the issue status machine and the
// project metrics, composed into the operations the handlers expose.
package services

import (
	"time"

	"github.com/monocle-dev/trackr/internal/repository"
	"github.com/rs/zerolog"
)

type Options struct {
	Logger     zerolog.Logger
	Tokens     TokenIssuer
	Now        func() time.Time
	Location   *time.Location
	BcryptCost int
}

type Services struct {
	Projects *ProjectService
	Issues   *IssueService
	Notes    *NoteService
	Accounts *AccountService
}

func New(store repository.Store, opts Options) *Services {
	gate := Gate{}
	cascade := NewCascadeCoordinator(store, opts.Logger)
	metrics := NewMetricsCalculator(opts.Now, opts.Location)

	return &Services{
		Projects: NewProjectService(store, gate, cascade, metrics, opts.Logger),
		Issues:   NewIssueService(store, gate, NewStatusTransition(store, gate)),
		Notes:    NewNoteService(store, gate),
		Accounts: NewAccountService(store, gate, cascade, opts.Tokens, opts.BcryptCost),
	}
}
