package services

import (
	"github.com/monocle-dev/trackr/internal/apperrors"
	"github.com/monocle-dev/trackr/internal/models"
	"github.com/monocle-dev/trackr/internal/types"
)

type Action int

const (
	ActionRead Action = iota
	ActionWrite
	ActionDelete
)

func (a Action) String() string {
	switch a {
	case ActionRead:
		return "read"
	case ActionWrite:
		return "write"
	case ActionDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Gate decides whether a caller may act on a project. Issues and notes are
// always checked through their project.
type Gate struct{}

// Authorize allows the project's owner and nobody else. Admin status does
// not widen project access.
func (Gate) Authorize(caller types.Identity, project *models.Project, action Action) error {
	if project == nil || caller.Anonymous() {
		return apperrors.Unauthorized()
	}
	if project.OwnerID != caller.UserID {
		return apperrors.Unauthorized()
	}
	return nil
}

// AuthorizeAdminListing allows admins into read-only listings across owners.
func (Gate) AuthorizeAdminListing(caller types.Identity) error {
	if caller.Anonymous() || !caller.IsAdmin {
		return apperrors.Unauthorized()
	}
	return nil
}
