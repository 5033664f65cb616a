// Package policy is the single place where ownership and role rules live.
// Every resource handler funnels its access decision through Authorize so
// the rules stay consistent across tasks, categories, tags, notes and users.
package policy

import (
	"github.com/dench1k1ng/final-web-backend/internal/core/domain"
)

type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type Resource string

const (
	ResourceCategory Resource = "category"
	ResourceTask     Resource = "task"
	ResourceTaskList Resource = "task_list"
	ResourceTag      Resource = "tag"
	ResourceNote     Resource = "note"
	ResourceUser     Resource = "user"
	ResourceActivity Resource = "activity"
)

// Ownable exposes a record's owner reference for owner-or-admin checks.
// A nil reference means the record has no owner; only an admin passes then.
type Ownable interface {
	OwnerRef() *string
}

// Authorize decides whether actor may perform action on a resource kind,
// optionally against a concrete target record. It returns nil on allow, or
// an Unauthenticated/Forbidden domain error on deny.
//
// The table deliberately preserves two asymmetries of the product design:
// categories are shared taxonomy, so any authenticated user may update or
// delete them, while tasks, tags and notes are owner-scoped; and reading a
// single task is public even though listing tasks is private.
func Authorize(actor *domain.Actor, action Action, resource Resource, target Ownable) error {
	switch resource {
	case ResourceCategory:
		if action == ActionRead {
			return nil
		}
		return requireAuthenticated(actor)

	case ResourceTaskList:
		// Listing is private even though single-task read below is public;
		// the scope an authenticated caller sees comes from ListScope.
		return requireAuthenticated(actor)

	case ResourceTask:
		switch action {
		case ActionRead:
			return nil
		case ActionCreate:
			return requireAuthenticated(actor)
		default:
			return requireOwnerOrAdmin(actor, target)
		}

	case ResourceTag:
		switch action {
		case ActionRead, ActionCreate:
			return requireAuthenticated(actor)
		default:
			return requireOwnerOrAdmin(actor, target)
		}

	case ResourceNote:
		// For read and create the target is the parent task: note visibility
		// follows task ownership. For delete it is the note itself, so the
		// author (or an admin) may remove it.
		return requireOwnerOrAdmin(actor, target)

	case ResourceUser:
		return requireAdmin(actor)

	case ResourceActivity:
		return requireAuthenticated(actor)
	}

	return domain.Errorf(domain.KindForbidden, "unknown resource %q", resource)
}

// ListScope returns the owner id a listing must be constrained to. Only an
// admin explicitly asking for everything gets an unscoped (nil) result.
func ListScope(actor *domain.Actor, requestAll bool) *string {
	if actor.IsAdmin() && requestAll {
		return nil
	}
	id := actor.UserID
	return &id
}

func requireAuthenticated(actor *domain.Actor) error {
	if actor == nil || actor.UserID == "" {
		return domain.Errorf(domain.KindUnauthenticated, "authentication required")
	}
	return nil
}

func requireAdmin(actor *domain.Actor) error {
	if err := requireAuthenticated(actor); err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return domain.Errorf(domain.KindForbidden, "admin role required")
	}
	return nil
}

// requireOwnerOrAdmin compares normalized id strings; admin role satisfies
// the check regardless of ownership.
func requireOwnerOrAdmin(actor *domain.Actor, target Ownable) error {
	if err := requireAuthenticated(actor); err != nil {
		return err
	}
	if actor.IsAdmin() {
		return nil
	}
	if target == nil {
		return domain.Errorf(domain.KindForbidden, "not authorized")
	}
	owner := target.OwnerRef()
	if owner == nil || *owner != actor.UserID {
		return domain.Errorf(domain.KindForbidden, "not authorized")
	}
	return nil
}
