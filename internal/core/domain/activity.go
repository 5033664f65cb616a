package domain

import "time"

type ActivityAction string

const (
	ActivityCreated   ActivityAction = "created"
	ActivityUpdated   ActivityAction = "updated"
	ActivityCompleted ActivityAction = "completed"
	ActivityDeleted   ActivityAction = "deleted"
)

type ActivityEntity string

const (
	EntityTask     ActivityEntity = "task"
	EntityCategory ActivityEntity = "category"
	EntityNote     ActivityEntity = "note"
	EntityTag      ActivityEntity = "tag"
)

// ActivityEntry is an append-only record of a mutation. EntityName is a
// snapshot of the entity's name at the time of the action, so the log stays
// readable after the entity is gone.
type ActivityEntry struct {
	ID         string
	Action     ActivityAction
	EntityType ActivityEntity
	EntityName string
	UserID     string
	CreatedAt  time.Time

	User *UserRef
}

const DefaultActivityLimit = 50

// ActivityFilter scopes log reads. A nil UserID means all users and is only
// ever set by the service for an admin requesting the full log.
type ActivityFilter struct {
	UserID *string
	Limit  int
}
