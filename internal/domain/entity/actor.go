package entity

import "github.com/google/uuid"

// Actor is the visitor behind a request. A zero ID means the visitor is anonymous.
type Actor struct {
	ID    uuid.UUID `json:"id"`
	Roles Roles     `json:"roles,omitempty"`
}

// AnonymousActor returns an actor without identity.
func AnonymousActor() Actor {
	return Actor{}
}

// NewActor returns an authenticated actor.
func NewActor(id uuid.UUID, roles Roles) Actor {
	return Actor{ID: id, Roles: roles}
}

// IsAnonymous reports whether the actor carries no identity.
func (a Actor) IsAnonymous() bool {
	return a.ID == uuid.Nil
}

// HasRole reports whether an authenticated actor holds role.
func (a Actor) HasRole(role Role) bool {
	return !a.IsAnonymous() && a.Roles.Contains(role)
}

// IDPtr returns the identity as an optional value, nil for anonymous actors.
func (a Actor) IDPtr() *uuid.UUID {
	if a.IsAnonymous() {
		return nil
	}
	id := a.ID

	return &id
}
