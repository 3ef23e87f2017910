package domain

import "github.com/google/uuid"

// ActorKind says on whose behalf an operation runs.
type ActorKind string

const (
	ActorCustomer ActorKind = "CUSTOMER"
	ActorShop     ActorKind = "SHOP"
	ActorAdmin    ActorKind = "ADMIN"
	ActorSystem   ActorKind = "SYSTEM"
)

// Actor identifies the caller of a return operation. For a shop, ID is the store ID.
type Actor struct {
	Kind ActorKind `json:"kind"`
	ID   uuid.UUID `json:"id"`
}

// SystemActor is used by the scheduled passes.
var SystemActor = Actor{Kind: ActorSystem}

func (a Actor) String() string {
	if a.Kind == ActorSystem {
		return string(a.Kind)
	}
	return string(a.Kind) + ":" + a.ID.String()
}
