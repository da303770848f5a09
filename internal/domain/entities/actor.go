package entities

import "strings"

// Actor identifies who performed a mutation. It is recorded on history entries.
type Actor struct {
	Name string
}

const (
	defaultActorName  = "Admin"
	customerActorName = "Customer"
)

// NewActor returns an actor for name, falling back to the admin identity.
func NewActor(name string) Actor {
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultActorName
	}
	return Actor{Name: name}
}

// AdminActor is the default back-office identity.
func AdminActor() Actor { return Actor{Name: defaultActorName} }

// CustomerActor is the identity used for responses from the public proof page.
func CustomerActor() Actor { return Actor{Name: customerActorName} }
