package agent

import (
	"sort"
	"sync"
)

// Type represents a specific type of an agent Config. Config's with
// this type create Agents of the corresponding type.
type Type string

const (
	Greedy          Type = "greedy"
	EGreedy         Type = "epsilon-greedy"
	DecayingEGreedy Type = "decaying"
	UCB             Type = "UCB"
)

// Factory constructs the Agent that a Config describes, acting over the
// argument actions and seeded with seed
type Factory func(c Config, actions []int, seed uint64) (Agent, error)

// Registered types with the package. Once a Type has been registered
// with this map, a Config with that type can create Agents.
//
// No Type's are registered with this package upon initialization.
// The package implementing an agent registers its Type separately to
// avoid circular imports.
var (
	registeredTypes   = make(map[Type]Factory)
	registeredTypesMu sync.RWMutex
)

// Register registers an agent's Type with the Factory used to
// construct Agents of that Type. Registering a Type twice replaces the
// previous Factory.
func Register(agentType Type, f Factory) {
	registeredTypesMu.Lock()
	defer registeredTypesMu.Unlock()
	registeredTypes[agentType] = f
}

// Registered returns whether a Factory has been registered for the
// argument Type
func Registered(agentType Type) bool {
	registeredTypesMu.RLock()
	defer registeredTypesMu.RUnlock()
	_, ok := registeredTypes[agentType]
	return ok
}

// RegisteredTypes returns all registered Types in sorted order
func RegisteredTypes() []Type {
	registeredTypesMu.RLock()
	defer registeredTypesMu.RUnlock()

	types := make([]Type, 0, len(registeredTypes))
	for t := range registeredTypes {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

func factory(agentType Type) (Factory, bool) {
	registeredTypesMu.RLock()
	defer registeredTypesMu.RUnlock()
	f, ok := registeredTypes[agentType]
	return f, ok
}
