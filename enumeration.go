package anyvalue

import (
	"reflect"
	"slices"
	"sync"
)

/*
Enumerable is implemented by enumeration types that list their own members.
Members is called on the zero value and must return every declared constant.

	type Color int

	const (
		Red Color = iota
		Green
		Blue
	)

	func (Color) Members() []Color { return []Color{Red, Green, Blue} }
*/
type Enumerable[E comparable] interface {
	Members() []E
}

var registry = struct {
	sync.RWMutex
	members map[reflect.Type][]any
}{members: make(map[reflect.Type][]any)}

/*
RegisterEnumeration declares the members of E, for types such as
time.Weekday that cannot implement Enumerable. Registering E again replaces
its members. An Enumerable type always lists its own members, so
registering one panics with ErrInvalidArgument, as does registering no
members.
*/
func RegisterEnumeration[E comparable](members ...E) {
	var zero E
	_, enumerable := any(zero).(Enumerable[E])
	precondition(!enumerable, ErrInvalidArgument, "enumeration %v implements Enumerable", reflect.TypeFor[E]())
	precondition(len(members) > 0, ErrInvalidArgument, "enumeration %v has no members", reflect.TypeFor[E]())

	values := make([]any, len(members))
	for i, m := range members {
		values[i] = m
	}

	registry.Lock()
	defer registry.Unlock()
	registry.members[reflect.TypeFor[E]()] = values
}

/*
EnumerationMembers returns the declared members of E, from its Members
method or from the registry. The second result is false for unknown types.
*/
func EnumerationMembers[E comparable]() ([]E, bool) {
	var zero E
	if en, ok := any(zero).(Enumerable[E]); ok {
		return en.Members(), true
	}

	registry.RLock()
	values, ok := registry.members[reflect.TypeFor[E]()]
	registry.RUnlock()
	if !ok {
		return nil, false
	}

	members := make([]E, len(values))
	for i, v := range values {
		members[i] = v.(E)
	}
	return members, true
}

func mustMembers[E comparable]() []E {
	members, ok := EnumerationMembers[E]()
	precondition(ok, ErrUnknownEnumeration, "%v is not registered and does not implement Enumerable", reflect.TypeFor[E]())
	return members
}

// EnumerationFrom returns a member of E drawn from g.
func EnumerationFrom[E comparable](g *Generator) E {
	return OneOfFrom(g, mustMembers[E]()...)
}

/*
EnumerationExceptFrom returns a member of E drawn from g that is not one of
except. It panics with ErrInvalidArgument if except covers every member.
*/
func EnumerationExceptFrom[E comparable](g *Generator, except ...E) E {
	return oneOfExcept(g, mustMembers[E](), except)
}

// OneOfFrom returns one of members drawn from g.
func OneOfFrom[E any](g *Generator, members ...E) E {
	precondition(len(members) > 0, ErrInvalidArgument, "no members to choose from")
	return members[g.intN(len(members))]
}

// OneOfExceptFrom returns one of members drawn from g that is not one of except.
func OneOfExceptFrom[E comparable](g *Generator, members []E, except ...E) E {
	return oneOfExcept(g, members, except)
}

func oneOfExcept[E comparable](g *Generator, members []E, except []E) E {
	allowed := slices.ContainsFunc(members, func(m E) bool {
		return !slices.Contains(except, m)
	})
	precondition(allowed, ErrInvalidArgument, "all %d members are excluded", len(members))

	for {
		m := members[g.intN(len(members))]
		if !slices.Contains(except, m) {
			return m
		}
	}
}

// Enumeration returns a random member of E.
func Enumeration[E comparable]() E { return EnumerationFrom[E](Default()) }

// EnumerationExcept returns a random member of E that is not one of except.
func EnumerationExcept[E comparable](except ...E) E {
	return EnumerationExceptFrom(Default(), except...)
}

// OneOf returns one of members at random.
func OneOf[E any](members ...E) E { return OneOfFrom(Default(), members...) }

// OneOfExcept returns one of members at random that is not one of except.
func OneOfExcept[E comparable](members []E, except ...E) E {
	return oneOfExcept(Default(), members, except)
}
