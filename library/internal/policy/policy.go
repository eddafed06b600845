// Package policy decides which actor may perform which catalog mutation.
package policy

import (
	"context"
	"sort"
	"strings"

	"github.com/Astemirdum/library-catalog/library/internal/errs"
	"github.com/Astemirdum/library-catalog/pkg/auth"
	"github.com/pkg/errors"
)

type Capability string

const (
	// Authenticated is held by any logged-in user: own loans, likes, profile.
	Authenticated Capability = "authenticated"
	// CanMarkReturned is the librarian grant: all loans, renewals, circulation, imports.
	CanMarkReturned Capability = "can_mark_returned"
)

// roleCapabilities maps identity roles onto capability sets.
var roleCapabilities = map[string][]Capability{
	auth.RoleUser:      {Authenticated},
	auth.RoleLibrarian: {Authenticated, CanMarkReturned},
	auth.RoleAdmin:     {Authenticated, CanMarkReturned},
}

// permissionCapabilities maps explicit permission grants onto capabilities.
var permissionCapabilities = map[string]Capability{
	"can_mark_returned":         CanMarkReturned,
	"catalog.can_mark_returned": CanMarkReturned,
}

type Actor struct {
	UserName     string
	capabilities map[Capability]struct{}
}

func Anonymous() Actor {
	return Actor{}
}

// NewActor builds an actor holding exactly caps (plus Authenticated when named).
func NewActor(userName string, caps ...Capability) Actor {
	a := Actor{UserName: userName, capabilities: make(map[Capability]struct{}, len(caps)+1)}
	if userName != "" {
		a.capabilities[Authenticated] = struct{}{}
	}
	for _, c := range caps {
		a.capabilities[c] = struct{}{}
	}
	return a
}

// System is the actor used for work that originates inside the service
// (loan intake consumer, scheduled jobs).
func System() Actor {
	return NewActor("system", CanMarkReturned)
}

func FromIdentity(id auth.Identity) Actor {
	if id.UserName == "" {
		return Anonymous()
	}
	caps := append([]Capability(nil), roleCapabilities[strings.ToLower(id.Role)]...)
	for _, p := range id.Permissions {
		if c, ok := permissionCapabilities[strings.ToLower(p)]; ok {
			caps = append(caps, c)
		}
	}
	return NewActor(id.UserName, caps...)
}

func FromContext(ctx context.Context) Actor {
	id, ok := auth.FromContext(ctx)
	if !ok {
		return Anonymous()
	}
	return FromIdentity(id)
}

func (a Actor) IsAnonymous() bool {
	return a.UserName == ""
}

func (a Actor) Has(c Capability) bool {
	_, ok := a.capabilities[c]
	return ok
}

func (a Actor) Capabilities() []Capability {
	out := make([]Capability, 0, len(a.capabilities))
	for c := range a.capabilities {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Require fails with errs.ErrForbidden when the actor lacks c. action names the
// attempted operation in the message shown to the caller.
func Require(a Actor, c Capability, action string) error {
	if a.Has(c) {
		return nil
	}
	if a.IsAnonymous() {
		return errors.Wrapf(errs.ErrForbidden, "%s: you must be logged in", action)
	}
	return errors.Wrapf(errs.ErrForbidden, "%s: user %q lacks permission %q", action, a.UserName, c)
}
