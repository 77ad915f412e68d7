// Package router decides which view a wallet session lands on.
//
// Routing is a pure transition function over the wallet session; the Router
// type wraps it with the navigation side effect.
package router

import "strings"

// Session is the live wallet connection as reported by the wallet provider.
type Session struct {
	Address   string
	Connected bool
}

// Role is the access level derived from a session. It is never stored.
type Role int

const (
	RoleAnonymous Role = iota
	RoleAdmin
	RoleInvestor
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleInvestor:
		return "investor"
	default:
		return "anonymous"
	}
}

// State is the routing state machine position.
type State int

const (
	StateDisconnected State = iota
	StateRoutedAdmin
	StateRoutedInvestor
)

func (s State) String() string {
	switch s {
	case StateRoutedAdmin:
		return "routed-admin"
	case StateRoutedInvestor:
		return "routed-investor"
	default:
		return "disconnected"
	}
}

// Route names a top-level view.
type Route string

const (
	RouteLanding   Route = "landing"
	RouteAdmin     Route = "admin"
	RouteDashboard Route = "dashboard"
)

// Command is the navigation a transition asks for.
type Command struct {
	Navigate bool
	Route    Route
}

// Navigator performs route transitions.
type Navigator interface {
	NavigateTo(route Route)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(route Route)

// NavigateTo calls f(route).
func (f NavigatorFunc) NavigateTo(route Route) { f(route) }

// Disconnecter clears the wallet session.
type Disconnecter interface {
	Disconnect()
}

// RoleOf derives the role of s against the configured admin address.
// Only an exact case-insensitive match against a non-empty admin address
// yields RoleAdmin; anything else that is connected is an investor.
func RoleOf(admin string, s Session) Role {
	if !s.Connected || s.Address == "" {
		return RoleAnonymous
	}
	if admin != "" && strings.ToLower(s.Address) == strings.ToLower(admin) {
		return RoleAdmin
	}
	return RoleInvestor
}

// Transition maps a session update to the next state and the navigation to
// perform. Every connected update navigates, even when nothing changed.
func Transition(_ State, admin string, s Session) (State, Command) {
	switch RoleOf(admin, s) {
	case RoleAdmin:
		return StateRoutedAdmin, Command{Navigate: true, Route: RouteAdmin}
	case RoleInvestor:
		return StateRoutedInvestor, Command{Navigate: true, Route: RouteDashboard}
	default:
		return StateDisconnected, Command{}
	}
}

// Router applies Transition to session updates and drives a Navigator.
type Router struct {
	admin string
	state State
	nav   Navigator
}

// New returns a Router for the given admin address. The address is fixed for
// the lifetime of the Router.
func New(admin string, nav Navigator) *Router {
	return &Router{admin: admin, state: StateDisconnected, nav: nav}
}

// Observe handles one session update.
func (r *Router) Observe(s Session) {
	next, cmd := Transition(r.state, r.admin, s)
	r.state = next
	if cmd.Navigate && r.nav != nil {
		r.nav.NavigateTo(cmd.Route)
	}
}

// Disconnect clears the session and then returns to the landing view.
func (r *Router) Disconnect(w Disconnecter) {
	if w != nil {
		w.Disconnect()
	}
	r.state = StateDisconnected
	if r.nav != nil {
		r.nav.NavigateTo(RouteLanding)
	}
}

// State returns the current routing state.
func (r *Router) State() State { return r.state }

// Role recomputes the role for s.
func (r *Router) Role(s Session) Role { return RoleOf(r.admin, s) }
