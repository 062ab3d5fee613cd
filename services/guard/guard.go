// Package guard decides whether a requested view may be rendered for the
// current session or where to redirect instead.
package guard

import "therewecome/models"

type Outcome int

const (
	Render Outcome = iota
	Redirect
)

func (o Outcome) String() string {
	if o == Render {
		return "render"
	}
	return "redirect"
}

// Decision is the result of evaluating a navigation.
type Decision struct {
	Outcome Outcome
	View    models.View
}

func RenderView(v models.View) Decision {
	return Decision{Outcome: Render, View: v}
}

func RedirectTo(v models.View) Decision {
	return Decision{Outcome: Redirect, View: v}
}

func (d Decision) IsRender() bool {
	return d.Outcome == Render
}

// Rule parameterises the guard for one protected view.
type Rule struct {
	RequiredRole models.Role
	DefaultView  models.View
}

// AdminRule guards the admin console. Unauthorised roles go home rather than
// back to the admin view, which would loop.
var AdminRule = Rule{RequiredRole: models.RoleAdmin, DefaultView: models.ViewHome}

// StylistRule guards the stylist dashboard.
var StylistRule = Rule{RequiredRole: models.RoleStylist, DefaultView: models.ViewHome}

// Evaluate applies rule to a navigation towards requested. The role is only
// consulted once a token is present.
func Evaluate(sess models.Session, rule Rule, requested models.View) Decision {
	if !sess.IsAuthenticated() {
		return RedirectTo(models.ViewLogin)
	}
	if sess.Role == rule.RequiredRole {
		return RenderView(requested)
	}
	return RedirectTo(rule.DefaultView)
}

// ResolveHome decides what the home view shows for sess.
func ResolveHome(sess models.Session) Decision {
	if !sess.IsAuthenticated() {
		return RedirectTo(models.ViewLogin)
	}
	switch sess.Role {
	case models.RoleAdmin:
		return RedirectTo(models.ViewAdmin)
	case models.RoleStylist:
		return RedirectTo(models.ViewDashboard)
	default:
		return RenderView(models.ViewHome)
	}
}

// PublicOnly guards views meant for signed-out visitors, such as login and
// registration.
func PublicOnly(sess models.Session, requested models.View) Decision {
	if sess.IsAuthenticated() {
		return RedirectTo(models.ViewHome)
	}
	return RenderView(requested)
}
