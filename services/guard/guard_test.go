package guard

import (
	"testing"

	"therewecome/models"

	"github.com/stretchr/testify/assert"
)

var roles = []models.Role{"", models.RoleAdmin, models.RoleStylist, "DATA_USER", "guest"}

func TestEvaluateUnauthenticatedAlwaysRedirectsToLogin(t *testing.T) {
	for _, role := range roles {
		for _, required := range roles {
			rule := Rule{RequiredRole: required, DefaultView: models.ViewHome}
			d := Evaluate(models.Session{Role: role}, rule, models.ViewAdmin)
			assert.Equal(t, RedirectTo(models.ViewLogin), d, "role=%q required=%q", role, required)
		}
	}
}

func TestEvaluateMatchingRoleRenders(t *testing.T) {
	for _, role := range roles {
		rule := Rule{RequiredRole: role, DefaultView: models.ViewHome}
		d := Evaluate(models.Session{Token: "t", Role: role}, rule, models.ViewDashboard)
		assert.Equal(t, RenderView(models.ViewDashboard), d, "role=%q", role)
	}
}

func TestEvaluateMismatchedRoleRedirectsToDefault(t *testing.T) {
	for _, role := range roles {
		for _, required := range roles {
			if role == required {
				continue
			}
			rule := Rule{RequiredRole: required, DefaultView: models.ViewBook}
			d := Evaluate(models.Session{Token: "t", Role: role}, rule, models.ViewAdmin)
			assert.False(t, d.IsRender())
			assert.Equal(t, models.ViewBook, d.View)
		}
	}
}

func TestBuiltInRulesDoNotRedirectToThemselves(t *testing.T) {
	stylist := models.Session{Token: "t", Role: models.RoleStylist}
	d := Evaluate(stylist, AdminRule, models.ViewAdmin)
	assert.Equal(t, RedirectTo(models.ViewHome), d)

	admin := models.Session{Token: "t", Role: models.RoleAdmin}
	d = Evaluate(admin, StylistRule, models.ViewDashboard)
	assert.Equal(t, RedirectTo(models.ViewHome), d)

	assert.True(t, Evaluate(admin, AdminRule, models.ViewAdmin).IsRender())
	assert.True(t, Evaluate(stylist, StylistRule, models.ViewDashboard).IsRender())
}

func TestResolveHome(t *testing.T) {
	assert.Equal(t, RedirectTo(models.ViewLogin), ResolveHome(models.Session{Role: models.RoleAdmin}))
	assert.Equal(t, RedirectTo(models.ViewAdmin), ResolveHome(models.Session{Token: "t", Role: models.RoleAdmin}))
	assert.Equal(t, RedirectTo(models.ViewDashboard), ResolveHome(models.Session{Token: "t", Role: models.RoleStylist}))
	assert.Equal(t, RenderView(models.ViewHome), ResolveHome(models.Session{Token: "t", Role: "DATA_USER"}))
}

func TestPublicOnly(t *testing.T) {
	assert.Equal(t, RenderView(models.ViewLogin), PublicOnly(models.Session{}, models.ViewLogin))
	assert.Equal(t, RedirectTo(models.ViewHome), PublicOnly(models.Session{Token: "t"}, models.ViewRegister))
}
