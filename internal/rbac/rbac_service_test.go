package rbac_test

import (
	"testing"

	"github.com/KapilArunesshSS/brighttechrms/internal/rbac"
	"github.com/KapilArunesshSS/brighttechrms/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
)

func newService(t *testing.T) rbac.Service {
	t.Helper()
	enforcer, err := infra.NewEnforcer("infra/model.conf", "infra/policy.csv")
	assert.NoError(t, err)
	return rbac.NewService(enforcer)
}

func TestService_Enforce_RoleCapabilities(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		role     string
		resource string
		action   string
		allowed  bool
	}{
		{"VIEWER", "employee", "read", true},
		{"VIEWER", "manpower", "read", true},
		{"VIEWER", "summary", "read", true},
		{"VIEWER", "employee", "create", false},
		{"VIEWER", "manpower", "submit", false},
		{"VIEWER", "employee", "delete", false},

		{"HR", "employee", "read", true},
		{"HR", "employee", "create", true},
		{"HR", "employee", "update", true},
		{"HR", "employee", "export", true},
		{"HR", "manpower", "submit", true},
		{"HR", "manpower", "export", true},
		{"HR", "employee", "delete", false},
		{"HR", "manpower", "reset", false},

		{"SUPER_ADMIN", "employee", "read", true},
		{"SUPER_ADMIN", "employee", "create", true},
		{"SUPER_ADMIN", "employee", "delete", true},
		{"SUPER_ADMIN", "manpower", "reset", true},
	}

	for _, tt := range tests {
		name := tt.role + "_" + tt.resource + "_" + tt.action
		t.Run(name, func(t *testing.T) {
			allowed, err := svc.Enforce(tt.role, tt.resource, tt.action)
			assert.NoError(t, err)
			assert.Equal(t, tt.allowed, allowed)
		})
	}
}

func TestService_Enforce_UnknownRole(t *testing.T) {
	svc := newService(t)

	allowed, err := svc.Enforce("CONTRACTOR", "employee", "read")
	assert.NoError(t, err)
	assert.False(t, allowed)
}
