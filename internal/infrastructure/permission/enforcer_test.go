package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"preparos/internal/shared/logger"
)

func newTestEnforcer(t *testing.T) *Enforcer {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	e, err := NewEnforcer(db, logger.NewNop())
	require.NoError(t, err)
	require.NoError(t, SeedDefaultPolicies(e))
	return e
}

func TestDefaultPolicies(t *testing.T) {
	e := newTestEnforcer(t)

	tests := []struct {
		role     string
		resource string
		action   string
		want     bool
	}{
		{"member", ResourceBatch, ActionRead, true},
		{"member", ResourceBatch, ActionWrite, true},
		{"member", ResourceBatch, ActionDelete, false},
		{"member", ResourceSession, ActionDelete, true},
		{"member", ResourceReport, ActionRead, true},
		{"admin", ResourceBatch, ActionDelete, true},
		{"admin", ResourceTransfer, ActionWrite, true},
		{"guest", ResourceBatch, ActionRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.role+"/"+tt.resource+"/"+tt.action, func(t *testing.T) {
			allowed, err := e.Enforce(tt.role, tt.resource, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.want, allowed)
		})
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	e := newTestEnforcer(t)
	require.NoError(t, SeedDefaultPolicies(e))
	require.NoError(t, e.LoadPolicy())

	perms, err := e.GetPermissionsForRole("member")
	require.NoError(t, err)
	assert.Len(t, perms, 9)
}
