package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"preparos/internal/shared/config"
	"preparos/internal/shared/constants"
)

func TestNewManager(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		driver  string
		want    string
		wantErr bool
	}{
		{"development uses automigrate", constants.EnvDevelopment, config.DriverPostgres, "gorm_auto_migrate", false},
		{"production uses goose", constants.EnvProduction, config.DriverPostgres, "goose", false},
		{"mysql scripts", constants.EnvProduction, config.DriverMySQL, "goose", false},
		{"unknown driver", constants.EnvProduction, "oracle", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewManager(tt.env, tt.driver)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.GetStrategy().GetName())
		})
	}
}

func TestEmbeddedScriptsMatchForEveryDriver(t *testing.T) {
	pg, err := NewGooseStrategy(config.DriverPostgres)
	require.NoError(t, err)
	my, err := NewGooseStrategy(config.DriverMySQL)
	require.NoError(t, err)

	pgFiles, err := pg.Versions()
	require.NoError(t, err)
	myFiles, err := my.Versions()
	require.NoError(t, err)

	require.NotEmpty(t, pgFiles)
	require.Len(t, myFiles, len(pgFiles))
	for i := range pgFiles {
		assert.Equal(t, pgFiles[i][len("scripts/postgres/"):], myFiles[i][len("scripts/mysql/"):])
	}
}

func TestAutoMigrate(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	m := NewManagerWithStrategy(NewGormAutoMigrateStrategy())
	require.NoError(t, m.Migrate(db))

	for _, table := range []string{
		constants.TableUsers, constants.TableProfiles, constants.TableBatches,
		constants.TableSessions, constants.TableConsumption, constants.TableTransfers,
	} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}
