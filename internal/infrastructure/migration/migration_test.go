package migration

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/brandvault/brandvault/internal/shared/constants"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

func TestNewManager_PicksStrategyByDriver(t *testing.T) {
	log := logger.NewNopLogger()
	assert.Equal(t, "gorm_auto_migrate", NewManager("sqlite", log).GetStrategy().GetName())
	assert.Equal(t, "goose", NewManager("mysql", log).GetStrategy().GetName())
}

func TestManager_AutoMigrateCreatesTables(t *testing.T) {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	defer sqlDB.Close()

	require.NoError(t, NewManager("sqlite", logger.NewNopLogger()).Migrate(gdb))

	for _, table := range []string{
		constants.TableCompanies,
		constants.TableUsers,
		constants.TableBrands,
		constants.TableAssets,
		constants.TableAccessRequests,
		constants.TableNotes,
		constants.TableNotifications,
	} {
		assert.True(t, gdb.Migrator().HasTable(table), table)
	}
	assert.True(t, gdb.Migrator().HasIndex(constants.TableAccessRequests, "idx_requester_target"))
}

func TestScripts_Embedded(t *testing.T) {
	files, err := fs.Glob(Scripts, "scripts/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	body, err := fs.ReadFile(Scripts, files[0])
	require.NoError(t, err)
	assert.Contains(t, string(body), "-- +goose Up")
	assert.Contains(t, string(body), "idx_requester_target")
}
