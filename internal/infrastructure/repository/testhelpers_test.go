package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/brandvault/brandvault/internal/domain/brand"
	"github.com/brandvault/brandvault/internal/domain/company"
	"github.com/brandvault/brandvault/internal/infrastructure/persistence/models"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, gdb.AutoMigrate(models.All()...))
	return gdb
}

func seedCompany(t *testing.T, gdb *gorm.DB, name string) *company.Company {
	t.Helper()
	c, err := company.NewCompany(name)
	require.NoError(t, err)
	require.NoError(t, NewCompanyRepository(gdb, logger.NewNopLogger()).Create(t.Context(), c))
	return c
}

func seedBrand(t *testing.T, gdb *gorm.DB, companyID, name string) *brand.Brand {
	t.Helper()
	b, err := brand.NewBrand(companyID, name)
	require.NoError(t, err)
	require.NoError(t, NewBrandRepository(gdb, logger.NewNopLogger()).Create(t.Context(), b))
	return b
}
