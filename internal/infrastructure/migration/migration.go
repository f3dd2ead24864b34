package migration

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/brandvault/brandvault/internal/infrastructure/persistence/models"
	"github.com/brandvault/brandvault/internal/shared/logger"
)

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks AutoMigrate for sqlite and the embedded goose scripts otherwise.
func NewManager(driver string, log logger.Interface) *Manager {
	var strategy Strategy
	if strings.EqualFold(driver, "sqlite") {
		strategy = NewGormAutoMigrateStrategy(log)
	} else {
		strategy = NewEmbeddedGooseStrategy(log)
	}
	return NewManagerWithStrategy(strategy, log)
}

func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

// Migrate executes the configured migration strategy over every persistence model.
func (m *Manager) Migrate(db *gorm.DB) error {
	all := models.All()
	m.logger.Infow("starting database migration",
		"strategy", m.strategy.GetName(),
		"models_count", len(all))

	if err := m.strategy.Migrate(db, all...); err != nil {
		m.logger.Errorw("migration failed",
			"strategy", m.strategy.GetName(),
			"error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully",
		"strategy", m.strategy.GetName())
	return nil
}

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
