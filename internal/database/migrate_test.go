package database

import (
	"testing"

	"github.com/pageza/nutristack/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestRunMigrationsSQLite(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, RunMigrations(db, "does-not-matter"))

	for _, table := range []string{"health_profiles", "nutrition_plans", "brands", "products", "contraindications", "product_contraindications", "stores", "product_packages", "product_prices"} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}

	profile := models.HealthProfile{Diseases: models.StringList{"asthma", "type 2 diabetes"}}
	require.NoError(t, db.Create(&profile).Error)

	var loaded models.HealthProfile
	require.NoError(t, db.First(&loaded, "id = ?", profile.ID).Error)
	assert.Equal(t, models.StringList{"asthma", "type 2 diabetes"}, loaded.Diseases)
}
