package models_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"

	"github.com/pageza/nutristack/backend/internal/models"
)

func TestModelsParse(t *testing.T) {
	cache := &sync.Map{}
	for _, m := range []interface{}{
		&models.HealthProfile{},
		&models.NutritionPlan{},
		&models.Brand{},
		&models.Product{},
		&models.Contraindication{},
		&models.Store{},
		&models.ProductPackage{},
		&models.ProductPrice{},
	} {
		_, err := schema.Parse(m, cache, schema.NamingStrategy{})
		require.NoError(t, err, "%T", m)
	}
}

func TestHealthProfileListColumns(t *testing.T) {
	s, err := schema.Parse(&models.HealthProfile{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	for _, name := range []string{"Allergies", "Diseases", "Medications"} {
		field := s.LookUpField(name)
		require.NotNil(t, field, name)
		assert.Equal(t, schema.DataType("text"), field.DataType, name)
	}
}

func TestStringListRoundTrip(t *testing.T) {
	v, err := models.StringList{"kidney disease", "asthma"}.Value()
	require.NoError(t, err)

	var got models.StringList
	require.NoError(t, got.Scan(v))
	assert.Equal(t, models.StringList{"kidney disease", "asthma"}, got)

	require.NoError(t, got.Scan(nil))
	assert.Empty(t, got)
}
