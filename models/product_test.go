package models_test

import (
	"testing"

	"aronia-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestProductFromDocument_FullDocument(t *testing.T) {
	p := models.ProductFromDocument(map[string]interface{}{
		"title":       "Aronia Pure - 100% Chokeberry Juice",
		"description": "Cold-pressed.",
		"price":       12.90,
		"category":    "Beverages",
		"in_stock":    false,
		"image_url":   "https://example.com/aronia.jpg",
		"sku":         "ARONIA-750ML",
		"volume_ml":   750,
	})

	assert.Equal(t, "Aronia Pure - 100% Chokeberry Juice", p.Title)
	assert.Equal(t, 12.90, p.Price)
	assert.False(t, p.InStock)
	if assert.NotNil(t, p.SKU) {
		assert.Equal(t, "ARONIA-750ML", *p.SKU)
	}
	if assert.NotNil(t, p.ImageURL) {
		assert.Equal(t, "https://example.com/aronia.jpg", *p.ImageURL)
	}
	assert.Equal(t, 750, p.VolumeML)
}

func TestProductFromDocument_Defaults(t *testing.T) {
	p := models.ProductFromDocument(map[string]interface{}{
		"title": "Bare record",
	})

	assert.Equal(t, "Bare record", p.Title)
	assert.Equal(t, 0.0, p.Price)
	assert.True(t, p.InStock, "in_stock defaults to true")
	assert.Equal(t, 750, p.VolumeML, "volume_ml defaults to 750")
	assert.Nil(t, p.ImageURL)
	assert.Nil(t, p.SKU)
}

func TestProductFromDocument_NumericCoercion(t *testing.T) {
	tests := []struct {
		name       string
		doc        map[string]interface{}
		wantPrice  float64
		wantVolume int
	}{
		{
			name:       "bson int32 values",
			doc:        map[string]interface{}{"price": int32(13), "volume_ml": int32(500)},
			wantPrice:  13,
			wantVolume: 500,
		},
		{
			name:       "bson int64 values",
			doc:        map[string]interface{}{"price": int64(9), "volume_ml": int64(1000)},
			wantPrice:  9,
			wantVolume: 1000,
		},
		{
			name:       "float volume",
			doc:        map[string]interface{}{"price": 4.50, "volume_ml": 330.0},
			wantPrice:  4.50,
			wantVolume: 330,
		},
		{
			name:       "unparseable values fall back",
			doc:        map[string]interface{}{"price": "12.90", "volume_ml": "750"},
			wantPrice:  0,
			wantVolume: 750,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := models.ProductFromDocument(tt.doc)
			assert.Equal(t, tt.wantPrice, p.Price)
			assert.Equal(t, tt.wantVolume, p.VolumeML)
		})
	}
}

func TestDefaultProduct(t *testing.T) {
	p := models.DefaultProduct()

	if assert.NotNil(t, p.SKU) {
		assert.Equal(t, models.DefaultProductSKU, *p.SKU)
	}
	assert.Equal(t, models.DefaultProductPrice, p.Price)
	assert.Equal(t, models.DefaultProductVolumeML, p.VolumeML)
	assert.Equal(t, "Beverages", p.Category)
	assert.True(t, p.InStock)
	assert.NotNil(t, p.ImageURL)
}
