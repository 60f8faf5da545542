package models

// Product is the canonical catalog entry returned by the API and stored in
// the "aroniaproduct" collection.
type Product struct {
	Title       string  `json:"title" bson:"title"`
	Description string  `json:"description" bson:"description"`
	Price       float64 `json:"price" bson:"price"`
	Category    string  `json:"category" bson:"category"`
	InStock     bool    `json:"in_stock" bson:"in_stock"`
	ImageURL    *string `json:"image_url" bson:"image_url,omitempty"`
	SKU         *string `json:"sku" bson:"sku,omitempty"`
	VolumeML    int     `json:"volume_ml" bson:"volume_ml"`
}

// Fixed values for the product seeded into an empty catalog.
const (
	DefaultProductSKU      = "ARONIA-750ML"
	DefaultProductPrice    = 12.90
	DefaultProductVolumeML = 750
)

// DefaultProduct returns the record seeded when the catalog is empty.
func DefaultProduct() Product {
	imageURL := "https://images.unsplash.com/photo-1626595424320-b872d5efaa11?auto=format&fit=crop&w=1600&q=80"
	sku := DefaultProductSKU
	return Product{
		Title:       "Aronia Pure - 100% Chokeberry Juice",
		Description: "Cold-pressed from fresh aronia berries, unfiltered to retain natural goodness. Tart, rich, and invigorating.",
		Price:       DefaultProductPrice,
		Category:    "Beverages",
		InStock:     true,
		ImageURL:    &imageURL,
		SKU:         &sku,
		VolumeML:    DefaultProductVolumeML,
	}
}

// ProductFromDocument maps a loosely-typed store record into the canonical
// Product shape, defaulting missing fields and coercing numeric and boolean
// types. It performs no store access so it can be tested in isolation.
func ProductFromDocument(doc map[string]interface{}) Product {
	return Product{
		Title:       asString(doc["title"]),
		Description: asString(doc["description"]),
		Price:       asFloat(doc["price"], 0),
		Category:    asString(doc["category"]),
		InStock:     asBool(doc["in_stock"], true),
		ImageURL:    asOptionalString(doc["image_url"]),
		SKU:         asOptionalString(doc["sku"]),
		VolumeML:    asInt(doc["volume_ml"], 750),
	}
}

func asString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func asOptionalString(v interface{}) *string {
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}

func asFloat(v interface{}, fallback float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	}
	return fallback
}

func asInt(v interface{}, fallback int) int {
	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float64:
		return int(n)
	case float32:
		return int(n)
	}
	return fallback
}

func asBool(v interface{}, fallback bool) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return fallback
}
