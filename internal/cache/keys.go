package cache

import "fmt"

const (
	KeyCities     = "catalog:cities"
	KeyCategories = "catalog:categories"
	KeyRecent     = "businesses:recent"
	KeyStats      = "stats:overview"
)

func KeyRecommended(cityID uint) string {
	if cityID == 0 {
		return "businesses:recommended"
	}
	return fmt.Sprintf("businesses:recommended:%d", cityID)
}
