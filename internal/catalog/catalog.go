// Package catalog is the static vehicle reference data: manufacturers and
// models sold in the Venezuelan market, lubricant brands, and the
// maintenance intervals recommended for them. Pure lookups, no state beyond
// a memoization cache.
package catalog

import (
	"time"

	"github.com/patrickmn/go-cache"

	"auto-pana/garaje/internal/models"
)

// ModelSpec is one vehicle model of a manufacturer.
type ModelSpec struct {
	Slug                 string
	Name                 string
	Category             string
	IsOther              bool
	MaintenanceOverrides map[string]int
}

// ManufacturerSpec is one vehicle brand with its models and brand-wide
// interval defaults.
type ManufacturerSpec struct {
	Slug                        string
	Name                        string
	Country                     string
	DefaultMaintenanceIntervals map[string]int
	Models                      []ModelSpec
}

// LubricantBrand is one oil brand the user can pick.
type LubricantBrand struct {
	Slug    string
	Name    string
	Country string
	IsOther bool
}

// ItemTemplate is the seed for one maintenance item of a fresh vehicle.
type ItemTemplate struct {
	ID         string
	Name       string
	Icon       string
	IntervalKm int
}

// Catalog answers reference lookups. The merged interval maps are memoized
// per brand/model pair since they are recomputed on every vehicle creation
// and on every slug migration pass.
type Catalog struct {
	intervals *cache.Cache
}

// New creates a catalog with a long-lived memoization cache; the underlying
// tables never change at runtime.
func New() *Catalog {
	return &Catalog{
		intervals: cache.New(cache.NoExpiration, 0),
	}
}

// Manufacturers lists every known manufacturer, first-match order is
// significant for the brand migration heuristic.
func (c *Catalog) Manufacturers() []ManufacturerSpec {
	return manufacturers
}

// ManufacturerBySlug looks a manufacturer up by its slug.
func (c *Catalog) ManufacturerBySlug(slug string) (ManufacturerSpec, bool) {
	for _, m := range manufacturers {
		if m.Slug == slug {
			return m, true
		}
	}
	return ManufacturerSpec{}, false
}

// ModelsForBrand lists the models of a manufacturer, empty for unknown slugs.
func (c *Catalog) ModelsForBrand(brandSlug string) []ModelSpec {
	m, ok := c.ManufacturerBySlug(brandSlug)
	if !ok {
		return nil
	}
	return m.Models
}

// ModelBySlug looks a model up within a manufacturer.
func (c *Catalog) ModelBySlug(brandSlug, modelSlug string) (ModelSpec, bool) {
	for _, m := range c.ModelsForBrand(brandSlug) {
		if m.Slug == modelSlug {
			return m, true
		}
	}
	return ModelSpec{}, false
}

// LubricantBrands lists every known lubricant brand.
func (c *Catalog) LubricantBrands() []LubricantBrand {
	return lubricantBrands
}

// LubricantBySlug looks a lubricant brand up by its slug.
func (c *Catalog) LubricantBySlug(slug string) (LubricantBrand, bool) {
	for _, l := range lubricantBrands {
		if l.Slug == slug {
			return l, true
		}
	}
	return LubricantBrand{}, false
}

// MaintenanceInterval resolves the recommended interval for one item.
// Priority: model override > manufacturer default > global default.
func (c *Catalog) MaintenanceInterval(brandSlug, modelSlug, itemKey string) int {
	if model, ok := c.ModelBySlug(brandSlug, modelSlug); ok {
		if km, ok := model.MaintenanceOverrides[itemKey]; ok {
			return km
		}
	}
	if m, ok := c.ManufacturerBySlug(brandSlug); ok {
		if km, ok := m.DefaultMaintenanceIntervals[itemKey]; ok {
			return km
		}
	}
	return defaultMaintenanceIntervals[itemKey]
}

// AllMaintenanceIntervals merges the interval layers for a brand/model pair
// into one map over every known item key.
func (c *Catalog) AllMaintenanceIntervals(brandSlug, modelSlug string) map[string]int {
	cacheKey := brandSlug + "/" + modelSlug
	if cached, found := c.intervals.Get(cacheKey); found {
		return cached.(map[string]int)
	}

	result := make(map[string]int, len(defaultMaintenanceIntervals))
	for k, v := range defaultMaintenanceIntervals {
		result[k] = v
	}
	if m, ok := c.ManufacturerBySlug(brandSlug); ok {
		for k, v := range m.DefaultMaintenanceIntervals {
			result[k] = v
		}
	}
	if model, ok := c.ModelBySlug(brandSlug, modelSlug); ok {
		for k, v := range model.MaintenanceOverrides {
			result[k] = v
		}
	}

	c.intervals.Set(cacheKey, result, time.Duration(cache.NoExpiration))
	return result
}

// ItemTemplate returns the maintenance item seed list for a fuel type.
// Unknown fuel types fall back to the gasoline template.
func (c *Catalog) ItemTemplate(fuel models.FuelType) []ItemTemplate {
	switch fuel {
	case models.FuelDiesel:
		return dieselMaintenanceItems
	case models.FuelGNV:
		return gnvMaintenanceItems
	case models.FuelHibrido:
		return hybridMaintenanceItems
	default:
		return gasolineMaintenanceItems
	}
}
