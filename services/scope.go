package services

import (
	"sort"
	"strings"

	"review-advisor/models"
)

// ResolveScope turns a raw brand filter into a Scope. Empty input and "all"
// select every brand. A brand that the snapshot does not know also selects
// every brand; ok is false in that case so callers can report it.
func ResolveScope(snap *models.Snapshot, raw string) (scope models.Scope, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "all") {
		return models.Scope{}, true
	}

	wanted := CanonicalBrand(raw)
	for _, brand := range KnownBrands(snap) {
		if strings.EqualFold(brand, wanted) || strings.EqualFold(brand, raw) {
			return models.Scope{Brand: brand}, true
		}
	}
	return models.Scope{}, false
}

// KnownBrands lists every brand named anywhere in the snapshot, in first-seen
// order.
func KnownBrands(snap *models.Snapshot) []string {
	if snap == nil {
		return nil
	}

	seen := make(map[string]struct{})
	var brands []string
	add := func(b string) {
		key := strings.ToLower(b)
		if b == "" || key == strings.ToLower(unknownBrand) {
			return
		}
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		brands = append(brands, b)
	}

	for _, c := range snap.Advisor {
		add(c.Brand)
	}
	for _, c := range snap.Buyer.BrandAnalysis {
		add(c.Brand)
	}
	for _, c := range snap.Buyer.ModelAnalysis {
		add(c.Brand)
	}
	for _, c := range snap.Supplier.BrandOverview {
		add(c.Brand)
	}
	for _, b := range sortedKeys(snap.Buyer.BrandSegments) {
		add(b)
	}
	for _, b := range sortedKeys(snap.Supplier.BrandInsights) {
		add(b)
	}
	return brands
}

// SupplierBrands lists the known brands that carry a supplier brand summary,
// in KnownBrands order. Only these get a brand drill-down.
func SupplierBrands(snap *models.Snapshot) []string {
	var brands []string
	for _, brand := range KnownBrands(snap) {
		if _, in, ok := lookupBrand(snap.Supplier.BrandInsights, brand); ok && in.Summary != nil {
			brands = append(brands, brand)
		}
	}
	return brands
}

// lookupBrand finds brand in m ignoring case. It also returns the key that
// matched so callers can show the snapshot's spelling.
func lookupBrand[V any](m map[string]V, brand string) (string, V, bool) {
	if v, ok := m[brand]; ok {
		return brand, v, true
	}
	for _, k := range sortedKeys(m) {
		if strings.EqualFold(k, brand) {
			return k, m[k], true
		}
	}
	var zero V
	return "", zero, false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
