// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

package ecoscore

import (
	"strings"
)

// Intake categories.
const (
	CategoryDiet     = "diet"
	CategoryMobility = "mobility"
	CategoryFashion  = "fashion"
)

// factorCategory maps intake categories to factor table sections.
var factorCategory = map[string]string{
	CategoryDiet:     "food",
	CategoryMobility: "mobility",
	CategoryFashion:  "fashion",
}

var aliases = map[string]map[string]string{
	CategoryDiet: {
		"steak":       "beef",
		"ground_beef": "beef",
		"burger":      "beef",
		"chook":       "chicken",
		"poultry":     "chicken",
		"brown_rice":  "rice",
		"white_rice":  "rice",
	},
	CategoryFashion: {
		"tee":         "tshirt",
		"t-shirt":     "tshirt",
		"denim_pants": "jeans",
	},
	CategoryMobility: {
		"uber":   "car",
		"lyft":   "car",
		"tube":   "train",
		"subway": "train",
	},
}

// specific resolves generic items to a factor table row.
var specific = map[string]map[string]string{
	CategoryMobility: {
		"car": "car_petrol_km",
	},
}

// Canonicalise normalises a free-text item name within category: trimmed,
// lowercased, spaces replaced by underscores, then aliases resolved.
// Unknown categories only get the textual normalisation.
func Canonicalise(category, item string) string {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(item)), " ", "_")
	if canon, ok := aliases[category][key]; ok {
		return canon
	}
	return key
}

// resolve returns the factor table key for an item.
func resolve(category, item string) string {
	canon := Canonicalise(category, item)
	if s, ok := specific[category][canon]; ok {
		return s
	}
	return canon
}
