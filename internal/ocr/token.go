package ocr

import "strings"

// canonicalUnits maps lowercased OCR tokens to the unit spelling reported
// in readings. Dials print a lot of text (brand, model, scale numbers);
// only tokens that look like a pressure/temperature unit are trusted.
var canonicalUnits = map[string]string{
	"kg/cm2":  "kg/cm2",
	"kg/cm²":  "kg/cm2",
	"kgf/cm2": "kg/cm2",
	"psi":     "psi",
	"bar":     "bar",
	"mbar":    "mbar",
	"mpa":     "MPa",
	"kpa":     "kPa",
	"%":       "%",
	"°c":      "°C",
	"°f":      "°F",
}

// pickUnitToken scans OCR output for a recognizable unit label. Returns
// the canonical spelling, or "" when no token matches.
func pickUnitToken(text string) string {
	for _, field := range strings.Fields(text) {
		token := strings.ToLower(strings.Trim(field, ".,:;()[]"))
		if unit, ok := canonicalUnits[token]; ok {
			return unit
		}
	}
	return ""
}
