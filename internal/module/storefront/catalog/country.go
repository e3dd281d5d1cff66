package catalog

import "strings"

// countryAliases folds the spellings seen in feed records and filter input
// to 3-letter ISO form: 2-letter codes and common English names. Unknown
// values pass through upcased, so two records using the same unknown
// spelling still match each other.
var countryAliases = map[string]string{
	"at":             "AUT",
	"au":             "AUS",
	"be":             "BEL",
	"br":             "BRA",
	"ca":             "CAN",
	"ch":             "CHE",
	"de":             "DEU",
	"es":             "ESP",
	"fr":             "FRA",
	"gb":             "GBR",
	"uk":             "GBR",
	"hu":             "HUN",
	"it":             "ITA",
	"jp":             "JPN",
	"mc":             "MCO",
	"mx":             "MEX",
	"nl":             "NLD",
	"pt":             "PRT",
	"qa":             "QAT",
	"sg":             "SGP",
	"us":             "USA",
	"austria":        "AUT",
	"australia":      "AUS",
	"belgium":        "BEL",
	"brazil":         "BRA",
	"canada":         "CAN",
	"switzerland":    "CHE",
	"germany":        "DEU",
	"spain":          "ESP",
	"france":         "FRA",
	"great britain":  "GBR",
	"united kingdom": "GBR",
	"hungary":        "HUN",
	"italy":          "ITA",
	"japan":          "JPN",
	"monaco":         "MCO",
	"mexico":         "MEX",
	"netherlands":    "NLD",
	"portugal":       "PRT",
	"qatar":          "QAT",
	"singapore":      "SGP",
	"united states":  "USA",
	"usa":            "USA",
}

// NormalizeCountry maps a country value of unknown form to 3-letter ISO
// form. Both filter values and record values must pass through here before
// any comparison.
func NormalizeCountry(v string) string {
	s := strings.ToLower(strings.TrimSpace(v))
	if s == "" {
		return ""
	}

	if iso, ok := countryAliases[s]; ok {
		return iso
	}

	return strings.ToUpper(s)
}
