package services

import (
	"regexp"
	"strings"
)

const unknownBrand = "Unknown"

var tokenRegexp = regexp.MustCompile(`[a-z0-9]+`)

// brandAliases maps whole normalized names to their parent brand.
var brandAliases = map[string]string{
	"apple iphone":      "Apple",
	"iphone":            "Apple",
	"samsung galaxy":    "Samsung",
	"galaxy":            "Samsung",
	"pixel":             "Google",
	"tecno pova":        "Tecno",
	"infinix note":      "Infinix",
	"iqoo neo":          "iQOO",
	"nothing phone":     "Nothing Phone",
	"nothing phone (2)": "Nothing Phone",
}

// brandTokens maps a single token anywhere in the name to a brand.
var brandTokens = map[string]string{
	"apple":    "Apple",
	"iphone":   "Apple",
	"samsung":  "Samsung",
	"galaxy":   "Samsung",
	"pixel":    "Google",
	"google":   "Google",
	"oneplus":  "OnePlus",
	"oppo":     "Oppo",
	"vivo":     "Vivo",
	"motorola": "Motorola",
	"moto":     "Motorola",
	"nokia":    "Nokia",
	"sony":     "Sony",
	"xiaomi":   "Xiaomi",
	"redmi":    "Xiaomi",
	"poco":     "Poco",
	"tecno":    "Tecno",
	"infinix":  "Infinix",
	"iqoo":     "iQOO",
	"asus":     "Asus",
	"lenovo":   "Lenovo",
	"huawei":   "Huawei",
	"honor":    "Honor",
	"realme":   "Realme",
	"htc":      "HTC",
	"lg":       "LG",
}

// CanonicalBrand folds sub-brands and spelling variants onto the parent brand
// name. Unrecognized names are title-cased; empty names become "Unknown".
func CanonicalBrand(raw string) string {
	name := normaliseText(raw)
	if name == "" {
		return unknownBrand
	}

	lower := strings.ToLower(name)
	if brand, ok := brandAliases[lower]; ok {
		return brand
	}

	tokens := tokenRegexp.FindAllString(lower, -1)
	for _, tok := range tokens {
		if brand, ok := brandTokens[tok]; ok {
			return brand
		}
	}
	if len(tokens) >= 2 && tokens[0] == "nothing" && tokens[1] == "phone" {
		return "Nothing Phone"
	}

	words := strings.Fields(lower)
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}
