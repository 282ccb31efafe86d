package ucd

import "unicode"

// categoryLongNames spells out the two-letter general category codes.
var categoryLongNames = map[string]string{
	"Lu": "Uppercase Letter",
	"Ll": "Lowercase Letter",
	"Lt": "Titlecase Letter",
	"Lm": "Modifier Letter",
	"Lo": "Other Letter",
	"Mn": "Nonspacing Mark",
	"Mc": "Spacing Mark",
	"Me": "Enclosing Mark",
	"Nd": "Decimal Number",
	"Nl": "Letter Number",
	"No": "Other Number",
	"Pc": "Connector Punctuation",
	"Pd": "Dash Punctuation",
	"Ps": "Open Punctuation",
	"Pe": "Close Punctuation",
	"Pi": "Initial Punctuation",
	"Pf": "Final Punctuation",
	"Po": "Other Punctuation",
	"Sm": "Math Symbol",
	"Sc": "Currency Symbol",
	"Sk": "Modifier Symbol",
	"So": "Other Symbol",
	"Zs": "Space Separator",
	"Zl": "Line Separator",
	"Zp": "Paragraph Separator",
	"Cc": "Control",
	"Cf": "Format",
	"Cs": "Surrogate",
	"Co": "Private Use",
	"Cn": "Unassigned",
}

// categoryOrder fixes the probe order for categoryOf. The range tables are
// mutually exclusive, so the order only affects lookup speed, not results.
var categoryOrder = []string{
	"Ll", "Lu", "Lo", "Nd", "Po", "So", "Mn", "Lt", "Lm",
	"Mc", "Me", "Nl", "No", "Pc", "Pd", "Ps", "Pe", "Pi", "Pf",
	"Sm", "Sc", "Sk", "Zs", "Zl", "Zp", "Cc", "Cf", "Co", "Cs",
}

// categoryOf returns the general category code for r. Anything not covered
// by a range table is unassigned.
func categoryOf(r rune) string {
	for _, code := range categoryOrder {
		if unicode.Is(unicode.Categories[code], r) {
			return code
		}
	}
	return "Cn"
}
