// Package naming provides shared section-name utilities.
package naming

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// semanticSections are the conventional all-caps top-level section names.
// Documents use these names to mark sections with well-known meaning.
var semanticSections = map[string]bool{
	"NAME":             true,
	"SYNOPSIS":         true,
	"DESCRIPTION":      true,
	"OPTIONS":          true,
	"ARGUMENTS":        true,
	"EXAMPLES":         true,
	"RETURN VALUE":     true,
	"ERRORS":           true,
	"DIAGNOSTICS":      true,
	"ENVIRONMENT":      true,
	"FILES":            true,
	"CAVEATS":          true,
	"BUGS":             true,
	"NOTES":            true,
	"SEE ALSO":         true,
	"AUTHOR":           true,
	"AUTHORS":          true,
	"COPYRIGHT":        true,
	"LICENSE":          true,
	"VERSION":          true,
	"HISTORY":          true,
	"ACKNOWLEDGEMENTS": true,
}

// IsSemantic reports whether name is one of the conventional all-caps
// section names. Matching is exact; "Name" is not semantic, "NAME" is.
func IsSemantic(name string) bool {
	return semanticSections[name]
}

// DisplayTitle converts a section name into display form. Semantic all-caps
// names are title-cased ("SEE ALSO" -> "See Also"); other names are
// returned unchanged.
func DisplayTitle(name string) string {
	if !IsSemantic(name) {
		return name
	}
	// Use golang.org/x/text/cases for proper Unicode title casing
	titleCaser := cases.Title(language.English)
	return titleCaser.String(strings.ToLower(name))
}
