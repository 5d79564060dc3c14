package scenetag

import "strings"

// knownGroups holds lower-cased release-group names seen in the wild.
// Matching is case-insensitive; the set is fixed at startup and read-only,
// so concurrent readers need no locking.
var knownGroups = map[string]struct{}{
	"v1p0n3":    {},
	"jaded":     {},
	"typeoserv": {},
	"cubert":    {},
	"cutthroat": {},
	"mud":       {},
	"blag":      {},
	"dike1999":  {},
	"sts":       {},
	"milka":     {},
	"srp":       {},
	"vfi":       {},
	"mv4":       {},
	"rerip":     {},
	"crds":      {},
	"nazty2005": {},
	"pmd":       {},
	"hdp":       {},
	"ldv":       {},
	"apv":       {},
	"msz":       {},
	"ma42":      {},
}

// knownSuffixes holds the short trailing markers groups append after their
// name (for example "-GroupName-nV").
var knownSuffixes = map[string]struct{}{
	"nv":  {},
	"hdp": {},
	"apv": {},
	"ldv": {},
	"msz": {},
	"ucv": {},
}

func isKnownGroup(name string) bool {
	_, ok := knownGroups[strings.ToLower(name)]
	return ok
}

func isKnownSuffix(s string) bool {
	_, ok := knownSuffixes[strings.ToLower(s)]
	return ok
}
