// Package langver gates grammar productions that only exist from a
// given language version onward, backed by semver.Version so the CLI
// can accept the same "major.minor" spellings compilers in this family
// have always taken on the command line.
package langver

import (
	"github.com/Masterminds/semver/v3"
)

// Feature names gate individual grammar productions. Only the ones the
// parser actually branches on are listed; unknown names are simply
// never supported.
const (
	FeatureNullableReferenceTypes = "nullable-reference-types"
	FeatureGenerics               = "generics"
	FeatureIterators              = "iterators"
	FeatureNullCoalescing         = "null-coalescing"
)

var featureFloor = map[string]*semver.Version{
	FeatureGenerics:               semver.MustParse("2.0.0"),
	FeatureNullCoalescing:         semver.MustParse("2.0.0"),
	FeatureIterators:              semver.MustParse("2.0.0"),
	FeatureNullableReferenceTypes: semver.MustParse("3.0.0"),
}

// Version wraps a parsed language version and answers feature-gate
// queries the parser consults before accepting a version-gated
// production.
type Version struct {
	v *semver.Version
}

// Parse accepts the usual "3", "3.0", "3.0.0" spellings.
func Parse(s string) (Version, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return Version{}, err
	}

	return Version{v: v}, nil
}

// Default is the newest grammar this package knows how to gate.
func Default() Version {
	v, _ := Parse("3.0.0")

	return v
}

// Supports reports whether feature is available at v. An unknown
// feature name is always unsupported.
func (v Version) Supports(feature string) bool {
	floor, ok := featureFloor[feature]
	if !ok {
		return false
	}

	return !v.v.LessThan(floor)
}

func (v Version) String() string { return v.v.String() }
