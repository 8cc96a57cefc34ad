package filter

import (
	"path"
	"strings"
)

// negation rewrites fnmatch's "[!...]" classes into the "[^...]" form of
// path.Match.
var negation = strings.NewReplacer("[!", "[^")

// Glob matches name against an fnmatch-style pattern. A malformed pattern
// matches nothing.
func Glob(pattern, name string) bool {
	ok, err := path.Match(negation.Replace(pattern), name)
	return err == nil && ok
}

// CheckGlob returns path.ErrBadPattern for a malformed pattern.
func CheckGlob(pattern string) error {
	_, err := path.Match(negation.Replace(pattern), "")
	return err
}
