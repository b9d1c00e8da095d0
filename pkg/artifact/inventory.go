package artifact

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"digital.vasic.artifacts/pkg/scenario"
)

// Inventory lists every file in the results tree fsys that belongs
// to the scenario: files named <identity>.<ext> and files under a
// directory named after it. Paths are slash-separated and sorted.
//
// Identities only hold [a-z0-9._-], none of which is a glob meta
// character. A file of another scenario whose identity extends this
// one with a dot, such as login.v2.png for login, is not listed.
func Inventory(fsys fs.FS, id scenario.Identity) ([]string, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	name := id.String()

	seen := make(map[string]struct{})
	collect := func(pattern string, keep func(string) bool) error {
		return doublestar.GlobWalk(fsys, pattern, func(p string, d fs.DirEntry) error {
			if !d.IsDir() && keep(p) {
				seen[p] = struct{}{}
			}
			return nil
		})
	}

	ownFile := func(p string) bool {
		ext := strings.TrimPrefix(path.Base(p), name+".")
		return ext != "" && !strings.Contains(ext, ".")
	}
	if err := collect("**/"+name+".*", ownFile); err != nil {
		return nil, fmt.Errorf("inventory %s: %w", id, err)
	}
	if err := collect("**/"+name+"/**", func(string) bool { return true }); err != nil {
		return nil, fmt.Errorf("inventory %s: %w", id, err)
	}

	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out, nil
}
