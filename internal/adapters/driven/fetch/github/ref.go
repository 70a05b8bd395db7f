package github

import (
	"fmt"
	"strings"

	"github.com/skilldex-labs/skilldex-cli/internal/core/ports/driven"
)

// ParsePackRef parses a pack reference of the form "owner/repo[/dir][@ref]".
//
// The directory may span several path segments; the git ref, when present,
// follows the last "@". Examples:
//
//	vechain/skills
//	vechain/skills/packs/sdk
//	vechain/skills@v2
//	vechain/skills/packs/sdk@main
func ParsePackRef(s string) (driven.PackRef, error) {
	var ref driven.PackRef

	rest := strings.TrimSpace(s)
	if rest == "" {
		return ref, fmt.Errorf("parse pack ref: empty reference")
	}

	if at := strings.LastIndex(rest, "@"); at >= 0 {
		ref.Ref = rest[at+1:]
		rest = rest[:at]
		if ref.Ref == "" {
			return driven.PackRef{}, fmt.Errorf("parse pack ref %q: empty git ref after @", s)
		}
	}

	parts := strings.Split(rest, "/")
	if len(parts) < 2 {
		return driven.PackRef{}, fmt.Errorf("parse pack ref %q: expected owner/repo", s)
	}
	for _, part := range parts {
		if part == "" {
			return driven.PackRef{}, fmt.Errorf("parse pack ref %q: empty path segment", s)
		}
	}

	ref.Owner = parts[0]
	ref.Repo = parts[1]
	if len(parts) > 2 {
		ref.Dir = strings.Join(parts[2:], "/")
	}

	return ref, nil
}
