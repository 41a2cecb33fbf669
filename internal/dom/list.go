package dom

import (
	"regexp"
	"regexp/syntax"
	"strings"

	"github.com/dmitrijs2005/webdiary/internal/ui"
)

// DefaultFlags are the pattern flags Filter uses when none are given.
const DefaultFlags = "ig"

// Highlight makes every item visible and unselected, then selects the item
// with key. Items are modified in place.
func Highlight(items []ui.ListItem, key string) {
	for i := range items {
		items[i].Visible = true
		items[i].Selected = items[i].Key == key
	}
}

// CompilePattern compiles the trimmed keyword with regexp-style flags:
// i (case-insensitive), m (multi-line), s (dot matches newline). g only
// affects repeated matching and is accepted and ignored. Any other flag, or
// a malformed keyword, yields a *syntax.Error.
func CompilePattern(keyword, flags string) (*regexp.Regexp, error) {
	if flags == "" {
		flags = DefaultFlags
	}

	var goFlags strings.Builder
	for _, f := range flags {
		switch f {
		case 'i', 'm', 's':
			if !strings.ContainsRune(goFlags.String(), f) {
				goFlags.WriteRune(f)
			}
		case 'g':
		default:
			return nil, &syntax.Error{Code: syntax.ErrorCode("invalid flags"), Expr: flags}
		}
	}

	expr := strings.TrimSpace(keyword)
	if goFlags.Len() > 0 {
		expr = "(?" + goFlags.String() + ")" + expr
	}
	return regexp.Compile(expr)
}

// Filter shows the items whose text content matches keyword and hides the
// rest. On a compile error the items are left untouched and the error is
// returned to the caller.
func Filter(items []ui.ListItem, keyword, flags string) error {
	re, err := CompilePattern(keyword, flags)
	if err != nil {
		return err
	}
	for i := range items {
		items[i].Visible = re.MatchString(items[i].TextContent())
	}
	return nil
}
