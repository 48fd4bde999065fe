// SPDX-License-Identifier: MIT

package messages

import (
	"fmt"
	"regexp"
	"strconv"
)

// Catalog keys recognized by the default catalog.
const (
	KeyNotNumeric  = "errNotNumeric"  // {0}: offending parameter label
	KeyTypeInvalid = "errTypeInvalid" // {0}: offending value label
	KeyOutOfRange  = "errOutOfRange"  // {0}: offending parameter label
)

// placeholder matches positional substitutions such as {0}, {1}, ...
var placeholder = regexp.MustCompile(`\{(\d+)\}`)

// Formatter renders the message stored under key, substituting subs
// positionally. Callers may supply their own Formatter to localize errors.
type Formatter func(key string, subs ...any) string

// Catalog maps message keys to templates containing {n} placeholders.
type Catalog map[string]string

// defaultCatalog is never handed out; Lookup and Format read it.
var defaultCatalog = Catalog{
	KeyNotNumeric:  "{0} must be a number.",
	KeyTypeInvalid: "The type of the {0} is invalid.",
	KeyOutOfRange:  "{0} is out of range.",
}

// Format renders key from c.
//
// Behavior highlights:
//   - {n} is replaced by fmt.Sprint(subs[n]).
//   - A placeholder without a matching substitution is kept verbatim.
//   - An unknown key renders as the key itself so no message is ever empty.
//
// Complexity: O(len(template)).
func (c Catalog) Format(key string, subs ...any) string {
	tpl, ok := c[key]
	if !ok {
		return key
	}
	if len(subs) == 0 {
		return tpl
	}

	return placeholder.ReplaceAllStringFunc(tpl, func(match string) string {
		i, err := strconv.Atoi(match[1 : len(match)-1])
		if err != nil || i >= len(subs) {
			return match
		}

		return fmt.Sprint(subs[i])
	})
}

// Formatter adapts c to the Formatter function type.
func (c Catalog) Formatter() Formatter {
	return c.Format
}

// Format renders key from the default catalog.
func Format(key string, subs ...any) string {
	return defaultCatalog.Format(key, subs...)
}

// Lookup returns the raw template stored under key in the default catalog.
func Lookup(key string) (string, bool) {
	tpl, ok := defaultCatalog[key]

	return tpl, ok
}

// Default returns a copy of the default catalog, suitable as a starting
// point for a localized Catalog.
func Default() Catalog {
	out := make(Catalog, len(defaultCatalog))
	for k, v := range defaultCatalog {
		out[k] = v
	}

	return out
}
