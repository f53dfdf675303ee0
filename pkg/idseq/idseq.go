// Package idseq generates sequential, human-readable record identifiers of the
// form <prefix><zero-padded number>, e.g. P0001, S0042, T0007.
//
// The next identifier is always computed from the records that currently exist
// in a scope (one user's collection). There is no persisted counter: callers read
// the scope's identifiers, call Next, and then write the new record. Two writers
// racing on the same scope can compute the same identifier; the store's unique
// index on (user_id, code) decides which one wins.
package idseq

import (
	"errors"
	"fmt"
	"strings"
)

// ErrScopeUnavailable marks a failure to read a scope's existing identifiers.
// Callers wrap it so a failed read is reported apart from a failed write.
var ErrScopeUnavailable = errors.New("failed to prepare record")

// Width is the minimum number of digits in the numeric suffix. Larger numbers
// are never truncated: P9999 is followed by P10000.
const Width = 4

// Next returns the identifier that follows the highest numbered identifier in
// existing carrying the given prefix. Identifiers with another prefix or with a
// suffix that is not a plain decimal number are ignored.
func Next(prefix string, existing []string) string {
	latest := 0
	for _, id := range existing {
		n, ok := Parse(prefix, id)
		if !ok {
			continue
		}
		if n > latest {
			latest = n
		}
	}
	return Format(prefix, latest+1)
}

// Format renders n with prefix, left-padding the number with zeros to Width.
func Format(prefix string, n int) string {
	return fmt.Sprintf("%s%0*d", prefix, Width, n)
}

// Parse extracts the numeric suffix of id. It reports false when id does not
// start with prefix or the remainder is not made of ASCII digits only.
func Parse(prefix, id string) (int, bool) {
	if !strings.HasPrefix(id, prefix) {
		return 0, false
	}
	digits := id[len(prefix):]
	if digits == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		// Suffixes long enough to overflow are treated as malformed.
		if n > (maxInt-int(c-'0'))/10 {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

const maxInt = int(^uint(0) >> 1)
