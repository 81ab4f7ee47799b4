package engine

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/nhle/taskbook/internal/model"
)

// NextID returns one more than the highest id in items, or 1 when items is
// empty. Archived ids are not considered.
func NextID(items model.Items) int {
	maxID := 0
	for id := range items {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

// idToken matches "@12" style item references.
var idToken = regexp.MustCompile(`^@[0-9]+$`)

// plainID is an id reference with an optional "@": digits only, no sign,
// no leading zero.
var plainID = regexp.MustCompile(`^@?[1-9][0-9]*$`)

func isIDToken(tok string) bool {
	return idToken.MatchString(tok)
}

// resolveIDs turns tokens like "3" or "@3" into ids present in items,
// dropping repeats after their first occurrence. The first token that does
// not resolve fails the whole call.
func resolveIDs(tokens []string, items model.Items) ([]int, error) {
	if len(tokens) == 0 {
		return nil, ErrMissingID
	}

	seen := make(map[int]bool, len(tokens))
	ids := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		if !plainID.MatchString(tok) {
			return nil, withDetail(ErrInvalidID, tok)
		}
		id, err := strconv.Atoi(strings.TrimPrefix(tok, "@"))
		if err != nil {
			return nil, withDetail(ErrInvalidID, tok)
		}
		if _, ok := items[id]; !ok {
			return nil, withDetail(ErrInvalidID, tok)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids, nil
}

// dedupe returns values with repeats removed, keeping first occurrences.
func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
