package engine

import (
	"strings"

	"github.com/nhle/taskbook/internal/model"
)

// ParsedInput is free-form item input split into its parts.
type ParsedInput struct {
	Description string
	Boards      []string
	Priority    model.Priority
}

// ParseInput classifies tokens independently of their position:
//
//   - "@name" tokens are boards, kept verbatim and in order, repeats included;
//   - the first "p:1", "p:2" or "p:3" sets the priority and is dropped;
//   - everything else, including later or malformed "p:" tokens, is joined
//     with single spaces into the description.
//
// Without boards the item goes to the default board; without a priority
// token it gets PriorityNormal.
func ParseInput(tokens []string) ParsedInput {
	out := ParsedInput{Priority: model.PriorityNormal}
	var words []string
	havePriority := false

	for _, tok := range tokens {
		if len(tok) > 1 && strings.HasPrefix(tok, "@") {
			out.Boards = append(out.Boards, tok)
			continue
		}
		if !havePriority {
			if p, ok := priorityToken(tok); ok {
				out.Priority = p
				havePriority = true
				continue
			}
		}
		words = append(words, tok)
	}

	out.Description = strings.Join(words, " ")
	if len(out.Boards) == 0 {
		out.Boards = []string{model.DefaultBoard}
	}
	return out
}

// priorityToken parses "p:1".."p:3".
func priorityToken(tok string) (model.Priority, bool) {
	rest, ok := strings.CutPrefix(tok, "p:")
	if !ok {
		return 0, false
	}
	return model.ParsePriority(rest)
}

// normalizeBoard maps a move target to its stored board name.
func normalizeBoard(tok string) string {
	switch {
	case tok == "myboard":
		return model.DefaultBoard
	case strings.HasPrefix(tok, "@"):
		return tok
	default:
		return "@" + tok
	}
}
