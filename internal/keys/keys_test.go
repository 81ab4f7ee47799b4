package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
)

func TestHelpListsEveryBinding(t *testing.T) {
	k := DefaultKeyMap()

	var all []key.Binding
	for _, group := range k.FullHelp() {
		all = append(all, group...)
	}
	assert.Len(t, all, 11)
	assert.Subset(t, all, k.ShortHelp())
}

func TestCheckAcceptsSpace(t *testing.T) {
	assert.Contains(t, DefaultKeyMap().Check.Keys(), " ")
}
