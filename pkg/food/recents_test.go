package food

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextRecentsPrepends(t *testing.T) {
	got := NextRecents([]string{"Bread", "Eggs"}, "Milk")
	assert.Equal(t, []string{"Milk", "Bread", "Eggs"}, got)
}

func TestNextRecentsDedupCaseInsensitive(t *testing.T) {
	got := NextRecents([]string{"Milk", "Bread"}, "milk")
	assert.Equal(t, []string{"milk", "Bread"}, got, "new spelling wins and moves to front")
}

func TestNextRecentsBlankIgnored(t *testing.T) {
	list := []string{"Milk"}
	assert.Equal(t, list, NextRecents(list, ""))
	assert.Equal(t, list, NextRecents(list, "   "))
}

func TestNextRecentsTrims(t *testing.T) {
	got := NextRecents(nil, "  Cheese  ")
	assert.Equal(t, []string{"Cheese"}, got)
}

func TestNextRecentsCap(t *testing.T) {
	var list []string
	for i := 0; i < MaxRecents+5; i++ {
		list = NextRecents(list, fmt.Sprintf("item-%d", i))
	}
	assert.Len(t, list, MaxRecents)
	assert.Equal(t, fmt.Sprintf("item-%d", MaxRecents+4), list[0], "most recent first")
	assert.Equal(t, "item-5", list[MaxRecents-1], "oldest entries fall off")
}
