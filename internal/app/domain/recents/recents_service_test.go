package recents

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddMostRecentFirst(t *testing.T) {
	s := NewService(nil)

	s.Add("castles in lisbon")
	s.Add("best pasteis de nata")

	assert.Equal(t, []string{"best pasteis de nata", "castles in lisbon"}, s.List())
}

func TestAddDeduplicatesAndMovesToFront(t *testing.T) {
	s := NewService(nil)

	s.Add("one")
	s.Add("two")
	s.Add("three")
	s.Add("one")

	assert.Equal(t, []string{"one", "three", "two"}, s.List())
}

func TestAddEvictsOldestPastCap(t *testing.T) {
	s := NewService(nil)

	s.Add("p1")
	s.Add("p2")
	s.Add("p3")
	s.Add("p4")
	s.Add("p5")
	s.Add("p6")

	assert.Equal(t, []string{"p6", "p5", "p4", "p3", "p2"}, s.List())
}

func TestAddIgnoresEmptyPrompt(t *testing.T) {
	s := NewService(nil)

	s.Add("")
	assert.Empty(t, s.List())
}

func TestClear(t *testing.T) {
	s := NewService(nil)

	s.Add("one")
	s.Clear()

	assert.Empty(t, s.List())
}
