package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuleWordBoundaries(t *testing.T) {
	r := rule("pet", "cat", "pupp*")

	assert.True(t, r.Pattern.MatchString("my Cats"))
	assert.True(t, r.Pattern.MatchString("a puppy!"))
	assert.False(t, r.Pattern.MatchString("concatenate"))
	assert.False(t, r.Pattern.MatchString("catalog"))
}

func TestFirstMatch(t *testing.T) {
	rules := []Rule{rule("a", "alpha"), rule("b", "beta")}

	m, ok := FirstMatch(rules, "BETA then Alpha")
	assert.True(t, ok)
	assert.Equal(t, Match{Category: "a", Term: "Alpha"}, m)

	_, ok = FirstMatch(rules, "gamma")
	assert.False(t, ok)
}

func TestAllMatches(t *testing.T) {
	rules := []Rule{rule("a", "alpha"), rule("b", "beta"), rule("c", "gamma")}

	got := AllMatches(rules, "gamma, alpha, alpha")
	assert.Equal(t, []Match{{Category: "a", Term: "alpha"}, {Category: "c", Term: "gamma"}}, got)
	assert.Empty(t, AllMatches(rules, ""))
}
