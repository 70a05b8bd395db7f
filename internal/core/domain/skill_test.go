package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSkill_DisplayTitle tests the title fallback chain
func TestSkill_DisplayTitle(t *testing.T) {
	assert.Equal(t, "Fee Delegation", Skill{ID: "fee-delegation", Title: "Fee Delegation"}.DisplayTitle())
	assert.Equal(t, "fee-delegation", Skill{ID: "fee-delegation"}.DisplayTitle())
}

// TestSkill_HasKeyword tests case-insensitive keyword membership
func TestSkill_HasKeyword(t *testing.T) {
	s := Skill{ID: "fee-delegation", Keywords: []string{"fee", "gasless", "fee delegation"}}

	assert.True(t, s.HasKeyword("fee"))
	assert.True(t, s.HasKeyword("  GASLESS "))
	assert.True(t, s.HasKeyword("Fee Delegation"))
	assert.False(t, s.HasKeyword("sponsor"))
	assert.False(t, s.HasKeyword(""))
}
