package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerations(t *testing.T) {
	g := NewGenerations()
	key := GenerationKey("s1", "exams")

	first := g.Next(key)
	second := g.Next(key)
	assert.False(t, g.IsCurrent(key, first), "an older request is stale once a newer one starts")
	assert.True(t, g.IsCurrent(key, second))

	other := g.Next(GenerationKey("s2", "exams"))
	assert.True(t, g.IsCurrent(GenerationKey("s2", "exams"), other), "sessions do not interfere")

	g.Forget("s1")
	assert.False(t, g.IsCurrent(key, second))
	assert.Equal(t, uint64(1), g.Next(key))
	assert.True(t, g.IsCurrent(GenerationKey("s2", "exams"), other))
}
