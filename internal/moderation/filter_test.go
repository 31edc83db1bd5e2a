package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCensorsProfanity(t *testing.T) {
	f := NewFilter()
	out := f.Clean("you are an ass")
	assert.NotContains(t, out, "ass")
	assert.Contains(t, out, "*")
}

func TestCleanLeavesNormalTextAlone(t *testing.T) {
	f := NewFilter()
	assert.Equal(t, "hello from berlin", f.Clean("hello from berlin"))
}

func TestNilFilterPassesThrough(t *testing.T) {
	var f *Filter
	assert.Equal(t, "anything", f.Clean("anything"))
}
