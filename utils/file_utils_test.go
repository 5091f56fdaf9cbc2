package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomImageName(t *testing.T) {
	t.Run("keeps extension lowercased", func(t *testing.T) {
		name := RandomImageName("House Photo.JPG")
		assert.True(t, strings.HasSuffix(name, ".jpg"))
		assert.NotContains(t, name, " ")
		assert.NotContains(t, name, "-")
	})

	t.Run("defaults to jpg without extension", func(t *testing.T) {
		name := RandomImageName("photo")
		assert.True(t, strings.HasSuffix(name, ".jpg"))
	})

	t.Run("names do not collide", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			name := RandomImageName("a.png")
			assert.False(t, seen[name])
			seen[name] = true
		}
	})
}
