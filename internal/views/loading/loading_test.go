package loading

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func settle(m *Model) {
	for i := 0; i < FPS*3; i++ {
		m.Step()
	}
}

func TestHiddenByDefault(t *testing.T) {
	m := New()
	assert.Zero(t, m.Opacity())
	assert.False(t, m.Animating())
	assert.Empty(t, m.View(80, 24))
}

func TestFadeInAndOut(t *testing.T) {
	m := New()
	m.SetVisible(true)
	assert.True(t, m.Target())
	assert.True(t, m.Animating())

	m.Step()
	assert.Greater(t, m.Opacity(), 0.0)
	assert.Less(t, m.Opacity(), 1.0)

	settle(&m)
	assert.Equal(t, 1.0, m.Opacity())
	assert.False(t, m.Animating())
	assert.True(t, strings.Contains(m.View(80, 24), "Loading..."))

	m.SetVisible(false)
	settle(&m)
	assert.Zero(t, m.Opacity())
	assert.Empty(t, m.View(80, 24))
}
