package ui

import (
	"testing"

	"github.com/acarl005/stripansi"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestColor(t *testing.T) {
	assert.Equal(t, "hello", stripansi.Strip(Color("red", "hello")))
	assert.Equal(t, "hello", stripansi.Strip(Color("bold", "hello")))
	assert.Equal(t, "hello", Color("no-such-color", "hello"))
}

func TestConfigureColors(t *testing.T) {
	previous := color.NoColor
	defer func() { color.NoColor = previous }()

	ConfigureColors("never")
	assert.Equal(t, color.NoColor, true)

	ConfigureColors("always")
	assert.Equal(t, color.NoColor, false)

	ConfigureColors("auto")
	assert.Equal(t, color.NoColor, false)
}
