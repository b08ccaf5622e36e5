package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 10))
	assert.Equal(t, "hel…", Truncate("hello world", 4))
	assert.Equal(t, "", Truncate("hello", 0))
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "title", FirstLine("\n  \n  title  \nbody"))
	assert.Equal(t, "", FirstLine(" \n "))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "87.50%", Percent(0.875, 2))
	assert.Equal(t, "12.3%", Percent(0.1234, 1))
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "999", FormatCount(999))
	assert.Equal(t, "1.5K", FormatCount(1500))
	assert.Equal(t, "2.0M", FormatCount(2_000_000))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-1, 0, 3))
	assert.Equal(t, 3, Clamp(9, 0, 3))
	assert.Equal(t, 0, Clamp(2, 0, -1))
}
