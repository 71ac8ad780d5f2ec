package attainment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeDivide(t *testing.T) {
	assert.Equal(t, 2.5, SafeDivide(5, 2, 0))
	assert.Equal(t, 0.0, SafeDivide(5, 0, 0))
	assert.Equal(t, 100.0, SafeDivide(5, 0, 100))
	assert.Equal(t, 0.0, SafeDivide(0, 0, 0))
	assert.Equal(t, -2.0, SafeDivide(4, -2, 0))
}

func TestClampPercent(t *testing.T) {
	assert.Equal(t, 0.0, ClampPercent(-5))
	assert.Equal(t, 0.0, ClampPercent(0))
	assert.Equal(t, 42.5, ClampPercent(42.5))
	assert.Equal(t, 100.0, ClampPercent(100))
	assert.Equal(t, 100.0, ClampPercent(120))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 85.0, Round2(85.004))
	assert.Equal(t, 66.67, Round2(200.0/3.0))
	assert.Equal(t, 33.33, Round2(100.0/3.0))
	assert.Equal(t, 0.0, Round2(0))
}
