package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprintStringIsStable(t *testing.T) {
	assert.Equal(t, FingerprintString("where"), FingerprintString("where"))
	assert.NotEqual(t, FingerprintString("where"), FingerprintString("having"))
}

func TestMix64OrderMatters(t *testing.T) {
	a := FingerprintString("a")
	b := FingerprintString("b")

	assert.Equal(t, Mix64(a, b), Mix64(a, b))
	assert.NotEqual(t, Mix64(a, b), Mix64(b, a))
}
