package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPasswordDeterministic(t *testing.T) {
	assert.Equal(t, HashPassword("secret"), HashPassword("secret"))
	assert.NotEqual(t, HashPassword("secret"), HashPassword("Secret"))
}

func TestHashPasswordNeverCleartext(t *testing.T) {
	digest := HashPassword("1234")
	assert.Len(t, digest, 64)
	assert.NotEqual(t, "1234", digest)
}
