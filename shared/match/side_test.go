package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSide(t *testing.T) {
	assert.True(t, Home.Valid())
	assert.True(t, Away.Valid())
	assert.False(t, Side(2).Valid())

	assert.Equal(t, "HOME", Home.String())
	assert.Equal(t, "AWAY", Away.String())
	assert.Equal(t, "UNKNOWN", Side(-1).String())
}
