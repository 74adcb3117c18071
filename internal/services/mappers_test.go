package services

import (
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullIntToPtr(t *testing.T) {
	assert.Nil(t, nullIntToPtr(null.Int{}))
	assert.Nil(t, nullIntToPtr(null.NewInt(7, false)))

	got := nullIntToPtr(null.IntFrom(42))
	require.NotNil(t, got)
	assert.Equal(t, uint64(42), *got)
}
