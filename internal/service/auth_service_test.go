package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Verify(t *testing.T) {
	svc, err := NewAuthService("sabron", "sabronwamudha1")
	require.NoError(t, err)

	assert.True(t, svc.Verify("sabron", "sabronwamudha1"))
	assert.False(t, svc.Verify("sabron", "wrong"))
	assert.False(t, svc.Verify("wrong", "sabronwamudha1"))
	assert.False(t, svc.Verify("", ""))
}
