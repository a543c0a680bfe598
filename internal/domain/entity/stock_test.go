package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveDirectionReceipt(t *testing.T) {
	to := uuid.New()
	d := Receipt(to)

	assert.True(t, d.Incoming())
	assert.Equal(t, to, d.Affected())
	assert.Equal(t, 5, d.SignedQty(5))
	assert.Nil(t, d.FromID())
	require.NotNil(t, d.ToID())
	assert.Equal(t, to, *d.ToID())
}

func TestMoveDirectionIssue(t *testing.T) {
	from := uuid.New()
	d := Issue(from)

	assert.False(t, d.Incoming())
	assert.Equal(t, from, d.Affected())
	assert.Equal(t, -5, d.SignedQty(5))
	assert.Nil(t, d.ToID())
	require.NotNil(t, d.FromID())
	assert.Equal(t, from, *d.FromID())
}

func TestMoveDirectionTransferLegs(t *testing.T) {
	from, to := uuid.New(), uuid.New()

	out := TransferOut(from, to)
	assert.False(t, out.Incoming())
	assert.Equal(t, from, out.Affected())
	assert.Equal(t, -3, out.SignedQty(3))

	in := TransferIn(from, to)
	assert.True(t, in.Incoming())
	assert.Equal(t, to, in.Affected())
	assert.Equal(t, 3, in.SignedQty(3))

	// Both legs carry the full route for the movement log
	require.NotNil(t, out.FromID())
	require.NotNil(t, out.ToID())
	require.NotNil(t, in.FromID())
	require.NotNil(t, in.ToID())
	assert.Equal(t, from, *in.FromID())
	assert.Equal(t, to, *out.ToID())
}
