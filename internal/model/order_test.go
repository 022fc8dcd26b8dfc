package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanCancel(t *testing.T) {
	assert.True(t, CanCancel(StatusReceived))
	assert.True(t, CanCancel(StatusPaid))
	assert.True(t, CanCancel(StatusPending))
	assert.True(t, CanCancel(StatusApproved))

	assert.False(t, CanCancel(StatusInPreparation))
	assert.False(t, CanCancel(StatusCancelled))
	assert.False(t, CanCancel(StatusDelivered))
	assert.False(t, CanCancel("En camino"))
}

func TestOrderItem_LineTotal(t *testing.T) {
	item := OrderItem{UnitPrice: 4990, Quantity: 3}
	assert.Equal(t, 14970, item.LineTotal())
}
