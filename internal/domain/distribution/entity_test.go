package distribution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLifecycle(t *testing.T) {
	r, err := NewRequest(1, 2, 3, 5)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, r.Status)

	// 未批准不能送达
	assert.ErrorIs(t, r.MarkDelivered(), ErrNotApproved)

	require.NoError(t, r.Approve())
	assert.Equal(t, StatusApproved, r.Status)

	// 已审批不能再驳回
	assert.ErrorIs(t, r.Reject("缺货"), ErrAlreadyDecided)

	require.NoError(t, r.MarkDelivered())
	assert.Equal(t, StatusDelivered, r.Status)
}

func TestReject(t *testing.T) {
	r, err := NewRequest(1, 2, 3, 5)
	require.NoError(t, err)

	require.NoError(t, r.Reject("该配置停产"))
	assert.Equal(t, StatusRejected, r.Status)
	assert.Equal(t, "该配置停产", r.Reason)

	assert.ErrorIs(t, r.Approve(), ErrAlreadyDecided)
}

func TestNewRequest_InvalidQuantity(t *testing.T) {
	_, err := NewRequest(1, 2, 3, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}
