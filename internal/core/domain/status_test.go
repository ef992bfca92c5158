package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestStatusValid(t *testing.T) {
	assert.True(t, RequestPending.Valid())
	assert.True(t, RequestApproved.Valid())
	assert.False(t, RequestStatus("REJECTED").Valid())
	assert.False(t, RequestStatus("").Valid())
}

func TestRequestStatusTransition(t *testing.T) {
	t.Run("pending to approved", func(t *testing.T) {
		next, err := RequestPending.Transition(RequestApproved)
		assert.NoError(t, err)
		assert.Equal(t, RequestApproved, next)
	})

	t.Run("every other pair is illegal", func(t *testing.T) {
		statuses := []RequestStatus{RequestPending, RequestApproved, RequestStatus("BOGUS")}
		for _, from := range statuses {
			for _, to := range statuses {
				if from == RequestPending && to == RequestApproved {
					continue
				}
				next, err := from.Transition(to)
				assert.ErrorIs(t, err, ErrIllegalTransition, "%s -> %s", from, to)
				assert.Equal(t, from, next, "failed transition must not move the status")
			}
		}
	})
}
