package future

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellPublishOnce(t *testing.T) {
	c := newCell[int]()
	assert.True(t, c.publish(1, nil))
	assert.False(t, c.publish(2, nil))
	assert.True(t, c.isDone())
}

func TestCellOnReadyBeforePublish(t *testing.T) {
	c := newCell[int]()
	var got int
	var gotErr error
	c.onReady(func(v int, err error) {
		got, gotErr = v, err
	})
	assert.Equal(t, 0, got)

	c.publish(7, nil)
	assert.Equal(t, 7, got)
	require.NoError(t, gotErr)
}

func TestCellOnReadyAfterPublish(t *testing.T) {
	c := newCell[int]()
	sentinel := errors.New("x")
	c.publish(0, sentinel)

	var got error
	c.onReady(func(v int, err error) {
		got = err
	})
	assert.Equal(t, sentinel, got)
}
