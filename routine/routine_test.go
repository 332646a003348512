package routine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRunSafeRecoversPanic(t *testing.T) {
	ran := false
	assert.NotPanics(t, func() {
		RunSafe(func() {
			ran = true
			panic("boom")
		})
	})
	assert.True(t, ran)
}

func TestRunSafeCleanupReceivesValue(t *testing.T) {
	var got interface{}
	RunSafe(func() {
		panic("value")
	}, func(r interface{}) {
		got = r
	})
	assert.Equal(t, "value", got)
}

func TestRunSafeNoPanicSkipsCleanup(t *testing.T) {
	called := false
	RunSafe(func() {}, func(r interface{}) {
		called = true
	})
	assert.False(t, called)
}

func TestGoSafeRecoversPanic(t *testing.T) {
	done := make(chan struct{})
	GoSafe(func() {
		defer close(done)
		panic("boom")
	})
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("goroutine never finished")
	}
}

func TestRunWithTimeoutSuccess(t *testing.T) {
	ok := RunWithTimeout(func() {
		time.Sleep(time.Millisecond)
	}, time.Second)
	assert.True(t, ok)
}

func TestRunWithTimeoutExpires(t *testing.T) {
	ok := RunWithTimeout(func() {
		time.Sleep(100 * time.Millisecond)
	}, time.Millisecond)
	assert.False(t, ok)
}

func TestNewRecoveredAsError(t *testing.T) {
	r := NewRecovered(0, "boom")
	err := r.AsError()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "boom")
	}

	var nilRecovered *Recovered
	assert.Nil(t, nilRecovered.AsError())
}
