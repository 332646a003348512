package future

import (
	"errors"
	"fmt"
	"time"
)

// ExampleNewPromise demonstrates creating a Promise and resolving it
// from another goroutine.
func ExampleNewPromise() {
	promise := NewPromise[string]()
	future, _ := promise.GetConsumer()

	go func() {
		time.Sleep(10 * time.Millisecond)
		_ = promise.SetValue("promise result")
	}()

	result, _ := future.Get()
	fmt.Println(result)
	// Output: promise result
}

// ExamplePromise_SetError demonstrates a Promise resolved with an
// error instead of a value.
func ExamplePromise_SetError() {
	promise := NewPromise[string]()
	future, _ := promise.GetConsumer()

	_ = promise.SetError(errors.New("failed"))

	_, err := future.Get()
	if err != nil {
		fmt.Println("Error received")
	}
	// Output: Error received
}

// ExamplePromise_SetValue_twice demonstrates that a second SetValue
// reports ErrAlreadySet instead of panicking.
func ExamplePromise_SetValue_twice() {
	promise := NewPromise[int]()
	_ = promise.SetValue(42)
	err := promise.SetValue(100)
	fmt.Println(errors.Is(err, ErrAlreadySet))
	// Output: true
}

// ExampleReady demonstrates the ready-outcome constructor, which never
// allocates a cell.
func ExampleReady() {
	f := Ready(42)
	result, _ := f.Get()
	fmt.Println(result)
	// Output: 42
}

// ExampleThen demonstrates chaining a value-returning continuation.
func ExampleThen() {
	promise := NewPromise[int]()
	f, _ := promise.GetConsumer()
	_ = promise.SetValue(10)

	mapped := Then(f, func(val int, err error) (string, error) {
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Result: %d", val*2), nil
	})

	result, _ := mapped.Get()
	fmt.Println(result)
	// Output: Result: 20
}

// ExampleThenCompose demonstrates flattening a continuation that itself
// returns a Future.
func ExampleThenCompose() {
	f := Ready(1)
	composed := ThenCompose(f, func(val int, err error) *Future[string] {
		return Ready(fmt.Sprintf("value=%d", val))
	})

	result, _ := composed.Get()
	fmt.Println(result)
	// Output: value=1
}

// ExampleWaitAllSlice demonstrates waiting for a runtime-sized set of
// homogeneous futures.
func ExampleWaitAllSlice() {
	p1, p2, p3 := NewPromise[int](), NewPromise[int](), NewPromise[int]()
	c1, _ := p1.GetConsumer()
	c2, _ := p2.GetConsumer()
	c3, _ := p3.GetConsumer()

	_ = p1.SetValue(1)
	_ = p2.SetValue(2)
	_ = p3.SetValue(3)

	agg := WaitAllSlice([]*Future[int]{c1, c2, c3})
	slots, _ := agg.Get()
	for _, s := range slots {
		v, _ := s.Get()
		fmt.Println(v)
	}
	// Output: 1
	// 2
	// 3
}
