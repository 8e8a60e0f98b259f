package events

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPublishEmployeeRemoved(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	var wg sync.WaitGroup
	wg.Add(2)
	var got1, got2 EmployeeRemoved
	SubscribeEmployeeRemoved(func(e EmployeeRemoved) {
		got1 = e
		wg.Done()
	})
	SubscribeEmployeeRemoved(func(e EmployeeRemoved) {
		got2 = e
		wg.Done()
	})

	PublishEmployeeRemoved(EmployeeRemoved{
		EmployeeRef: "emp-1",
		Identifier:  "ENG2",
		DisplayName: "John Smith",
		Replacement: "[ENG2]",
	})
	wg.Wait()

	require.Equal(t, "ENG2", got1.Identifier)
	require.Equal(t, "[ENG2]", got2.Replacement)
}

func TestSubscriberPanicIsContained(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	done := make(chan struct{})
	SubscribePositionFilled(func(e PositionFilled) {
		panic("boom")
	})
	SubscribePositionFilled(func(e PositionFilled) {
		close(done)
	})

	PublishPositionFilled(PositionFilled{PositionRef: "pos-1", PositionID: "ENG3"})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("second subscriber never ran")
	}
}

func TestPublishWithoutSubscribers(t *testing.T) {
	t.Cleanup(Reset)
	Reset()
	PublishEmployeeRemoved(EmployeeRemoved{Identifier: "ENG1"})
	PublishPositionFilled(PositionFilled{PositionID: "ENG2"})
}
