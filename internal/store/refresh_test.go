package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshNotifier_GenerationMonotonic(t *testing.T) {
	n := NewRefreshNotifier()
	assert.Equal(t, uint64(0), n.Latest())

	first := n.Trigger()
	second := n.Trigger()
	assert.Equal(t, uint64(1), first)
	assert.Equal(t, uint64(2), second)
	assert.Equal(t, second, n.Latest())
}

func TestRefreshNotifier_StaleResponseDetected(t *testing.T) {
	n := NewRefreshNotifier()

	// Экран снимает поколение перед запросом
	gen := n.Latest()

	// Пока запрос летел, случился ещё один Trigger
	n.Trigger()

	assert.False(t, n.IsCurrent(gen), "response fetched on an older generation must be discarded")
	assert.True(t, n.IsCurrent(n.Latest()))
}

func TestRefreshNotifier_SubscribeReceivesSignal(t *testing.T) {
	n := NewRefreshNotifier()
	ch, cancel := n.Subscribe()
	defer cancel()

	want := n.Trigger()

	select {
	case got := <-ch:
		assert.Equal(t, want, got)
	default:
		t.Fatal("expected a buffered generation signal")
	}
}

func TestRefreshNotifier_SlowSubscriberDoesNotBlock(t *testing.T) {
	n := NewRefreshNotifier()
	ch, cancel := n.Subscribe()
	defer cancel()

	// Буфер канала один; лишние сигналы молча пропускаются
	n.Trigger()
	n.Trigger()
	n.Trigger()

	got := <-ch
	assert.Equal(t, uint64(1), got)
	assert.Equal(t, uint64(3), n.Latest(), "subscriber catches up through Latest")
}

func TestRefreshNotifier_CancelStopsDelivery(t *testing.T) {
	n := NewRefreshNotifier()
	ch, cancel := n.Subscribe()
	cancel()

	n.Trigger()

	select {
	case <-ch:
		t.Fatal("cancelled subscription must not receive signals")
	default:
	}
}

func TestRefreshNotifier_MultipleSubscribers(t *testing.T) {
	n := NewRefreshNotifier()
	ch1, cancel1 := n.Subscribe()
	ch2, cancel2 := n.Subscribe()
	defer cancel1()
	defer cancel2()

	want := n.Trigger()

	require.Equal(t, want, <-ch1)
	require.Equal(t, want, <-ch2)
}
