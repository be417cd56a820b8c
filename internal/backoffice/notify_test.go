package backoffice

import (
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationsReplaceNotQueue(t *testing.T) {
	n := NewNotifier(nil)

	first := n.Success("saved")
	second := n.Error("boom")

	cur := n.Current()
	require.NotNil(t, cur)
	assert.Equal(t, second.ID, cur.ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestStaleDismissIsIgnored(t *testing.T) {
	n := NewNotifier(nil)

	first := n.Success("one")
	second := n.Success("two")

	// The first notification's dismissal fires after it was replaced; the
	// active one must survive.
	n.dismiss(first.ID)
	require.NotNil(t, n.Current())
	assert.Equal(t, second.ID, n.Current().ID)

	n.dismiss(second.ID)
	assert.Nil(t, n.Current())
}

func TestNotificationsPublishOnBus(t *testing.T) {
	bus := EventBus.New()
	n := NewNotifier(bus)

	got := make(chan *Notification, 1)
	require.NoError(t, bus.Subscribe(TopicNotify, func(note *Notification) {
		got <- note
	}))

	sent := n.Error("gateway down")
	select {
	case note := <-got:
		assert.Equal(t, sent.ID, note.ID)
		assert.Equal(t, NotifyError, note.Type)
	default:
		t.Fatal("notification not published on bus")
	}
}
