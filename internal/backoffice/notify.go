package backoffice

import (
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
)

// TopicNotify is the event bus topic every notification is published on.
const TopicNotify = "backoffice:notify"

const notifyTTL = 3 * time.Second

const (
	NotifySuccess = "success"
	NotifyError   = "error"
)

// Notification is a transient console message. Notifications do not queue: a
// new one replaces the current one, and each auto-dismisses after a fixed
// duration.
type Notification struct {
	ID      int64     `json:"id"`
	Type    string    `json:"type"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Notifier keeps the single active notification slot and mirrors every
// notification onto the event bus for any interested transport.
type Notifier struct {
	bus  EventBus.Bus
	node *snowflake.Node

	mu      sync.Mutex
	current *Notification
}

func NewNotifier(bus EventBus.Bus) *Notifier {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return &Notifier{bus: bus, node: node}
}

func (n *Notifier) Success(msg string) *Notification {
	return n.push(NotifySuccess, msg)
}

func (n *Notifier) Error(msg string) *Notification {
	return n.push(NotifyError, msg)
}

func (n *Notifier) push(kind, msg string) *Notification {
	note := &Notification{
		ID:      n.node.Generate().Int64(),
		Type:    kind,
		Message: msg,
		At:      time.Now(),
	}

	n.mu.Lock()
	n.current = note
	n.mu.Unlock()

	if kind == NotifyError {
		zap.L().Warn("console notification", zap.String("message", msg))
	} else {
		zap.L().Info("console notification", zap.String("message", msg))
	}
	if n.bus != nil {
		n.bus.Publish(TopicNotify, note)
	}

	id := note.ID
	time.AfterFunc(notifyTTL, func() { n.dismiss(id) })
	return note
}

func (n *Notifier) dismiss(id int64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current != nil && n.current.ID == id {
		n.current = nil
	}
}

// Current returns the active notification, nil once dismissed or replaced.
func (n *Notifier) Current() *Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}
