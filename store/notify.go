package store

import (
	"sync"
	"time"

	"github.com/papon78/RoyTopUpBazar/models"
)

const notificationTTL = 3 * time.Second

// notifier holds one transient toast per session, keyed by session id. It has
// its own lock so store operations can raise notifications while holding the
// state mutex. A session only ever sees toasts raised by its own actions.
type notifier struct {
	mu     sync.Mutex
	toasts map[string]*models.Notification
	timers map[string]*time.Timer
}

func newNotifier() *notifier {
	return &notifier{
		toasts: make(map[string]*models.Notification),
		timers: make(map[string]*time.Timer),
	}
}

func (n *notifier) show(sid, message string, typ models.NotificationType) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if t := n.timers[sid]; t != nil {
		t.Stop()
	}
	toast := &models.Notification{
		ID:      time.Now().UnixMilli(),
		Message: message,
		Type:    typ,
	}
	n.toasts[sid] = toast
	id := toast.ID
	n.timers[sid] = time.AfterFunc(notificationTTL, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		// A newer notification may have replaced this one meanwhile.
		if cur := n.toasts[sid]; cur != nil && cur.ID == id {
			delete(n.toasts, sid)
			delete(n.timers, sid)
		}
	})
}

func (n *notifier) get(sid string) *models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	cur := n.toasts[sid]
	if cur == nil {
		return nil
	}
	copied := *cur
	return &copied
}

func (n *notifier) hide(sid string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if t := n.timers[sid]; t != nil {
		t.Stop()
		delete(n.timers, sid)
	}
	delete(n.toasts, sid)
}

// ShowNotification surfaces a toast on the given session that auto-dismisses
// after a short interval.
func (s *Store) ShowNotification(sid, message string, typ models.NotificationType) {
	s.notifier.show(sid, message, typ)
}

// Notification returns the session's currently visible toast, or nil.
func (s *Store) Notification(sid string) *models.Notification {
	return s.notifier.get(sid)
}

// HideNotification dismisses the session's toast before its timer fires.
func (s *Store) HideNotification(sid string) {
	s.notifier.hide(sid)
}
