package message

import (
	"sort"
	"sync"

	"styledecor/internal/domain/user"

	"github.com/google/uuid"
)

type entry struct {
	msg     *Message
	pending bool
	order   int64
}

// Thread is the per-booking view of a chat. Pending entries are optimistic
// appends awaiting persistence; they are either confirmed or rolled back.
type Thread struct {
	mu        sync.Mutex
	bookingID uuid.UUID
	entries   []entry
	nextOrder int64
}

func NewThread(bookingID uuid.UUID, stored []*Message) *Thread {
	t := &Thread{bookingID: bookingID}
	for _, m := range stored {
		t.entries = append(t.entries, entry{msg: m, order: t.bump()})
	}
	t.sortLocked()
	return t
}

func (t *Thread) bump() int64 {
	t.nextOrder++
	return t.nextOrder
}

func (t *Thread) BookingID() uuid.UUID { return t.bookingID }

func (t *Thread) AppendPending(m *Message) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = append(t.entries, entry{msg: m, pending: true, order: t.bump()})
	t.sortLocked()
}

// Confirm swaps the pending entry for the stored copy.
func (t *Thread) Confirm(pendingID uuid.UUID, stored *Message) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.indexLocked(pendingID)
	if i < 0 || !t.entries[i].pending {
		return ErrNotFound
	}
	t.entries[i] = entry{msg: stored, order: t.entries[i].order}
	t.sortLocked()
	return nil
}

// Rollback drops a pending entry. Confirmed messages are never removed.
func (t *Thread) Rollback(pendingID uuid.UUID) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.indexLocked(pendingID)
	if i < 0 || !t.entries[i].pending {
		return ErrNotFound
	}
	t.entries = append(t.entries[:i], t.entries[i+1:]...)
	return nil
}

// Messages returns the thread ascending by timestamp, ties by insertion.
func (t *Thread) Messages() []*Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*Message, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.msg
	}
	return out
}

func (t *Thread) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

func (t *Thread) HasPending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, e := range t.entries {
		if e.pending {
			return true
		}
	}
	return false
}

// UnreadCount counts confirmed messages unread for viewer.
func (t *Thread) UnreadCount(viewer string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, e := range t.entries {
		if !e.pending && e.msg.IsUnreadFor(viewer) {
			n++
		}
	}
	return n
}

// MarkRead records viewer on every confirmed message and returns how many
// changed.
func (t *Thread) MarkRead(viewer string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, e := range t.entries {
		if e.pending || !e.msg.IsUnreadFor(viewer) {
			continue
		}
		e.msg.readBy[user.NormalizeEmail(viewer)] = struct{}{}
		n++
	}
	return n
}

func (t *Thread) indexLocked(id uuid.UUID) int {
	for i, e := range t.entries {
		if e.msg.ID() == id {
			return i
		}
	}
	return -1
}

func (t *Thread) sortLocked() {
	sort.SliceStable(t.entries, func(i, j int) bool {
		a, b := t.entries[i], t.entries[j]
		if !a.msg.timestamp.Equal(b.msg.timestamp) {
			return a.msg.timestamp.Before(b.msg.timestamp)
		}
		// stored seq wins over local order once both sides are persisted
		if a.msg.seq != 0 && b.msg.seq != 0 {
			return a.msg.seq < b.msg.seq
		}
		return a.order < b.order
	})
}
