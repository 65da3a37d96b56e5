package notifications

import "slices"

// Snapshot is an independent copy of the store contents, newest first.
// Changing a Snapshot never affects the Store it came from.
type Snapshot []Notification

// Len returns the number of notifications in the snapshot.
func (s Snapshot) Len() int { return len(s) }

// UnreadCount counts notifications that have not been read.
func (s Snapshot) UnreadCount() int {
	n := 0
	for i := range s {
		if !s[i].IsRead {
			n++
		}
	}
	return n
}

// Unread returns the unread notifications, preserving order.
func (s Snapshot) Unread() Snapshot {
	return s.filter(func(n Notification) bool { return !n.IsRead })
}

// Read returns the read notifications, preserving order.
func (s Snapshot) Read() Snapshot {
	return s.filter(func(n Notification) bool { return n.IsRead })
}

// Find returns the notification with the given id.
func (s Snapshot) Find(id string) (Notification, bool) {
	for i := range s {
		if s[i].ID == id {
			return s[i], true
		}
	}
	return Notification{}, false
}

// Clone returns a copy that shares no memory with s.
func (s Snapshot) Clone() Snapshot {
	if s == nil {
		return Snapshot{}
	}
	return slices.Clone(s)
}

func (s Snapshot) filter(keep func(Notification) bool) Snapshot {
	out := make(Snapshot, 0, len(s))
	for _, n := range s {
		if keep(n) {
			out = append(out, n)
		}
	}
	return out
}
