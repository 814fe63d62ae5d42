package ui

import (
	"strings"
	"time"
)

type ToastKind int

const (
	ToastInfo ToastKind = iota
	ToastSuccess
	ToastError
)

// Notifier is the sink components report user-facing notices through.
// Keeping it an interface separates "what the logic decided to report"
// from how it is displayed; tests assert against a recording fake.
type Notifier interface {
	Notify(kind ToastKind, title, detail string)
}

// Multi fans a notice out to several sinks.
type Multi []Notifier

func (m Multi) Notify(kind ToastKind, title, detail string) {
	for _, n := range m {
		if n == nil {
			continue
		}
		n.Notify(kind, title, detail)
	}
}

type toast struct {
	kind     ToastKind
	title    string
	detail   string
	expireAt time.Time
}

// Tray collects toasts and renders the ones still alive. Now is
// injectable so expiry can be driven by a fake clock in tests.
type Tray struct {
	TTL time.Duration
	Now func() time.Time

	items []toast
}

func NewTray(ttl time.Duration) *Tray {
	if ttl <= 0 {
		ttl = 4 * time.Second
	}
	return &Tray{TTL: ttl, Now: time.Now}
}

func (t *Tray) Notify(kind ToastKind, title, detail string) {
	t.items = append(t.items, toast{
		kind:     kind,
		title:    title,
		detail:   detail,
		expireAt: t.Now().Add(t.TTL),
	})
}

// Prune drops expired toasts and reports whether any remain.
func (t *Tray) Prune() bool {
	now := t.Now()
	kept := t.items[:0]
	for _, it := range t.items {
		if it.expireAt.After(now) {
			kept = append(kept, it)
		}
	}
	t.items = kept
	return len(t.items) > 0
}

func (t *Tray) View() string {
	if len(t.items) == 0 {
		return ""
	}
	var b strings.Builder
	// Newest first.
	for i := len(t.items) - 1; i >= 0; i-- {
		it := t.items[i]
		line := it.title
		if it.detail != "" {
			line += ": " + it.detail
		}
		b.WriteString(toastStyle(it.kind).Render(line))
		if i > 0 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
