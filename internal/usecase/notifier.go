package usecase

import "sync"

type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastInfo    ToastKind = "info"
	ToastWarning ToastKind = "warning"
	ToastError   ToastKind = "error"
)

// Toast is a short operator-facing notification.
type Toast struct {
	Kind        ToastKind
	Title       string
	Description string
}

// Notifier surfaces toasts to the operator.
type Notifier interface {
	Notify(t Toast)
}

type NotifierFunc func(t Toast)

func (f NotifierFunc) Notify(t Toast) {
	f(t)
}

type nopNotifier struct{}

func (nopNotifier) Notify(Toast) {}

func notifierOrNop(n Notifier) Notifier {
	if n == nil {
		return nopNotifier{}
	}
	return n
}

// RecordingNotifier keeps every toast, used by tests and batch commands.
type RecordingNotifier struct {
	mu     sync.Mutex
	toasts []Toast
}

func (r *RecordingNotifier) Notify(t Toast) {
	r.mu.Lock()
	r.toasts = append(r.toasts, t)
	r.mu.Unlock()
}

func (r *RecordingNotifier) Toasts() []Toast {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Toast, len(r.toasts))
	copy(out, r.toasts)
	return out
}

func (r *RecordingNotifier) Last() (Toast, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.toasts) == 0 {
		return Toast{}, false
	}
	return r.toasts[len(r.toasts)-1], true
}

func (r *RecordingNotifier) Count(kind ToastKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, t := range r.toasts {
		if t.Kind == kind {
			n++
		}
	}
	return n
}

func success(title, description string) Toast {
	return Toast{Kind: ToastSuccess, Title: title, Description: description}
}

func failure(title, description string) Toast {
	return Toast{Kind: ToastError, Title: title, Description: description}
}

func warning(title, description string) Toast {
	return Toast{Kind: ToastWarning, Title: title, Description: description}
}
