package usecase

import (
	"context"
	"errors"
	"sync"
)

// FormRequest submits one write and keeps the server's field errors so they
// can be shown next to the offending inputs.
type FormRequest struct {
	mu      sync.Mutex
	loading bool
	fields  *FieldErrors
	err     error
}

// Submit validates payload, when non-nil, then runs send. Field errors from
// either step are kept and returned.
func (f *FormRequest) Submit(ctx context.Context, payload any, send func(ctx context.Context) error) error {
	f.mu.Lock()
	if f.loading {
		f.mu.Unlock()
		return ErrBusy
	}
	f.loading = true
	f.fields = nil
	f.err = nil
	f.mu.Unlock()

	err := f.run(ctx, payload, send)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.loading = false
	f.err = err
	var fields *FieldErrors
	if errors.As(err, &fields) {
		f.fields = fields
	}
	return err
}

func (f *FormRequest) run(ctx context.Context, payload any, send func(ctx context.Context) error) error {
	if payload != nil {
		if err := validateStruct(ctx, payload); err != nil {
			return err
		}
	}
	return send(ctx)
}

func (f *FormRequest) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

// FieldErrors returns the errors of the last submission, or nil.
func (f *FormRequest) FieldErrors() *FieldErrors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

func (f *FormRequest) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}
