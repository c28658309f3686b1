package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/bibbank/screening-service/pkg/events"
)

type fakePublisher struct {
	err    error
	events []events.DomainEvent
	mu     sync.Mutex
}

func (f *fakePublisher) Publish(_ context.Context, evts ...events.DomainEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, evts...)
	return nil
}

func (f *fakePublisher) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.EventType())
	}
	return out
}

type fakeRecorder struct {
	levels        []string
	duplicates    []bool
	intents       []string
	publishFailed []string
	mu            sync.Mutex
}

func (f *fakeRecorder) RiskAssessed(_ context.Context, level string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.levels = append(f.levels, level)
}

func (f *fakeRecorder) DuplicateChecked(_ context.Context, duplicate bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.duplicates = append(f.duplicates, duplicate)
}

func (f *fakeRecorder) QueryClassified(_ context.Context, intent string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.intents = append(f.intents, intent)
}

func (f *fakeRecorder) EventPublishFailed(_ context.Context, eventType string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.publishFailed = append(f.publishFailed, eventType)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
