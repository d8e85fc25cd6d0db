package rag

import (
	"context"
	"io"
	"log/slog"
	"time"
)

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeGenerator returns scripted responses in order and counts calls.
type fakeGenerator struct {
	responses []string
	errs      []error
	calls     int
	prompts   []string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string, _ time.Duration) (string, error) {
	i := f.calls
	f.calls++
	f.prompts = append(f.prompts, prompt)
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	var resp string
	if i < len(f.responses) {
		resp = f.responses[i]
	}
	return resp, err
}

// fakePDFStore serves extracted text from a map and counts lookups.
type fakePDFStore struct {
	texts map[string]string
	err   error
	calls int
}

func (f *fakePDFStore) TextByFileName(_ context.Context, fileName string) (string, bool, error) {
	f.calls++
	if f.err != nil {
		return "", false, f.err
	}
	text, ok := f.texts[fileName]
	return text, ok, nil
}

// fakeDocStore returns fixed batches per tier and counts tier calls.
type fakeDocStore struct {
	priority      []Document
	contextDocs   []Document
	priorityErr   error
	contextErr    error
	priorityCalls int
	contextCalls  int
	lastSubject   string
	lastPhrase    string
}

func (f *fakeDocStore) SearchPriority(_ context.Context, subject string) ([]Document, error) {
	f.priorityCalls++
	f.lastSubject = subject
	return f.priority, f.priorityErr
}

func (f *fakeDocStore) SearchContext(_ context.Context, phrase string) ([]Document, error) {
	f.contextCalls++
	f.lastPhrase = phrase
	return f.contextDocs, f.contextErr
}
