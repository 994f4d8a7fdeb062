package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/terroir-ai/backend/internal/antispam"
	"github.com/terroir-ai/backend/internal/apperr"
	"github.com/terroir-ai/backend/internal/model"
)

type mockWaitlistRepository struct {
	upsertFunc func(ctx context.Context, entry *model.WaitlistEntry) error
	countFunc  func(ctx context.Context, email string, since time.Time) (int, error)
	listFunc   func(ctx context.Context, opts model.ListOptions) ([]*model.WaitlistEntry, error)
}

func (m *mockWaitlistRepository) Upsert(ctx context.Context, entry *model.WaitlistEntry) error {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, entry)
	}
	return nil
}

func (m *mockWaitlistRepository) CountRecentByEmail(ctx context.Context, email string, since time.Time) (int, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx, email, since)
	}
	return 0, nil
}

func (m *mockWaitlistRepository) List(ctx context.Context, opts model.ListOptions) ([]*model.WaitlistEntry, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func TestWaitlistService_Signup_Success(t *testing.T) {
	var upserted *model.WaitlistEntry
	repo := &mockWaitlistRepository{
		upsertFunc: func(ctx context.Context, entry *model.WaitlistEntry) error {
			upserted = entry
			return nil
		},
	}
	notifier := newMockNotifier()
	svc := NewWaitlistService(repo, notifier)

	entry := &model.WaitlistEntry{Email: "bob@farm.example", Name: "Bob"}
	if err := svc.Signup(context.Background(), entry, antispam.Signals{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if upserted == nil {
		t.Fatal("expected Upsert to be called")
	}
	if upserted.Interest != "general" {
		t.Errorf("expected default interest=general, got %q", upserted.Interest)
	}
	if upserted.ID == "" {
		t.Error("expected ID to be generated")
	}

	select {
	case got := <-notifier.waitlists:
		if got.Email != "bob@farm.example" {
			t.Errorf("notifier received %q", got.Email)
		}
	case <-time.After(time.Second):
		t.Error("expected notification to be dispatched")
	}
}

func TestWaitlistService_Signup_KeepsExplicitInterest(t *testing.T) {
	var upserted *model.WaitlistEntry
	repo := &mockWaitlistRepository{
		upsertFunc: func(ctx context.Context, entry *model.WaitlistEntry) error {
			upserted = entry
			return nil
		},
	}
	svc := NewWaitlistService(repo, newMockNotifier())

	entry := &model.WaitlistEntry{Email: "bob@farm.example", Interest: "pilot"}
	if err := svc.Signup(context.Background(), entry, antispam.Signals{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if upserted.Interest != "pilot" {
		t.Errorf("expected interest=pilot kept, got %q", upserted.Interest)
	}
}

func TestWaitlistService_Signup_Spam(t *testing.T) {
	upsertCalled := false
	repo := &mockWaitlistRepository{
		upsertFunc: func(ctx context.Context, entry *model.WaitlistEntry) error {
			upsertCalled = true
			return nil
		},
	}
	svc := NewWaitlistService(repo, newMockNotifier())

	err := svc.Signup(context.Background(),
		&model.WaitlistEntry{Email: "bob@farm.example"},
		antispam.Signals{Honeypot: "filled"})
	if !errors.Is(err, apperr.ErrSpamDetected) {
		t.Fatalf("expected ErrSpamDetected, got %v", err)
	}
	if upsertCalled {
		t.Error("spam signup must not be persisted")
	}
}

func TestWaitlistService_Signup_EmailRequired(t *testing.T) {
	svc := NewWaitlistService(&mockWaitlistRepository{}, newMockNotifier())

	err := svc.Signup(context.Background(), &model.WaitlistEntry{}, antispam.Signals{})
	ve, ok := apperr.AsValidation(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Code != "email_required" {
		t.Errorf("expected email_required, got %q", ve.Code)
	}
}

func TestWaitlistService_Signup_RateLimited(t *testing.T) {
	repo := &mockWaitlistRepository{
		countFunc: func(ctx context.Context, email string, since time.Time) (int, error) {
			return 5, nil
		},
	}
	svc := NewWaitlistService(repo, newMockNotifier())

	err := svc.Signup(context.Background(),
		&model.WaitlistEntry{Email: "bob@farm.example"}, antispam.Signals{})
	if !errors.Is(err, apperr.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestWaitlistService_Signup_UpsertError(t *testing.T) {
	repo := &mockWaitlistRepository{
		upsertFunc: func(ctx context.Context, entry *model.WaitlistEntry) error {
			return errors.New("constraint violation")
		},
	}
	svc := NewWaitlistService(repo, newMockNotifier())

	err := svc.Signup(context.Background(),
		&model.WaitlistEntry{Email: "bob@farm.example"}, antispam.Signals{})
	if err == nil {
		t.Fatal("expected error from failed upsert")
	}
}

func TestWaitlistService_List_ForwardsOptions(t *testing.T) {
	var captured model.ListOptions
	repo := &mockWaitlistRepository{
		listFunc: func(ctx context.Context, opts model.ListOptions) ([]*model.WaitlistEntry, error) {
			captured = opts
			return nil, nil
		},
	}
	svc := NewWaitlistService(repo, newMockNotifier())

	_, err := svc.List(context.Background(), model.ListOptions{Limit: 100, Offset: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if captured.Limit != 100 || captured.Offset != 10 {
		t.Errorf("expected limit=100 offset=10, got %+v", captured)
	}
}
