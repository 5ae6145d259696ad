// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package share

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"imoguru/internal/models"
)

type fakeTracker struct {
	calls []models.Platform
	err   error
}

func (f *fakeTracker) Increment(_ uuid.UUID, platform models.Platform) error {
	f.calls = append(f.calls, platform)
	return f.err
}

type fakeMailer struct {
	to, subject, body string
	err               error
}

func (f *fakeMailer) Send(_ context.Context, to, subject, htmlBody string) error {
	f.to, f.subject, f.body = to, subject, htmlBody
	return f.err
}

func TestDispatchWhatsApp(t *testing.T) {
	tracker := &fakeTracker{}
	d := NewDispatcher(tracker, nil)

	action, err := d.Dispatch(context.Background(), Request{
		Platform:   models.PlatformWhatsApp,
		PropertyID: uuid.New(),
		Message:    "Casa à venda: R$ 450.000,00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(action.URL, "https://wa.me/?text=") {
		t.Errorf("url = %q", action.URL)
	}
	if strings.ContainsAny(action.URL, " à") {
		t.Errorf("url not escaped: %q", action.URL)
	}
	if !action.CopyToClipboard {
		t.Error("whatsapp should request a clipboard copy")
	}
	if len(tracker.calls) != 1 || tracker.calls[0] != models.PlatformWhatsApp {
		t.Errorf("tracker calls = %v", tracker.calls)
	}
}

func TestDispatchEmailServerSide(t *testing.T) {
	mailer := &fakeMailer{}
	d := NewDispatcher(&fakeTracker{}, mailer)

	action, err := d.Dispatch(context.Background(), Request{
		Platform:     models.PlatformEmail,
		PropertyID:   uuid.New(),
		Message:      "<p>Casa X</p>",
		EmailTo:      "cliente@example.com",
		EmailSubject: "Casa X",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !action.EmailSent {
		t.Error("expected EmailSent")
	}
	if action.URL != "" {
		t.Errorf("server-side email should not produce a deep link, got %q", action.URL)
	}
	if mailer.to != "cliente@example.com" || mailer.subject != "Casa X" {
		t.Errorf("mailer got to=%q subject=%q", mailer.to, mailer.subject)
	}
}

func TestDispatchEmailFallsBackToMailto(t *testing.T) {
	d := NewDispatcher(&fakeTracker{}, nil)

	action, err := d.Dispatch(context.Background(), Request{
		Platform:     models.PlatformEmail,
		PropertyID:   uuid.New(),
		Message:      "<p>Casa X</p>",
		EmailSubject: "Casa X",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if action.EmailSent {
		t.Error("no mailer configured, EmailSent must be false")
	}
	if !strings.HasPrefix(action.URL, "mailto:") {
		t.Errorf("url = %q", action.URL)
	}
	if !strings.Contains(action.URL, "subject=") || !strings.Contains(action.URL, "body=") {
		t.Errorf("mailto missing subject/body: %q", action.URL)
	}
}

func TestDispatchEmailSendFailure(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("ses down")}
	d := NewDispatcher(&fakeTracker{}, mailer)

	_, err := d.Dispatch(context.Background(), Request{
		Platform:   models.PlatformEmail,
		PropertyID: uuid.New(),
		Message:    "Casa X",
		EmailTo:    "cliente@example.com",
	})
	if err == nil {
		t.Fatal("expected error when the mailer fails")
	}
}

func TestDispatchFacebookIncludesLink(t *testing.T) {
	d := NewDispatcher(&fakeTracker{}, nil)

	action, err := d.Dispatch(context.Background(), Request{
		Platform:   models.PlatformFacebook,
		PropertyID: uuid.New(),
		Message:    "Casa X",
		Link:       "https://demo/imoveis/IMV-0001",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(action.URL, "https://www.facebook.com/sharer/sharer.php?") {
		t.Errorf("url = %q", action.URL)
	}
	if !strings.Contains(action.URL, "u=https%3A%2F%2Fdemo%2Fimoveis%2FIMV-0001") {
		t.Errorf("listing link missing from %q", action.URL)
	}
}

func TestDispatchPrintHasNoURL(t *testing.T) {
	d := NewDispatcher(&fakeTracker{}, nil)

	action, err := d.Dispatch(context.Background(), Request{
		Platform:   models.PlatformPrint,
		PropertyID: uuid.New(),
		Message:    "Casa X",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if action.URL != "" || action.CopyToClipboard {
		t.Errorf("print action should be passive, got %+v", action)
	}
}

func TestDispatchEmptyMessage(t *testing.T) {
	tracker := &fakeTracker{}
	d := NewDispatcher(tracker, nil)

	_, err := d.Dispatch(context.Background(), Request{
		Platform:   models.PlatformWhatsApp,
		PropertyID: uuid.New(),
		Message:    "   ",
	})
	if !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("err = %v, want ErrEmptyMessage", err)
	}
	if len(tracker.calls) != 0 {
		t.Error("input errors must not record usage")
	}
}

func TestDispatchUnsupportedPlatform(t *testing.T) {
	d := NewDispatcher(&fakeTracker{}, nil)

	_, err := d.Dispatch(context.Background(), Request{
		Platform: models.Platform("telegram"),
		Message:  "Casa X",
	})
	if !errors.Is(err, ErrUnsupportedPlatform) {
		t.Fatalf("err = %v, want ErrUnsupportedPlatform", err)
	}
}

func TestDispatchTrackerFailureDoesNotAbort(t *testing.T) {
	tracker := &fakeTracker{err: errors.New("db down")}
	d := NewDispatcher(tracker, nil)

	action, err := d.Dispatch(context.Background(), Request{
		Platform:   models.PlatformWhatsApp,
		PropertyID: uuid.New(),
		Message:    "Casa X",
	})
	if err != nil {
		t.Fatalf("tracking failure must not fail the dispatch: %v", err)
	}
	if action == nil || action.URL == "" {
		t.Error("expected a usable action despite the tracking failure")
	}
}
