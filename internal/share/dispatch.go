// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package share

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"imoguru/internal/models"
)

// Input errors — reported to the caller before any side effect happens.
var (
	ErrEmptyMessage        = errors.New("share: empty message")
	ErrUnsupportedPlatform = errors.New("share: unsupported platform")
)

// Tracker records share usage. Increments are best-effort: Dispatch logs
// failures and proceeds.
type Tracker interface {
	Increment(propertyID uuid.UUID, platform models.Platform) error
}

// EmailSender delivers a share by email server-side. Nil means the email
// channel degrades to a mailto: deep link.
type EmailSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// Request carries everything one dispatch call needs.
type Request struct {
	Platform   models.Platform
	PropertyID uuid.UUID

	// Message is the channel-formatted message for the target surface.
	Message string

	// Link is the public listing URL used by link-based surfaces.
	Link string

	// Images are the selected photo URLs, passed through to the client.
	Images []string

	// EmailTo/EmailSubject apply to the email platform only.
	EmailTo      string
	EmailSubject string
}

// Action is what the API client should do to complete the share. The
// server can't open windows or write clipboards — it hands back the deep
// link and the text, and the client performs the gesture. A client-side
// clipboard failure degrades the share, it never aborts it.
type Action struct {
	Platform models.Platform `json:"platform"`

	// URL is the deep link or platform surface to open. Empty for print.
	URL string `json:"url,omitempty"`

	// Message is the text the client should copy to the clipboard.
	Message string `json:"message"`

	// CopyToClipboard tells the client to attempt the copy before
	// opening the surface. The two steps are not transactional.
	CopyToClipboard bool `json:"copy_to_clipboard"`

	// EmailSent is true when the server already delivered the share
	// through SES and no client gesture is needed.
	EmailSent bool `json:"email_sent,omitempty"`

	Images []string `json:"images,omitempty"`
}

// Dispatcher performs the platform-specific share action and records
// best-effort usage telemetry.
type Dispatcher struct {
	tracker Tracker
	mailer  EmailSender
}

// NewDispatcher creates a dispatcher. mailer may be nil.
func NewDispatcher(tracker Tracker, mailer EmailSender) *Dispatcher {
	return &Dispatcher{tracker: tracker, mailer: mailer}
}

// Dispatch runs one share: validate input, build the platform action
// (sending the email server-side when possible), then record usage.
// Tracking failures are logged and ignored — they are telemetry, not
// part of the dispatch contract.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (*Action, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, ErrEmptyMessage
	}
	if !req.Platform.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedPlatform, req.Platform)
	}

	action := &Action{
		Platform: req.Platform,
		Message:  req.Message,
		Images:   req.Images,
	}

	switch req.Platform {
	case models.PlatformWhatsApp:
		action.URL = "https://wa.me/?text=" + url.QueryEscape(req.Message)
		action.CopyToClipboard = true

	case models.PlatformEmail:
		if d.mailer != nil && req.EmailTo != "" {
			if err := d.mailer.Send(ctx, req.EmailTo, req.EmailSubject, req.Message); err != nil {
				return nil, fmt.Errorf("dispatch email: %w", err)
			}
			action.EmailSent = true
		} else {
			q := url.Values{}
			q.Set("subject", req.EmailSubject)
			q.Set("body", ToChannelFormat(req.Message, FormatPlainText))
			action.URL = "mailto:" + req.EmailTo + "?" + q.Encode()
		}

	case models.PlatformFacebook:
		q := url.Values{}
		q.Set("u", req.Link)
		q.Set("quote", req.Message)
		action.URL = "https://www.facebook.com/sharer/sharer.php?" + q.Encode()
		action.CopyToClipboard = true

	case models.PlatformMessenger:
		action.URL = "https://www.facebook.com/messages/new"
		action.CopyToClipboard = true

	case models.PlatformInstagram:
		// Instagram has no share deep link with prefilled text; open the
		// surface and rely on the clipboard copy.
		action.URL = "https://www.instagram.com/"
		action.CopyToClipboard = true

	case models.PlatformPrint:
		// Print is client-local: the artifact comes from the export
		// endpoint and the browser's print dialog does the rest.
	}

	if d.tracker != nil {
		if err := d.tracker.Increment(req.PropertyID, req.Platform); err != nil {
			slog.Warn("share tracking failed",
				"property_id", req.PropertyID,
				"platform", req.Platform,
				"error", err,
			)
		}
	}

	return action, nil
}
