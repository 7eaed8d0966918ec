// Package share delivers invoice documents to the customer through a
// platform share capability, falling back to a WhatsApp deep link when no
// native share target is available.
package share

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// Outcome is the tagged result of a share attempt. A cancellation is the
// user closing the share target and is never an error.
type Outcome int

const (
	// OutcomeSucceeded means the share target accepted the document
	OutcomeSucceeded Outcome = iota

	// OutcomeCancelled means the user dismissed the share target
	OutcomeCancelled

	// OutcomeFailed means the share target rejected the request
	OutcomeFailed

	// OutcomeUnavailable means no native share target exists and the
	// caller should fall back to a message link
	OutcomeUnavailable
)

// String returns a human-readable outcome name
func (o Outcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeFailed:
		return "failed"
	case OutcomeUnavailable:
		return "unavailable"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Attachment is a named document handed to the share target
type Attachment struct {
	FileName string
	Content  []byte
}

// Request carries everything a share target needs
type Request struct {
	Title      string
	Text       string
	Phone      string
	Attachment *Attachment
}

// Sharer attempts to hand a document to a platform share target. The error
// is only set when the outcome is OutcomeFailed and carries the reason.
type Sharer interface {
	Share(ctx context.Context, req Request) (Outcome, error)
}

// StripPhone reduces a phone number to its digits for use in a message link
func StripPhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// WhatsAppLink builds a prefilled WhatsApp message link for the given phone
// number and text.
func WhatsAppLink(phone, text string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", StripPhone(phone), url.QueryEscape(text))
}
