package domain

import (
	"regexp"
	"strings"
	"time"
)

type EventStatus string

const (
	EventOpen      EventStatus = "open"
	EventClosed    EventStatus = "closed"
	EventCancelled EventStatus = "cancelled"
)

func (s EventStatus) Valid() bool {
	switch s {
	case EventOpen, EventClosed, EventCancelled:
		return true
	}
	return false
}

var eventTransitions = map[EventStatus][]EventStatus{
	EventOpen:      {EventClosed, EventCancelled},
	EventClosed:    {EventOpen, EventCancelled},
	EventCancelled: nil,
}

// CanTransitionTo reports whether an event may move from s to next.
// Staying in the same status is always allowed.
func (s EventStatus) CanTransitionTo(next EventStatus) bool {
	if s == next {
		return true
	}
	for _, to := range eventTransitions[s] {
		if to == next {
			return true
		}
	}
	return false
}

type Visibility string

const (
	VisibilityPublic   Visibility = "public"   // listed and readable by anyone
	VisibilityUnlisted Visibility = "unlisted" // readable by anyone with the slug
	VisibilityPrivate  Visibility = "private"  // host, admins and invitees only
)

func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPublic, VisibilityUnlisted, VisibilityPrivate:
		return true
	}
	return false
}

// Wording holds optional custom labels for the three answers.
type Wording struct {
	Yup   string `json:"yup,omitempty"`
	Nope  string `json:"nope,omitempty"`
	Maybe string `json:"maybe,omitempty"`
}

// Label returns the host's label for t, falling back to the answer itself.
func (w Wording) Label(t ResponseType) string {
	var s string
	switch t {
	case ResponseYup:
		s = w.Yup
	case ResponseNope:
		s = w.Nope
	case ResponseMaybe:
		s = w.Maybe
	}
	if s == "" {
		return string(t)
	}
	return s
}

func (w Wording) IsZero() bool { return w == Wording{} }

type Event struct {
	ID          string
	HostID      string
	Slug        string
	Title       string
	Description string
	Location    string
	StartsAt    time.Time
	EndsAt      *time.Time
	Status      EventStatus

	AllowGuestRSVP bool
	AllowPlusOnes  bool
	MaxPartySize   int  // 0 means no limit
	Capacity       *int // nil means unlimited

	Wording    Wording
	Visibility Visibility
	ImageURL   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasEnded reports whether the event is over at now. Events without an end
// time are considered over a day after they start.
func (e Event) HasEnded(now time.Time) bool {
	if e.EndsAt != nil {
		return now.After(*e.EndsAt)
	}
	return now.After(e.StartsAt.Add(24 * time.Hour))
}

const (
	SlugMinLen = 3
	SlugMaxLen = 80
)

var (
	slugRe      = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)
)

// ValidSlug checks the slug alphabet and length.
func ValidSlug(s string) bool {
	return len(s) >= SlugMinLen && len(s) <= SlugMaxLen && slugRe.MatchString(s)
}

// Slugify derives a slug from a title: lower-cased, runs of anything other
// than [a-z0-9] collapsed to '-', trimmed, and cut to leave room for a
// collision suffix. The result may still be too short to be valid.
func Slugify(title string) string {
	s := slugInvalid.ReplaceAllString(strings.ToLower(title), "-")
	s = strings.Trim(s, "-")
	if len(s) > SlugMaxLen-7 {
		s = strings.TrimRight(s[:SlugMaxLen-7], "-")
	}
	return s
}
