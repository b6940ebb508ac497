package wizard

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/kalendo/kalendo/internal/utils"
	"github.com/kalendo/kalendo/pkg/eventlink"
	"github.com/kalendo/kalendo/pkg/timeparse"
	log "github.com/sirupsen/logrus"
)

const (
	promptTitle    = "📝 Enter the event title:"
	promptTime     = "⏰ Enter the event time:"
	promptLocation = "📍 Enter the event location:"

	msgBadDate         = "⚠️ Unrecognized date format. Try again:"
	msgBadTime         = "⚠️ Unrecognized time format. Try again:"
	msgNoSession       = "Nothing in progress. Use /addevent to create an event."
	msgNothingToCancel = "Nothing to cancel."
	msgCancelled       = "Event creation cancelled."
)

// ArtifactBuilder derives the calendar artifacts for a completed draft.
type ArtifactBuilder interface {
	Build(event eventlink.Event) (eventlink.DerivedEvent, error)
}

// Service is the dialogue controller: one state transition per inbound
// message, dispatched on the session's current step.
type Service struct {
	store   SessionStore
	builder ArtifactBuilder
	clock   utils.Clock
}

func NewService(store SessionStore, builder ArtifactBuilder, clock utils.Clock) *Service {
	return &Service{
		store:   store,
		builder: builder,
		clock:   clock,
	}
}

// Start enters the wizard for a conversation, replacing any session already
// in progress, and prompts for the title.
func (s *Service) Start(ctx context.Context, sessionID string) (Reply, error) {
	if err := s.store.Put(ctx, sessionID, Session{Step: StepTitle}); err != nil {
		return Reply{}, fmt.Errorf("failed to create session: %w", err)
	}
	log.Debugf("wizard started for session %s", sessionID)
	return Reply{Text: promptTitle}, nil
}

// HandleInput feeds one inbound message to the conversation's current step.
// A message with no text reaches this as an empty string: accepted as-is for
// title and location, rejected by the date and time steps.
func (s *Service) HandleInput(ctx context.Context, sessionID string, text string) (Reply, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return Reply{Text: msgNoSession}, nil
		}
		return Reply{}, fmt.Errorf("failed to load session: %w", err)
	}

	text = strings.TrimSpace(text)

	var reply Reply
	switch session.Step {
	case StepTitle:
		session.Draft.Title = text
		session.Step = StepDate
		reply = Reply{Text: s.datePrompt()}

	case StepDate:
		canonical, err := timeparse.ParseDate(text)
		if err != nil {
			log.Debugf("session %s: %v", sessionID, err)
			// Session untouched: same step answers the next message.
			return Reply{Text: msgBadDate}, nil
		}
		session.Draft.Date = canonical
		session.Step = StepTime
		reply = Reply{Text: promptTime}

	case StepTime:
		canonical, err := timeparse.ParseTime(text)
		if err != nil {
			log.Debugf("session %s: %v", sessionID, err)
			return Reply{Text: msgBadTime}, nil
		}
		session.Draft.Time = canonical
		session.Step = StepLocation
		reply = Reply{Text: promptLocation}

	case StepLocation:
		session.Draft.Location = text
		return s.finish(ctx, sessionID, session.Draft)

	default:
		return Reply{Text: msgNoSession}, nil
	}

	if err := s.store.Put(ctx, sessionID, session); err != nil {
		return Reply{}, fmt.Errorf("failed to save session: %w", err)
	}
	return reply, nil
}

// Cancel abandons an in-progress wizard, discarding its draft.
func (s *Service) Cancel(ctx context.Context, sessionID string) (Reply, error) {
	if _, err := s.store.Get(ctx, sessionID); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return Reply{Text: msgNothingToCancel}, nil
		}
		return Reply{}, fmt.Errorf("failed to load session: %w", err)
	}
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return Reply{}, fmt.Errorf("failed to delete session: %w", err)
	}
	return Reply{Text: msgCancelled, RemoveKeyboard: true}, nil
}

// finish builds the artifacts for the completed draft, tears the session
// down, and produces the confirmation reply.
func (s *Service) finish(ctx context.Context, sessionID string, draft EventDraft) (Reply, error) {
	derived, err := s.builder.Build(eventlink.Event{
		Title:    draft.Title,
		Date:     draft.Date,
		Time:     draft.Time,
		Location: draft.Location,
	})
	if err != nil {
		return Reply{}, fmt.Errorf("failed to build event artifacts: %w", err)
	}

	if err := s.store.Delete(ctx, sessionID); err != nil {
		return Reply{}, fmt.Errorf("failed to delete session: %w", err)
	}

	log.Infof("event created for session %s: %s %s", sessionID, draft.Date, draft.Time)
	text := fmt.Sprintf(
		"✅ Event saved!\n\n🔗 <b>Google Calendar</b>: <a href=\"%s\">Add %s to calendar</a>\n\n/addevent - create another event",
		derived.CalendarLink, html.EscapeString(draft.Title),
	)
	return Reply{Text: text, HTML: true, RemoveKeyboard: true}, nil
}

// datePrompt includes today and tomorrow as format hints.
func (s *Service) datePrompt() string {
	now := s.clock.Now()
	return fmt.Sprintf("📅 Enter the event date (e.g. %s or %s):",
		now.Format(timeparse.CanonicalDate),
		now.AddDate(0, 0, 1).Format(timeparse.CanonicalDate),
	)
}
