package planner

import (
	"context"
	"fmt"
	"log/slog"

	"eventPlanner/internal/codec"
	"eventPlanner/internal/models"
)

// CreateEvent publishes a new event and returns its identifier.
func (s *Service) CreateEvent(ctx context.Context, data models.EventData, coHosts []string) (string, error) {
	const op = "planner.CreateEvent"

	if _, err := s.requireUser(op); err != nil {
		return "", err
	}

	id := s.newIdentifier("event")

	draft, err := codec.BuildEvent(data, id, coHosts, "")
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err := s.relay.Publish(ctx, draft); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	s.cache.InvalidateScope(scopeEvents)

	s.log.Info("event created", slog.String("event_id", id))

	return id, nil
}

// UpdateEvent republishes event id with new data. Callers check that the
// current user created the event.
func (s *Service) UpdateEvent(ctx context.Context, id string, data models.EventData, coHosts []string) error {
	const op = "planner.UpdateEvent"

	if _, err := s.requireUser(op); err != nil {
		return err
	}

	draft, err := codec.BuildEvent(data, id, coHosts, "")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.relay.Publish(ctx, draft); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.InvalidateScope(scopeEvents)
	s.cache.Invalidate(scopeEvent, id)

	s.log.Info("event updated", slog.String("event_id", id))

	return nil
}

// SubmitRSVP publishes the current user's answer to an event, replacing any
// earlier answer.
func (s *Service) SubmitRSVP(ctx context.Context, eventID, creatorID string, rsvp models.RSVP) error {
	const op = "planner.SubmitRSVP"

	pk, err := s.requireUser(op)
	if err != nil {
		return err
	}

	if !rsvp.Status.Valid() {
		return fmt.Errorf("%s: %w: status %q", op, ErrInvalidRSVP, rsvp.Status)
	}

	draft, err := codec.BuildRSVP(rsvp, eventID, creatorID, pk)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.relay.Publish(ctx, draft); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(scopeUserRSVP, eventID)
	s.cache.Invalidate(scopeEventRSVPs, eventID)

	s.log.Info("rsvp submitted", slog.String("event_id", eventID), slog.String("status", string(rsvp.Status)))

	return nil
}

// PostUpdate publishes an announcement for an event. Only its creator may.
func (s *Service) PostUpdate(ctx context.Context, eventID, creatorID, content string, typ models.UpdateType) (string, error) {
	const op = "planner.PostUpdate"

	pk, err := s.requireUser(op)
	if err != nil {
		return "", err
	}

	if pk != creatorID {
		return "", fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	id := s.newIdentifier("update")

	if err := s.relay.Publish(ctx, codec.BuildUpdate(id, content, eventID, creatorID, typ)); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(scopeEventUpdates, eventID)

	s.log.Info("event update posted", slog.String("event_id", eventID), slog.String("type", string(models.NormalizeUpdateType(string(typ)))))

	return id, nil
}

// RSVPStatusMessage describes a submitted RSVP to the user.
func RSVPStatusMessage(status models.RSVPStatus) string {
	switch status {
	case models.StatusYes:
		return "Your RSVP was successfully accepted"
	case models.StatusNo:
		return "Your RSVP was successfully declined"
	default:
		return "Your RSVP was successfully marked as maybe"
	}
}

// UpdateTitle is the headline shown after posting an update of type typ.
func UpdateTitle(typ models.UpdateType) string {
	switch typ {
	case models.UpdateCancellation:
		return "Event Cancelled"
	case models.UpdateChange:
		return "Event Change Posted"
	default:
		return "Update Posted"
	}
}
