package handlers

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/gasolinas-mx/gasolinas-skill/skill/alexa"
	"github.com/gasolinas-mx/gasolinas-skill/skill/audit"
)

// HelpIntentHandler explains how to ask for prices.
type HelpIntentHandler struct{}

func (HelpIntentHandler) CanHandle(in *Input) bool {
	return in.Envelope.Request.Type == alexa.RequestTypeIntent &&
		in.Envelope.IntentName() == alexa.IntentHelp
}

func (HelpIntentHandler) Handle(_ context.Context, _ *Input) (alexa.Response, error) {
	return alexa.NewBuilder().
		Speak(speechHelp).
		Reprompt(speechHelp).
		WithSimpleCard(cardTitleHelp, speechHelp).
		Build(), nil
}

// CancelStopIntentHandler says goodbye and ends the session.
type CancelStopIntentHandler struct{}

func (CancelStopIntentHandler) CanHandle(in *Input) bool {
	if in.Envelope.Request.Type != alexa.RequestTypeIntent {
		return false
	}
	name := in.Envelope.IntentName()
	return name == alexa.IntentCancel || name == alexa.IntentStop
}

func (CancelStopIntentHandler) Handle(_ context.Context, _ *Input) (alexa.Response, error) {
	return alexa.NewBuilder().
		Speak(speechFarewell).
		Build(), nil
}

// SessionEndedHandler acknowledges the end-of-session notification. The end
// reason and the raw request are logged, and written to the audit trail
// when one is configured; an insert failure never surfaces to the platform.
type SessionEndedHandler struct {
	audit audit.Store
}

func NewSessionEndedHandler(store audit.Store) *SessionEndedHandler {
	if store == nil {
		store = audit.NopStore{}
	}
	return &SessionEndedHandler{audit: store}
}

func (h *SessionEndedHandler) CanHandle(in *Input) bool {
	return in.Envelope.Request.Type == alexa.RequestTypeSessionEnded
}

func (h *SessionEndedHandler) Handle(ctx context.Context, in *Input) (alexa.Response, error) {
	raw := in.Envelope.MarshalRaw()
	log.Info().
		Str("session_id", in.Envelope.Session.SessionID).
		Str("reason", in.Envelope.Request.Reason).
		RawJSON("request", raw).
		Msg("session ended")

	rec := audit.Record{
		SessionID:   in.Envelope.Session.SessionID,
		RequestType: in.Envelope.Request.Type,
		Reason:      in.Envelope.Request.Reason,
		Payload:     raw,
	}
	if err := h.audit.Insert(ctx, rec); err != nil {
		log.Error().Err(err).Msg("cannot write session audit record")
	}

	return alexa.NewBuilder().Build(), nil
}
