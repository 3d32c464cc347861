package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/gasolinas-mx/gasolinas-skill/skill/alexa"
	"github.com/gasolinas-mx/gasolinas-skill/skill/audit"
	"github.com/gasolinas-mx/gasolinas-skill/skill/state"
)

var ErrNoHandler = errors.New("no handler claimed the request")

// Dispatcher runs the two enrichment interceptors in order, then hands the
// request to the first handler whose predicate matches. A handler error or
// panic, or a request nothing claims, falls through to the error response;
// every request therefore terminates in a valid envelope.
type Dispatcher struct {
	interceptors []Interceptor
	handlers     []Handler
}

// New assembles the production dispatch table. Handler order is load
// bearing: the permission-aware launch handler must precede the fallback.
func New(addresses AddressService, priceSvc PriceService, auditStore audit.Store) *Dispatcher {
	return &Dispatcher{
		interceptors: []Interceptor{
			NewPostalCodeInterceptor(addresses),
			NewPricePrefetchInterceptor(priceSvc),
		},
		handlers: []Handler{
			LaunchHandler{},
			LaunchFallbackHandler{},
			PricesIntentHandler{},
			HelpIntentHandler{},
			CancelStopIntentHandler{},
			NewSessionEndedHandler(auditStore),
		},
	}
}

// Dispatch processes one request envelope end to end and always returns a
// response envelope carrying the updated session attributes.
func (d *Dispatcher) Dispatch(ctx context.Context, env *alexa.RequestEnvelope) alexa.ResponseEnvelope {
	in := &Input{
		Envelope:   env,
		Attributes: state.Decode(env.Session.Attributes),
	}

	for _, interceptor := range d.interceptors {
		interceptor.Process(ctx, in)
	}

	resp := d.handle(ctx, in)

	return alexa.ResponseEnvelope{
		Version:           "1.0",
		SessionAttributes: in.Attributes.Encode(),
		Response:          resp,
	}
}

func (d *Dispatcher) handle(ctx context.Context, in *Input) (resp alexa.Response) {
	defer func() {
		if r := recover(); r != nil {
			resp = errorResponse(fmt.Errorf("handler panic: %v", r))
		}
	}()

	for _, h := range d.handlers {
		if !h.CanHandle(in) {
			continue
		}
		out, err := h.Handle(ctx, in)
		if err != nil {
			return errorResponse(err)
		}
		return out
	}

	return errorResponse(ErrNoHandler)
}

// errorResponse is the terminal fallback: it logs the cause and apologises.
// It builds from constants only, so it cannot itself fail.
func errorResponse(err error) alexa.Response {
	log.Error().Err(err).Msg("error handled")
	return alexa.NewBuilder().
		Speak(speechError).
		Reprompt(speechError).
		Build()
}
