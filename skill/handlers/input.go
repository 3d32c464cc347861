package handlers

import (
	"context"

	"github.com/gasolinas-mx/gasolinas-skill/skill/alexa"
	"github.com/gasolinas-mx/gasolinas-skill/skill/device"
	"github.com/gasolinas-mx/gasolinas-skill/skill/prices"
	"github.com/gasolinas-mx/gasolinas-skill/skill/state"
)

// Input is the per-request context threaded through interceptors and
// handlers: the inbound envelope plus the mutable session attributes. One
// Input never outlives its request, so no locking is involved.
type Input struct {
	Envelope   *alexa.RequestEnvelope
	Attributes *state.Attributes
}

// Handler is one arm of the dispatch table. The first handler whose
// CanHandle returns true owns the request.
type Handler interface {
	CanHandle(in *Input) bool
	Handle(ctx context.Context, in *Input) (alexa.Response, error)
}

// Interceptor runs before dispatch and may enrich the session attributes.
// Interceptors are best-effort: they swallow collaborator failures and
// leave the attributes degraded instead of failing the request.
type Interceptor interface {
	Process(ctx context.Context, in *Input)
}

// AddressService resolves a device's short address, nil on any failure.
type AddressService interface {
	CountryAndPostalCode(ctx context.Context, sys alexa.System) *device.Address
}

// PriceService resolves local fuel prices, nil when none are available.
type PriceService interface {
	Lookup(ctx context.Context, postalCode string) *prices.Record
}
