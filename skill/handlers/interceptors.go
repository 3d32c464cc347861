package handlers

import (
	"context"

	"github.com/rs/zerolog/log"
)

// PostalCodeInterceptor captures the device postal code once per session.
// It only acts on the first request of a new session, and only when the
// user granted the location permission; the new-session guard is what makes
// the capture idempotent for the rest of the session.
type PostalCodeInterceptor struct {
	addresses AddressService
}

func NewPostalCodeInterceptor(addresses AddressService) *PostalCodeInterceptor {
	return &PostalCodeInterceptor{addresses: addresses}
}

func (i *PostalCodeInterceptor) Process(ctx context.Context, in *Input) {
	if !in.Envelope.HasConsentToken() || !in.Envelope.Session.New {
		return
	}

	addr := i.addresses.CountryAndPostalCode(ctx, in.Envelope.Context.System)
	if addr != nil && addr.PostalCode != "" {
		in.Attributes.PostalCode = addr.PostalCode
	}
}

// PricePrefetchInterceptor fetches local prices once a postal code is
// known. The PricesFetched flag guards the attempt: whatever the outcome,
// the session never issues a second fetch.
type PricePrefetchInterceptor struct {
	prices PriceService
}

func NewPricePrefetchInterceptor(prices PriceService) *PricePrefetchInterceptor {
	return &PricePrefetchInterceptor{prices: prices}
}

func (i *PricePrefetchInterceptor) Process(ctx context.Context, in *Input) {
	attrs := in.Attributes
	if attrs.PostalCode == "" || attrs.PricesFetched {
		return
	}

	record := i.prices.Lookup(ctx, attrs.PostalCode)
	attrs.SetLocalPrices(record)
	if record == nil {
		log.Info().Str("postal_code", attrs.PostalCode).Msg("no prices for postal code")
	}
}
