package state

import (
	"encoding/json"

	"github.com/gasolinas-mx/gasolinas-skill/skill/prices"
)

// Attribute keys as they travel in the session attributes map.
const (
	keyPostalCode    = "postalCode"
	keyLocalPrices   = "localPrices"
	keyFirstTimeDone = "firstTimeDone"
)

// Attributes is the session-scoped state threaded through interceptors and
// handlers. It lives only inside the platform's attribute round trip and is
// discarded with the session.
//
// LocalPrices is tri-state: PricesFetched=false means no fetch has been
// attempted yet, PricesFetched=true with a nil record means the fetch ran
// and found nothing (or failed). The distinction is what guarantees at most
// one fetch per session.
type Attributes struct {
	PostalCode    string
	LocalPrices   *prices.Record
	PricesFetched bool
	FirstTimeDone bool
}

// Decode rebuilds Attributes from the envelope's attribute map. Unknown
// keys are ignored; malformed values degrade to their zero state rather
// than failing the request.
func Decode(raw map[string]any) *Attributes {
	attrs := &Attributes{}
	if raw == nil {
		return attrs
	}

	if v, ok := raw[keyPostalCode].(string); ok {
		attrs.PostalCode = v
	}
	if v, ok := raw[keyFirstTimeDone].(bool); ok {
		attrs.FirstTimeDone = v
	}

	if v, ok := raw[keyLocalPrices]; ok {
		attrs.PricesFetched = true
		if v != nil {
			attrs.LocalPrices = decodeRecord(v)
		}
	}

	return attrs
}

// Encode flattens Attributes back into an attribute map for the response
// envelope. The localPrices key is emitted (possibly null) only once a
// fetch has been attempted, preserving the absent-vs-null distinction.
func (a *Attributes) Encode() map[string]any {
	out := make(map[string]any, 3)
	if a.PostalCode != "" {
		out[keyPostalCode] = a.PostalCode
	}
	if a.PricesFetched {
		if a.LocalPrices != nil {
			out[keyLocalPrices] = a.LocalPrices
		} else {
			out[keyLocalPrices] = nil
		}
	}
	if a.FirstTimeDone {
		out[keyFirstTimeDone] = a.FirstTimeDone
	}
	return out
}

// SetLocalPrices records the outcome of the one price fetch attempt for
// this session. A nil record stands for "fetched, nothing published".
func (a *Attributes) SetLocalPrices(record *prices.Record) {
	a.LocalPrices = record
	a.PricesFetched = true
}

func decodeRecord(v any) *prices.Record {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var record prices.Record
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil
	}
	return &record
}
