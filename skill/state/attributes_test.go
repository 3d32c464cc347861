package state

import (
	"encoding/json"
	"testing"

	"github.com/gasolinas-mx/gasolinas-skill/skill/prices"
)

func TestDecodeEmpty(t *testing.T) {
	t.Parallel()

	attrs := Decode(nil)
	if attrs.PostalCode != "" || attrs.PricesFetched || attrs.FirstTimeDone {
		t.Fatalf("Decode(nil) = %+v, want zero attributes", attrs)
	}
}

func TestDecodeDistinguishesAbsentFromNull(t *testing.T) {
	t.Parallel()

	absent := Decode(map[string]any{"postalCode": "01000"})
	if absent.PricesFetched {
		t.Fatal("absent localPrices key must mean not-yet-fetched")
	}

	null := Decode(map[string]any{"postalCode": "01000", "localPrices": nil})
	if !null.PricesFetched {
		t.Fatal("null localPrices must mean fetched-and-empty")
	}
	if null.LocalPrices != nil {
		t.Fatalf("LocalPrices = %+v, want nil", null.LocalPrices)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	dieselMax := 23.1
	attrs := &Attributes{
		PostalCode:    "01000",
		FirstTimeDone: true,
	}
	attrs.SetLocalPrices(&prices.Record{
		MunicipalityName: "CDMX",
		StateName:        "Ciudad de México",
		Stations:         3,
		RegularMax:       21.5,
		DieselMax:        &dieselMax,
	})

	// Simulate the platform round trip: attributes travel as JSON.
	raw, err := json.Marshal(attrs.Encode())
	if err != nil {
		t.Fatalf("marshal attributes: %v", err)
	}
	var wire map[string]any
	if err := json.Unmarshal(raw, &wire); err != nil {
		t.Fatalf("unmarshal attributes: %v", err)
	}

	got := Decode(wire)
	if got.PostalCode != "01000" {
		t.Fatalf("PostalCode = %q, want 01000", got.PostalCode)
	}
	if !got.FirstTimeDone {
		t.Fatal("FirstTimeDone lost in round trip")
	}
	if !got.PricesFetched || got.LocalPrices == nil {
		t.Fatalf("LocalPrices lost in round trip: %+v", got)
	}
	if got.LocalPrices.MunicipalityName != "CDMX" || got.LocalPrices.Stations != 3 {
		t.Fatalf("record corrupted in round trip: %+v", got.LocalPrices)
	}
	if got.LocalPrices.DieselMax == nil || *got.LocalPrices.DieselMax != 23.1 {
		t.Fatalf("DieselMax corrupted in round trip: %+v", got.LocalPrices.DieselMax)
	}
}

func TestEncodeNullAfterFailedFetch(t *testing.T) {
	t.Parallel()

	attrs := &Attributes{PostalCode: "99999"}
	attrs.SetLocalPrices(nil)

	wire := attrs.Encode()
	v, ok := wire["localPrices"]
	if !ok {
		t.Fatal("localPrices key must be present after a fetch attempt")
	}
	if v != nil {
		t.Fatalf("localPrices = %v, want explicit null", v)
	}
}
