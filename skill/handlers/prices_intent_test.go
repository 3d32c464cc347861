package handlers

import (
	"context"
	"strings"
	"testing"

	"github.com/gasolinas-mx/gasolinas-skill/skill/alexa"
	"github.com/gasolinas-mx/gasolinas-skill/skill/prices"
	"github.com/gasolinas-mx/gasolinas-skill/skill/state"
)

func pricesInput(record *prices.Record, firstTimeDone bool, slots map[string]alexa.Slot) *Input {
	attrs := &state.Attributes{PostalCode: "01000", FirstTimeDone: firstTimeDone}
	attrs.SetLocalPrices(record)
	return &Input{
		Envelope:   intentEnvelope(alexa.IntentPrices, nil, slots),
		Attributes: attrs,
	}
}

func TestPricesSingleStationSalutation(t *testing.T) {
	t.Parallel()

	record := cdmxRecord()
	record.Stations = 1
	in := pricesInput(record, false, nil)

	resp, err := (PricesIntentHandler{}).Handle(context.Background(), in)
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	speech := speechOf(t, resp)
	if !strings.HasPrefix(speech, "Existe una estacion de servicio en CDMX") {
		t.Fatalf("speech %q, want singular salutation", speech)
	}
	if !in.Attributes.FirstTimeDone {
		t.Fatal("FirstTimeDone must flip on the first price utterance")
	}
}

func TestPricesNoStationsShortCircuits(t *testing.T) {
	t.Parallel()

	record := cdmxRecord()
	record.Stations = 0
	in := pricesInput(record, false, nil)

	resp, err := (PricesIntentHandler{}).Handle(context.Background(), in)
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	const want = "No existen registros de estaciones de servicio para CDMX o no las han reportado."
	if speech := speechOf(t, resp); speech != want {
		t.Fatalf("speech = %q, want %q", speech, want)
	}
	if resp.Reprompt != nil {
		t.Fatal("no-stations reply must not reprompt")
	}
}

func TestPricesSubsequentSalutation(t *testing.T) {
	t.Parallel()

	slots := map[string]alexa.Slot{slotFuelType: matchedSlot("magna")}
	in := pricesInput(cdmxRecord(), true, slots)

	resp, err := (PricesIntentHandler{}).Handle(context.Background(), in)
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	speech := speechOf(t, resp)
	if !strings.HasPrefix(speech, "El precio máximo por litro de gasolina Magna es $21.50") {
		t.Fatalf("speech %q, want short salutation with Magna price", speech)
	}
	if !strings.Contains(speech, " y con un precio promedio de $20.90") {
		t.Fatalf("speech %q, want Magna median", speech)
	}
	if !strings.Contains(speech, "¿Quieres consultar otro precio?") {
		t.Fatalf("speech %q, want subsequent reprompt appended", speech)
	}
	if resp.Reprompt == nil || resp.Reprompt.OutputSpeech.Text != "¿Quieres consultar otro precio?" {
		t.Fatalf("reprompt = %+v, want subsequent reprompt", resp.Reprompt)
	}
}

func TestPricesPremiumBranch(t *testing.T) {
	t.Parallel()

	slots := map[string]alexa.Slot{slotFuelType: matchedSlot("premium")}
	in := pricesInput(cdmxRecord(), true, slots)

	resp, err := (PricesIntentHandler{}).Handle(context.Background(), in)
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	speech := speechOf(t, resp)
	if !strings.Contains(speech, "Premium es $23.80") {
		t.Fatalf("speech %q, want Premium max", speech)
	}
	if !strings.Contains(speech, "$22.99") {
		t.Fatalf("speech %q, want Premium median", speech)
	}
	if resp.Card == nil || resp.Card.Title != "Precios" {
		t.Fatalf("card = %+v, want Precios card", resp.Card)
	}
}

func TestPricesDieselBranchWithData(t *testing.T) {
	t.Parallel()

	slots := map[string]alexa.Slot{slotFuelType: matchedSlot("diesel")}
	in := pricesInput(cdmxRecord(), true, slots)

	resp, err := (PricesIntentHandler{}).Handle(context.Background(), in)
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	speech := speechOf(t, resp)
	if !strings.Contains(speech, "para el Diésel es $24.30") {
		t.Fatalf("speech %q, want diesel max", speech)
	}
	if !strings.Contains(speech, "$23.90") {
		t.Fatalf("speech %q, want diesel median", speech)
	}
}
