package handlers

import (
	"context"
	"strconv"

	"github.com/gasolinas-mx/gasolinas-skill/skill/alexa"
	"github.com/gasolinas-mx/gasolinas-skill/skill/prices"
)

// Fuel types as matched by the interaction model. The slot and its default
// share the name "gasolina", which doubles as the all-fuels category.
const (
	slotFuelType = "gasolina"

	fuelAll    = "gasolina"
	fuelDiesel = "diesel"
	fuelMagna  = "magna"
)

// PricesIntentHandler answers the price query intent. The first successful
// price utterance of a session gets a salutation sized to the station
// count; later ones use the short form. The all-fuels reply ends the turn,
// every other fuel branch keeps the session open with a reprompt and card.
type PricesIntentHandler struct{}

func (PricesIntentHandler) CanHandle(in *Input) bool {
	return in.Envelope.Request.Type == alexa.RequestTypeIntent &&
		in.Envelope.IntentName() == alexa.IntentPrices
}

func (PricesIntentHandler) Handle(_ context.Context, in *Input) (alexa.Response, error) {
	attrs := in.Attributes
	local := attrs.LocalPrices
	fuelType := ResolveSlot(in.Envelope.Slots(), slotFuelType, fuelAll)

	if local == nil {
		return alexa.NewBuilder().
			Speak(speechNoInfoPrefix + attrs.PostalCode).
			Build(), nil
	}

	var salute, reprompt string
	if !attrs.FirstTimeDone {
		attrs.FirstTimeDone = true
		switch {
		case local.Stations == 1:
			salute = speechSaluteSinglePrefix + local.MunicipalityName + speechSaluteSuffix
			reprompt = repromptFirstPrice
		case local.Stations > 1:
			salute = speechSalutePluralPrefix + strconv.Itoa(local.Stations) + speechSalutePluralInfix +
				local.MunicipalityName + speechSaluteSuffix
			reprompt = repromptFirstPrice
		default:
			return alexa.NewBuilder().
				Speak(speechNoStationsPrefix + local.MunicipalityName + speechNoStationsSuffix).
				Build(), nil
		}
	} else {
		salute = speechSaluteSubsequent
		reprompt = repromptSubsequentPrice
	}

	var speech string
	switch fuelType {
	case fuelAll:
		speech = salute + speechAllTypesInfix +
			prices.InPesos(local.RegularMax) + ", para la Premium " +
			prices.InPesos(local.PremiumMax) + " y para el Diésel " +
			prices.InPesosPtr(local.DieselMax)
	case fuelDiesel:
		if local.DieselMax != nil && *local.DieselMax > 0 {
			speech = salute + speechDieselInfix + prices.InPesosPtr(local.DieselMax) +
				speechSaluteMedian + prices.InPesosPtr(local.DieselMedian)
		} else {
			speech = speechDieselNotOfferedPrefix + strconv.Itoa(local.Stations) +
				speechDieselNotOfferedInfix + local.MunicipalityName
		}
	default:
		grade, max, median := "Premium", local.PremiumMax, local.PremiumMedian
		if fuelType == fuelMagna {
			grade, max, median = "Magna", local.RegularMax, local.RegularMedian
		}
		speech = salute + speechGradeInfix + grade + " es " +
			prices.InPesos(max) + speechSaluteMedian + prices.InPesos(median)
	}

	if fuelType == fuelAll {
		return alexa.NewBuilder().
			Speak(speech).
			WithSimpleCard(cardTitlePrices, speech).
			Build(), nil
	}

	return alexa.NewBuilder().
		Speak(speech + ". " + reprompt).
		Reprompt(reprompt).
		WithSimpleCard(cardTitlePrices, speech).
		Build(), nil
}
