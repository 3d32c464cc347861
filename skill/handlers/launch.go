package handlers

import (
	"context"

	"github.com/gasolinas-mx/gasolinas-skill/skill/alexa"
)

// LaunchHandler greets users who already granted the location permission.
// With a usable price record the greeting is locality-specific; otherwise
// the configured postal code is presumed wrong and the session ends.
type LaunchHandler struct{}

func (LaunchHandler) CanHandle(in *Input) bool {
	return in.Envelope.Request.Type == alexa.RequestTypeLaunch && in.Envelope.HasConsentToken()
}

func (LaunchHandler) Handle(_ context.Context, in *Input) (alexa.Response, error) {
	local := in.Attributes.LocalPrices
	if local != nil && local.MunicipalityName != "" {
		speech := speechWelcomePrefix + local.MunicipalityName + ", " + local.StateName + speechWelcomeSuffix
		return alexa.NewBuilder().
			Speak(speech).
			Reprompt(repromptLaunch).
			WithSimpleCard(cardTitleSkill, speech).
			Build(), nil
	}

	return alexa.NewBuilder().
		Speak(speechWelcomeBadPostalCode).
		Build(), nil
}

// LaunchFallbackHandler claims every launch request the permission-aware
// handler did not, greets generically, and asks for the location consent
// through a platform permissions card.
type LaunchFallbackHandler struct{}

func (LaunchFallbackHandler) CanHandle(in *Input) bool {
	return in.Envelope.Request.Type == alexa.RequestTypeLaunch
}

func (LaunchFallbackHandler) Handle(_ context.Context, _ *Input) (alexa.Response, error) {
	return alexa.NewBuilder().
		Speak(speechWelcomeNoPermissions).
		WithAskForPermissionsConsentCard([]string{alexa.PermissionCountryAndPostalCode}).
		Build(), nil
}
