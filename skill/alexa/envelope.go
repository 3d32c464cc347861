package alexa

import "encoding/json"

// Request types delivered by the platform.
const (
	RequestTypeLaunch       = "LaunchRequest"
	RequestTypeIntent       = "IntentRequest"
	RequestTypeSessionEnded = "SessionEndedRequest"
)

// Built-in and custom intent names the skill responds to.
const (
	IntentPrices = "PricesIntent"
	IntentHelp   = "AMAZON.HelpIntent"
	IntentCancel = "AMAZON.CancelIntent"
	IntentStop   = "AMAZON.StopIntent"
)

// StatusSuccessMatch is the resolution status for a slot value that matched
// the interaction model vocabulary.
const StatusSuccessMatch = "ER_SUCCESS_MATCH"

// PermissionCountryAndPostalCode is the consent scope required to read the
// device's short address.
const PermissionCountryAndPostalCode = "read::alexa:device:all:address:country_and_postal_code"

// RequestEnvelope is the inbound webhook payload.
// https://developer.amazon.com/en-US/docs/alexa/custom-skills/request-and-response-json-reference.html
type RequestEnvelope struct {
	Version string  `json:"version"`
	Session Session `json:"session"`
	Context Context `json:"context"`
	Request Request `json:"request"`
}

type Session struct {
	New        bool           `json:"new"`
	SessionID  string         `json:"sessionId"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

type Context struct {
	System System `json:"System"`
}

type System struct {
	User           User   `json:"user"`
	Device         Device `json:"device"`
	APIEndpoint    string `json:"apiEndpoint"`
	APIAccessToken string `json:"apiAccessToken"`
}

type User struct {
	UserID      string       `json:"userId"`
	Permissions *Permissions `json:"permissions,omitempty"`
}

type Permissions struct {
	ConsentToken string `json:"consentToken"`
}

type Device struct {
	DeviceID string `json:"deviceId"`
}

type Request struct {
	Type   string  `json:"type"`
	Reason string  `json:"reason,omitempty"`
	Intent *Intent `json:"intent,omitempty"`
}

type Intent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots,omitempty"`
}

type Slot struct {
	Name        string       `json:"name"`
	Value       string       `json:"value,omitempty"`
	Resolutions *Resolutions `json:"resolutions,omitempty"`
}

type Resolutions struct {
	PerAuthority []Authority `json:"resolutionsPerAuthority"`
}

type Authority struct {
	Name   string           `json:"authority"`
	Status ResolutionStatus `json:"status"`
	Values []ResolvedValue  `json:"values"`
}

type ResolutionStatus struct {
	Code string `json:"code"`
}

type ResolvedValue struct {
	Value SlotValue `json:"value"`
}

type SlotValue struct {
	Name string `json:"name"`
	ID   string `json:"id,omitempty"`
}

// HasConsentToken reports whether the user granted any permission consent.
func (e *RequestEnvelope) HasConsentToken() bool {
	p := e.Context.System.User.Permissions
	return p != nil && p.ConsentToken != ""
}

// IntentName returns the intent name, or "" for non-intent requests.
func (e *RequestEnvelope) IntentName() string {
	if e.Request.Intent == nil {
		return ""
	}
	return e.Request.Intent.Name
}

// Slots returns the intent slots, or nil for non-intent requests.
func (e *RequestEnvelope) Slots() map[string]Slot {
	if e.Request.Intent == nil {
		return nil
	}
	return e.Request.Intent.Slots
}

// MarshalRaw serialises the request portion of the envelope for diagnostics.
func (e *RequestEnvelope) MarshalRaw() []byte {
	raw, err := json.Marshal(e.Request)
	if err != nil {
		return []byte("null")
	}
	return raw
}
