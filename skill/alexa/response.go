package alexa

// ResponseEnvelope is the outbound webhook payload.
type ResponseEnvelope struct {
	Version           string         `json:"version"`
	SessionAttributes map[string]any `json:"sessionAttributes,omitempty"`
	Response          Response       `json:"response"`
}

type Response struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	Card             *Card         `json:"card,omitempty"`
	ShouldEndSession bool          `json:"shouldEndSession"`
}

type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type Reprompt struct {
	OutputSpeech OutputSpeech `json:"outputSpeech"`
}

const (
	cardTypeSimple             = "Simple"
	cardTypePermissionsConsent = "AskForPermissionsConsent"
)

type Card struct {
	Type        string   `json:"type"`
	Title       string   `json:"title,omitempty"`
	Content     string   `json:"content,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
}

// Builder assembles a response in the order handlers naturally produce it:
// speech, optional reprompt, optional card. The session is ended exactly
// when no reprompt was attached.
type Builder struct {
	resp Response
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Speak(text string) *Builder {
	b.resp.OutputSpeech = &OutputSpeech{Type: "PlainText", Text: text}
	return b
}

func (b *Builder) Reprompt(text string) *Builder {
	b.resp.Reprompt = &Reprompt{OutputSpeech: OutputSpeech{Type: "PlainText", Text: text}}
	return b
}

func (b *Builder) WithSimpleCard(title, content string) *Builder {
	b.resp.Card = &Card{Type: cardTypeSimple, Title: title, Content: content}
	return b
}

func (b *Builder) WithAskForPermissionsConsentCard(permissions []string) *Builder {
	b.resp.Card = &Card{Type: cardTypePermissionsConsent, Permissions: permissions}
	return b
}

func (b *Builder) Build() Response {
	resp := b.resp
	resp.ShouldEndSession = resp.Reprompt == nil
	return resp
}
