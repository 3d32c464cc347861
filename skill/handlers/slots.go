package handlers

import "github.com/gasolinas-mx/gasolinas-skill/skill/alexa"

// ResolveSlot extracts the canonical value matched for a slot, falling back
// to defaultValue when the slot is missing, unresolved, or matched nothing.
// Only the first authority's first value is consulted. Never fails.
func ResolveSlot(slots map[string]alexa.Slot, name, defaultValue string) string {
	slot, ok := slots[name]
	if !ok || slot.Resolutions == nil || len(slot.Resolutions.PerAuthority) == 0 {
		return defaultValue
	}

	authority := slot.Resolutions.PerAuthority[0]
	if authority.Status.Code != alexa.StatusSuccessMatch || len(authority.Values) == 0 {
		return defaultValue
	}

	return authority.Values[0].Value.Name
}
