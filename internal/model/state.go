package model

// InteractionState is the transient view state the controller owns:
// which country is selected and which is under a committed hover.
// Both are dataset country names; empty means none.
type InteractionState struct {
	Selected string `json:"selected,omitempty"`
	Hovered  string `json:"hovered,omitempty"`
}
