package model

// ToolSpec describes one callable tool advertised to the model. Parameters
// is a JSON-schema-shaped definition; it is passed through to the wire
// untouched and its size is never validated here.
type ToolSpec struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// Reserved tool-choice strings that pass through to the wire unchanged.
const (
	ToolChoiceNone     = "none"
	ToolChoiceAuto     = "auto"
	ToolChoiceRequired = "required"
)

// NamedToolChoice forces the model to invoke one specific function.
type NamedToolChoice struct {
	Type     string              `json:"type"`
	Function NamedToolChoiceFunc `json:"function"`
}

// NamedToolChoiceFunc identifies the forced function by name.
type NamedToolChoiceFunc struct {
	Name string `json:"name"`
}

// ToolChoiceFunction builds the named-function tool choice for name.
func ToolChoiceFunction(name string) NamedToolChoice {
	return NamedToolChoice{
		Type:     "function",
		Function: NamedToolChoiceFunc{Name: name},
	}
}
