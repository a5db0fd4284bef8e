package lint

// Label is a half-open byte range in the linted file with an optional message.
type Label struct {
	Start   uint32
	End     uint32
	Message string
}

// Diagnostic is a rule finding before it is turned into a diag.Diagnostic.
type Diagnostic struct {
	Code    string // имя правила, например roblox_incorrect_roact_usage
	Message string
	Primary Label
	Notes   []string
}

func NewDiagnostic(code, message string, primary Label) Diagnostic {
	return Diagnostic{
		Code:    code,
		Message: message,
		Primary: primary,
	}
}

// LabelAt builds a label from a (start, end) pair.
func LabelAt(start, end uint32) Label {
	return Label{Start: start, End: end}
}
