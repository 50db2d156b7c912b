package domain

import "encoding/json"

// Setting is a single named hosted payment page setting. The value is an
// opaque string by the time it reaches the gateway.
type Setting struct {
	Name  string
	Value string
}

// Settings is an ordered list of gateway settings. Order is insertion order
// and duplicate names are kept; the gateway tolerates repeats.
type Settings []Setting

// Add appends a setting, serializing non-string values to JSON
func (s Settings) Add(name string, value any) Settings {
	if str, ok := value.(string); ok {
		return append(s, Setting{Name: name, Value: str})
	}
	raw, err := json.Marshal(value)
	if err != nil {
		// json.Marshal only fails on unsupported types; settings values
		// are fixed shapes, so an empty value is the safe degradation.
		return append(s, Setting{Name: name, Value: ""})
	}
	return append(s, Setting{Name: name, Value: string(raw)})
}
