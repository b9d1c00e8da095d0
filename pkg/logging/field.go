package logging

import "digital.vasic.artifacts/pkg/scenario"

// Field is one key-value pair of an entry.
type Field struct {
	Key   string
	Value any
}

func StringField(key, value string) Field {
	return Field{Key: key, Value: value}
}

func IntField(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// ScenarioField tags an entry with the scenario identity.
func ScenarioField(id scenario.Identity) Field {
	return Field{Key: "scenario", Value: id.String()}
}

// ErrorField records err under "error". A nil err is logged as
// "<nil>".
func ErrorField(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: "<nil>"}
	}
	return Field{Key: "error", Value: err.Error()}
}
