package slack

// Envelope is the platform's uniform response wrapper: a success flag,
// an optional error string, and operation-specific payload fields that
// the dispatcher leaves opaque.
type Envelope struct {
	OK     bool
	Reason string
	Fields map[string]any

	endpoint string
}

func newEnvelope(endpoint string, fields map[string]any) *Envelope {
	env := &Envelope{Fields: fields, endpoint: endpoint}
	if ok, isBool := fields["ok"].(bool); isBool {
		env.OK = ok
	}
	if reason, isString := fields["error"].(string); isString {
		env.Reason = reason
	}
	return env
}

// List extracts a required array field from the payload. A missing or
// mistyped field is a contract violation, never an empty result.
func (e *Envelope) List(field string) ([]any, error) {
	value, ok := e.Fields[field].([]any)
	if !ok {
		return nil, &ContractError{Endpoint: e.endpoint, Field: field}
	}
	return value, nil
}

// Map extracts a required object field from the payload.
func (e *Envelope) Map(field string) (map[string]any, error) {
	value, ok := e.Fields[field].(map[string]any)
	if !ok {
		return nil, &ContractError{Endpoint: e.endpoint, Field: field}
	}
	return value, nil
}

// String extracts a required non-empty string field from the payload.
func (e *Envelope) String(field string) (string, error) {
	value, ok := e.Fields[field].(string)
	if !ok || value == "" {
		return "", &ContractError{Endpoint: e.endpoint, Field: field}
	}
	return value, nil
}
