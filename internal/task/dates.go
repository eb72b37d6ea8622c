package task

import "time"

// EditableLayout is the timezone-naive, minute-precision layout used
// by date input fields and CLI flags.
const EditableLayout = "2006-01-02T15:04"

// WireToEditable converts an RFC 3339 timestamp into the editable
// format in local time. Nil, empty, or unparsable input yields the
// empty string.
func WireToEditable(wire *string) string {
	if wire == nil || *wire == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, *wire)
	if err != nil {
		return ""
	}
	return t.Local().Format(EditableLayout)
}

// EditableToWire converts a local-naive datetime string into a full
// RFC 3339 UTC timestamp. Empty or unparsable input yields nil, never
// an invalid date string.
func EditableToWire(editable string) *string {
	if editable == "" {
		return nil
	}
	t, err := time.ParseInLocation(EditableLayout, editable, time.Local)
	if err != nil {
		return nil
	}
	wire := t.UTC().Format(time.RFC3339)
	return &wire
}

// NormalizeDeadline canonicalizes a deadline fetched from the server
// to an RFC 3339 UTC timestamp, guarding against inconsistent server
// formatting. Missing or unparsable deadlines become nil.
func NormalizeDeadline(deadline *string) *string {
	if deadline == nil || *deadline == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *deadline)
	if err != nil {
		return nil
	}
	iso := t.UTC().Format(time.RFC3339)
	return &iso
}
