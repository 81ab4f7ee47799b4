package model

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Priority is the urgency of a task. Higher is more urgent.
type Priority int

const (
	PriorityNormal Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
)

// Valid reports whether p is within 1..3.
func (p Priority) Valid() bool {
	return p >= PriorityNormal && p <= PriorityHigh
}

// Label returns a short human label for the priority.
func (p Priority) Label() string {
	switch p {
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	default:
		return "normal"
	}
}

// ParsePriority parses "1", "2" or "3".
func ParsePriority(s string) (Priority, bool) {
	if len(s) != 1 {
		return 0, false
	}
	p := Priority(s[0] - '0')
	if !p.Valid() {
		return 0, false
	}
	return p, true
}

// UnmarshalJSON accepts both numbers and digit strings; older storage
// files hold parsed priorities as strings. Anything else decodes to
// PriorityNormal.
func (p *Priority) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	var raw string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	} else {
		raw = string(data)
	}
	n, err := strconv.Atoi(raw)
	if err != nil || !Priority(n).Valid() {
		*p = PriorityNormal
		return nil
	}
	*p = Priority(n)
	return nil
}
