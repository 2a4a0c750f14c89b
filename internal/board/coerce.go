package board

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// MaxListTitle is the hard cap on list titles. Longer input is truncated,
// not rejected; the UI relies on this.
const MaxListTitle = 25

// Ref is a nullable entity reference decoded from loosely typed JSON.
// Clients send ids as numbers or numeric strings, and "no reference" as
// JSON null or the literal artifacts "null" and "undefined". Anything else
// non-numeric fails decoding.
type Ref struct {
	ID   int64
	Set  bool // key was present in the payload
	Null bool // explicit null or a sentinel string
}

// UnmarshalJSON is invoked for present keys only, including explicit null,
// so a zero Ref means the key was absent.
func (r *Ref) UnmarshalJSON(data []byte) error {
	r.Set = true

	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		r.Null = true
		return nil
	}

	if strings.HasPrefix(trimmed, `"`) {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		switch raw {
		case "", "null", "undefined":
			r.Null = true
			return nil
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", raw)
		}
		r.ID = id
		return nil
	}

	var id int64
	if err := json.Unmarshal(data, &id); err != nil {
		return fmt.Errorf("invalid id %s", trimmed)
	}
	r.ID = id
	return nil
}

// Value returns the referenced id, or fallback when the key was absent or
// carried a sentinel.
func (r Ref) Value(fallback int64) int64 {
	if !r.Set || r.Null {
		return fallback
	}
	return r.ID
}

// truncateTitle caps titles at MaxListTitle characters. Counted in runes
// so multibyte titles are not split mid-character.
func truncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) > MaxListTitle {
		return string(runes[:MaxListTitle])
	}
	return title
}

// normalizeDate prepares a creation-time date string: slash separators are
// converted to dashes, empty input means "no date".
func normalizeDate(raw *string) *string {
	if raw == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*raw)
	if trimmed == "" {
		return nil
	}
	normalized := strings.ReplaceAll(trimmed, "/", "-")
	return &normalized
}

// passthroughDate carries an already-normalized "YYYY-MM-DD" value through
// an update. Absent or empty input clears the stored date.
func passthroughDate(raw *string) *string {
	if raw == nil || *raw == "" {
		return nil
	}
	value := *raw
	return &value
}
