package logger

import (
	"strings"
)

// LevelSet is a set of loggable severities. None is never a member.
// The zero value is the empty set.
type LevelSet uint8

func bit(s Severity) LevelSet {
	if s == None || !s.valid() {
		return 0
	}
	return 1 << (s - 1)
}

// FromThreshold returns the set of every severity at least as important as s.
func FromThreshold(s Severity) LevelSet {
	var set LevelSet
	set.SetThreshold(s)
	return set
}

// Of returns the set holding exactly the given severities.
func Of(levels ...Severity) LevelSet {
	var set LevelSet
	for _, level := range levels {
		set.Add(level)
	}
	return set
}

// Contains reports whether level is in the set.
func (ls LevelSet) Contains(level Severity) bool {
	b := bit(level)
	return b != 0 && ls&b != 0
}

// Add inserts level. Adding None is a no-op.
func (ls *LevelSet) Add(level Severity) {
	*ls |= bit(level)
}

// Remove deletes level.
func (ls *LevelSet) Remove(level Severity) {
	*ls &^= bit(level)
}

// SetEnabled adds or removes level and returns enabled.
func (ls *LevelSet) SetEnabled(level Severity, enabled bool) bool {
	if enabled {
		ls.Add(level)
	} else {
		ls.Remove(level)
	}
	return enabled
}

// SetThreshold replaces the set with every severity whose rank is at most
// level's rank. SetThreshold(None) empties the set.
func (ls *LevelSet) SetThreshold(level Severity) {
	*ls = 0
	for _, s := range AllSeverities() {
		if s.Rank() <= level.Rank() {
			ls.Add(s)
		}
	}
}

// IsEmpty reports whether no severity is enabled.
func (ls LevelSet) IsEmpty() bool {
	return ls == 0
}

// Levels lists the members, most important first.
func (ls LevelSet) Levels() []Severity {
	levels := make([]Severity, 0, 4)
	for _, s := range AllSeverities() {
		if ls.Contains(s) {
			levels = append(levels, s)
		}
	}
	return levels
}

// String renders the set in the explicit list form ParseLevelSet reads, or
// NONE for the empty set.
func (ls LevelSet) String() string {
	if ls.IsEmpty() {
		return "NONE"
	}
	names := make([]string, 0, 4)
	for _, s := range ls.Levels() {
		names = append(names, s.String())
	}
	return "[" + strings.Join(names, ",") + "]"
}

// ParseLevelSet reads a level set from configuration text.
//
// "NONE" is the empty set. A bracketed or comma-separated list is the union of
// the named severities, with no threshold expansion. Any other text names a
// single severity and expands to its threshold, so "WARN" is {ERROR, WARN}.
func ParseLevelSet(text string) (LevelSet, error) {
	text = strings.TrimSpace(text)
	if text == "NONE" {
		return 0, nil
	}

	bracketed := strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]")
	if !bracketed && !strings.Contains(text, ",") {
		s, err := ParseSeverity(text)
		if err != nil {
			return 0, err
		}
		return FromThreshold(s), nil
	}

	body := text
	if bracketed {
		body = strings.TrimSpace(text[1 : len(text)-1])
		if body == "" {
			return 0, nil
		}
	}
	var set LevelSet
	for _, token := range strings.Split(body, ",") {
		s, err := ParseSeverity(token)
		if err != nil {
			return 0, err
		}
		set.Add(s)
	}
	return set, nil
}
