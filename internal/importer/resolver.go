package importer

import "strings"

// ReferenceList is a name → id snapshot of one referenced entity type
// (class, subject, teacher, day, period, semester), fetched once per
// import request and discarded with it.
type ReferenceList struct {
	names []string // original casing, insertion order
	ids   map[string]string
}

// NewReferenceList builds an empty list.
func NewReferenceList() *ReferenceList {
	return &ReferenceList{ids: make(map[string]string)}
}

// Add registers a name → id pair. The first registration of a name wins.
func (l *ReferenceList) Add(name, id string) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return
	}
	if _, exists := l.ids[key]; exists {
		return
	}
	l.names = append(l.names, strings.TrimSpace(name))
	l.ids[key] = id
}

// Resolve finds an id by case-insensitive exact name match.
func (l *ReferenceList) Resolve(name string) (string, bool) {
	id, ok := l.ids[strings.ToLower(strings.TrimSpace(name))]
	return id, ok
}

// ResolveLoose finds an id by exact match first, then by substring
// match in either direction: "Ganjil" matches "Semester Ganjil 2024"
// and vice versa. Insertion order breaks ties: the first registered
// name that matches wins. Spreadsheets name semesters inconsistently,
// hence the loose rule; everything else resolves exactly.
func (l *ReferenceList) ResolveLoose(name string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return "", false
	}
	if id, ok := l.ids[needle]; ok {
		return id, true
	}
	for _, orig := range l.names {
		candidate := strings.ToLower(orig)
		if strings.Contains(candidate, needle) || strings.Contains(needle, candidate) {
			return l.ids[candidate], true
		}
	}
	return "", false
}

// Len reports how many names are registered.
func (l *ReferenceList) Len() int { return len(l.names) }
