package types

// Clone returns a deep copy of the entry.
func (e *Entry) Clone() *Entry {
	out := &Entry{
		ID:         e.ID,
		FieldOrder: append([]string(nil), e.FieldOrder...),
		Bullets:    append([]BulletPoint(nil), e.Bullets...),
	}
	if e.Fields != nil {
		out.Fields = make(map[string]*BulletPoint, len(e.Fields))
		for key, value := range e.Fields {
			copied := *value
			out.Fields[key] = &copied
		}
	}
	return out
}

// Clone returns a deep copy of the section.
func (s *Section) Clone() *Section {
	out := &Section{
		ID:      s.ID,
		Heading: s.Heading,
		Kind:    s.Kind,
		Bullets: append([]BulletPoint(nil), s.Bullets...),
	}
	if s.Entries != nil {
		out.Entries = make([]*Entry, 0, len(s.Entries))
		for _, entry := range s.Entries {
			out.Entries = append(out.Entries, entry.Clone())
		}
	}
	return out
}
