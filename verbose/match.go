package verbose

// Match is one match reported by the engine. Offsets are byte offsets into
// the subject.
type Match struct {
	subject string
	index   []int
	names   []string
}

// String returns the matched text.
func (m Match) String() string {
	s, _ := m.Group(0)
	return s
}

// Len returns the number of groups including group 0.
func (m Match) Len() int { return len(m.index) / 2 }

// Span returns the byte offsets of group i, or -1, -1 when the group did not
// take part in the match.
func (m Match) Span(i int) (start, end int) {
	if i < 0 || 2*i+1 >= len(m.index) {
		return -1, -1
	}
	return m.index[2*i], m.index[2*i+1]
}

// Group returns the text of group i. ok is false when the group does not
// exist or did not take part in the match.
func (m Match) Group(i int) (string, bool) {
	start, end := m.Span(i)
	if start < 0 || end < 0 {
		return "", false
	}
	return m.subject[start:end], true
}

// Named returns the text of the group called name.
func (m Match) Named(name string) (string, bool) {
	for i, n := range m.names {
		if i > 0 && n == name {
			return m.Group(i)
		}
	}
	return "", false
}

// Groups returns the text of groups 1..n; groups that did not take part are
// empty.
func (m Match) Groups() []string {
	if m.Len() == 0 {
		return nil
	}

	out := make([]string, m.Len()-1)
	for i := range out {
		out[i], _ = m.Group(i + 1)
	}
	return out
}

// Index returns a copy of the engine's submatch index pairs.
func (m Match) Index() []int {
	return append([]int(nil), m.index...)
}
