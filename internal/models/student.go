package models

// Student represents a learner registered in the school. Students are
// immutable after creation; attendance and behavior records reference them
// by id.
type Student struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	ClassName string `db:"class_name" json:"className"`
	Section   string `db:"section" json:"section"`
}

// StudentFilter narrows student listings. Empty fields act as wildcards and
// set fields match exactly.
type StudentFilter struct {
	ClassName string
	Section   string
}

// Matches reports whether the student satisfies the filter.
func (f StudentFilter) Matches(s Student) bool {
	if f.ClassName != "" && s.ClassName != f.ClassName {
		return false
	}
	if f.Section != "" && s.Section != f.Section {
		return false
	}
	return true
}
