package domain

import "fmt"

// Kind identifies one of the planning entity kinds.
type Kind string

const (
	KindProject     Kind = "project"
	KindEpic        Kind = "epic"
	KindStory       Kind = "story"
	KindMockup      Kind = "mockup"
	KindAssertion   Kind = "assertion"
	KindInteraction Kind = "interaction"
)

// Kinds lists every entity kind, roots first.
var Kinds = []Kind{KindProject, KindEpic, KindStory, KindMockup, KindAssertion, KindInteraction}

func (k Kind) String() string { return string(k) }

func (k Kind) IsValid() bool {
	switch k {
	case KindProject, KindEpic, KindStory, KindMockup, KindAssertion, KindInteraction:
		return true
	}
	return false
}

// ParseKind accepts the singular or plural name of a kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if s == string(k) || s == k.Plural() {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown kind %q", s)
}

// Plural returns the collection name used in routes and nested JSON.
func (k Kind) Plural() string {
	if k == KindStory {
		return "stories"
	}
	return string(k) + "s"
}

// CodePrefix returns the letter prepended to sequential codes.
// Projects are not coded and return "".
func (k Kind) CodePrefix() string {
	switch k {
	case KindEpic:
		return "E"
	case KindStory:
		return "S"
	case KindMockup:
		return "M"
	case KindAssertion:
		return "A"
	case KindInteraction:
		return "I"
	}
	return ""
}

// Coded reports whether entities of this kind carry a sequential code.
func (k Kind) Coded() bool { return k.CodePrefix() != "" }

// Parent returns the kind owning k. Projects are owned by users and
// report false.
func (k Kind) Parent() (Kind, bool) {
	switch k {
	case KindEpic:
		return KindProject, true
	case KindStory:
		return KindEpic, true
	case KindMockup, KindAssertion:
		return KindStory, true
	case KindInteraction:
		return KindMockup, true
	}
	return "", false
}

// ParentField is the JSON name of the required parent reference.
func (k Kind) ParentField() string {
	switch k {
	case KindProject:
		return "UserId"
	case KindEpic:
		return "ProjectId"
	case KindStory:
		return "EpicId"
	case KindMockup, KindAssertion:
		return "StoryId"
	case KindInteraction:
		return "MockupId"
	}
	return ""
}

// SortDirection orders a child collection.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// Edge declares one parent -> child relation of the hierarchy.
type Edge struct {
	Child     Kind
	OrderBy   string
	Direction SortDirection
}

// hierarchy is the single declaration of nested reads. Children are
// ordered by code sequence: stories newest first, every other level
// ascending.
var hierarchy = map[Kind][]Edge{
	KindProject: {{Child: KindEpic, OrderBy: "seq", Direction: SortAsc}},
	KindEpic:    {{Child: KindStory, OrderBy: "seq", Direction: SortDesc}},
	KindStory: {
		{Child: KindMockup, OrderBy: "seq", Direction: SortAsc},
		{Child: KindAssertion, OrderBy: "seq", Direction: SortAsc},
	},
	KindMockup: {{Child: KindInteraction, OrderBy: "seq", Direction: SortAsc}},
}

// Edges returns the child relations of k in declaration order.
func (k Kind) Edges() []Edge { return hierarchy[k] }

// Edge returns the relation from k to child.
func (k Kind) Edge(child Kind) (Edge, bool) {
	for _, e := range hierarchy[k] {
		if e.Child == child {
			return e, true
		}
	}
	return Edge{}, false
}

// Depth is the number of nested levels below k.
func (k Kind) Depth() int {
	depth := 0
	for _, e := range hierarchy[k] {
		if d := e.Child.Depth() + 1; d > depth {
			depth = d
		}
	}
	return depth
}
