package domain

import (
	"strings"
	"time"
)

// Node is a tree element assembled by the hierarchy loader.
type Node interface {
	NodeID() int64
	NodeKind() Kind
	ParentRef() int64
	SetChildren(kind Kind, children []Node)
}

// Entity is implemented by pointers to every planning entity.
type Entity interface {
	Node
	Meta() *Record
	SetParentRef(id int64)
	Validate() error
}

// Sequenced is implemented by entities that carry a per-parent code.
type Sequenced interface {
	Entity
	Sequence() *Coding
}

// EntityPtr constrains generic code to pointers of entity structs.
type EntityPtr[T any] interface {
	*T
	Entity
}

// Record holds the columns shared by every entity.
type Record struct {
	ID        int64     `json:"_id"       db:"id"`
	Active    bool      `json:"active"    db:"active"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Coding is the human-readable code and the sequence number it was built from.
type Coding struct {
	Code string `json:"code" db:"code"`
	Seq  int    `json:"-"    db:"seq"`
}

// Project is the root of a planning tree, owned by a user.
type Project struct {
	Record
	UserID int64   `json:"UserId" db:"user_id"`
	Name   string  `json:"name"   db:"name"`
	Info   *string `json:"info"   db:"info"`

	Epics []*Epic `json:"epics,omitzero" db:"-"`
}

// Epic groups stories inside a project.
type Epic struct {
	Record
	Coding
	ProjectID int64   `json:"ProjectId" db:"project_id"`
	Name      string  `json:"name"      db:"name"`
	Info      *string `json:"info"      db:"info"`

	Stories []*Story `json:"stories,omitzero" db:"-"`
}

// Story is a unit of work inside an epic.
type Story struct {
	Record
	Coding
	EpicID int64   `json:"EpicId" db:"epic_id"`
	Name   string  `json:"name"   db:"name"`
	Info   *string `json:"info"   db:"info"`

	Mockups    []*Mockup    `json:"mockups,omitzero"    db:"-"`
	Assertions []*Assertion `json:"assertions,omitzero" db:"-"`
}

// Mockup is a screen image attached to a story.
type Mockup struct {
	Record
	Coding
	StoryID   int64   `json:"StoryId"   db:"story_id"`
	URL       string  `json:"url"       db:"url"`
	ImagePath string  `json:"imagePath" db:"image_path"`
	Raw       *string `json:"raw"       db:"raw"`

	// Image carries an inbound data URI. It is replaced by ImagePath
	// before the mockup is stored and never persisted.
	Image string `json:"image,omitempty" db:"-"`

	Interactions []*Interaction `json:"interactions,omitzero" db:"-"`
}

// Assertion is an acceptance statement attached to a story.
type Assertion struct {
	Record
	Coding
	StoryID int64  `json:"StoryId" db:"story_id"`
	Info    string `json:"info"    db:"info"`
}

// Interaction describes an action on a mockup element and its outcome.
type Interaction struct {
	Record
	Coding
	MockupID int64  `json:"MockupId" db:"mockup_id"`
	Action   string `json:"action"   db:"action"`
	Target   string `json:"target"   db:"target"`
	Outcome  string `json:"outcome"  db:"outcome"`
}

// ---------------------------------------------------------------------------
// Node / Entity implementations
// ---------------------------------------------------------------------------

func (r *Record) Meta() *Record     { return r }
func (r *Record) NodeID() int64     { return r.ID }
func (c *Coding) Sequence() *Coding { return c }

func (p *Project) NodeKind() Kind        { return KindProject }
func (p *Project) ParentRef() int64      { return p.UserID }
func (p *Project) SetParentRef(id int64) { p.UserID = id }
func (p *Project) SetChildren(kind Kind, children []Node) {
	if kind == KindEpic {
		p.Epics = childrenOf[Epic](children)
	}
}

func (e *Epic) NodeKind() Kind        { return KindEpic }
func (e *Epic) ParentRef() int64      { return e.ProjectID }
func (e *Epic) SetParentRef(id int64) { e.ProjectID = id }
func (e *Epic) SetChildren(kind Kind, children []Node) {
	if kind == KindStory {
		e.Stories = childrenOf[Story](children)
	}
}

func (s *Story) NodeKind() Kind        { return KindStory }
func (s *Story) ParentRef() int64      { return s.EpicID }
func (s *Story) SetParentRef(id int64) { s.EpicID = id }
func (s *Story) SetChildren(kind Kind, children []Node) {
	switch kind {
	case KindMockup:
		s.Mockups = childrenOf[Mockup](children)
	case KindAssertion:
		s.Assertions = childrenOf[Assertion](children)
	}
}

func (m *Mockup) NodeKind() Kind        { return KindMockup }
func (m *Mockup) ParentRef() int64      { return m.StoryID }
func (m *Mockup) SetParentRef(id int64) { m.StoryID = id }
func (m *Mockup) SetChildren(kind Kind, children []Node) {
	if kind == KindInteraction {
		m.Interactions = childrenOf[Interaction](children)
	}
}

func (a *Assertion) NodeKind() Kind           { return KindAssertion }
func (a *Assertion) ParentRef() int64         { return a.StoryID }
func (a *Assertion) SetParentRef(id int64)    { a.StoryID = id }
func (a *Assertion) SetChildren(Kind, []Node) {}

func (i *Interaction) NodeKind() Kind           { return KindInteraction }
func (i *Interaction) ParentRef() int64         { return i.MockupID }
func (i *Interaction) SetParentRef(id int64)    { i.MockupID = id }
func (i *Interaction) SetChildren(Kind, []Node) {}

// childrenOf narrows loader output to the concrete child type. The result
// is never nil so loaded-but-empty collections encode as [].
func childrenOf[T any](nodes []Node) []*T {
	out := make([]*T, 0, len(nodes))
	for _, n := range nodes {
		if c, ok := any(n).(*T); ok {
			out = append(out, c)
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// Validation
// ---------------------------------------------------------------------------

type fieldErrors []FieldError

func (f *fieldErrors) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		*f = append(*f, FieldError{Field: field, Message: "required"})
	}
}

func (f *fieldErrors) reference(field string, id int64) {
	if id <= 0 {
		*f = append(*f, FieldError{Field: field, Message: "required"})
	}
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Errors: f}
}

// Validate checks all fields and collects all errors.
func (p *Project) Validate() error {
	var errs fieldErrors
	errs.reference("UserId", p.UserID)
	errs.required("name", p.Name)
	return errs.err()
}

// Validate checks all fields and collects all errors.
func (e *Epic) Validate() error {
	var errs fieldErrors
	errs.reference("ProjectId", e.ProjectID)
	errs.required("name", e.Name)
	return errs.err()
}

// Validate checks all fields and collects all errors.
func (s *Story) Validate() error {
	var errs fieldErrors
	errs.reference("EpicId", s.EpicID)
	errs.required("name", s.Name)
	return errs.err()
}

// Validate checks all fields and collects all errors. ImagePath must be
// resolved before validation; the inbound image is not consulted.
func (m *Mockup) Validate() error {
	var errs fieldErrors
	errs.reference("StoryId", m.StoryID)
	errs.required("url", m.URL)
	errs.required("imagePath", m.ImagePath)
	return errs.err()
}

// Validate checks all fields and collects all errors.
func (a *Assertion) Validate() error {
	var errs fieldErrors
	errs.reference("StoryId", a.StoryID)
	errs.required("info", a.Info)
	return errs.err()
}

// Validate checks all fields and collects all errors.
func (i *Interaction) Validate() error {
	var errs fieldErrors
	errs.reference("MockupId", i.MockupID)
	errs.required("action", i.Action)
	errs.required("target", i.Target)
	errs.required("outcome", i.Outcome)
	return errs.err()
}
