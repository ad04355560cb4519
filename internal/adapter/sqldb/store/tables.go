package store

import "github.com/heartmarshall/planboard-backend/internal/domain"

// Table describes how one entity kind maps onto its table.
type Table[T any] struct {
	Name         string
	Kind         domain.Kind
	Columns      []string
	ParentColumn string
	// Values returns the writable columns except active and timestamps.
	Values func(*T) map[string]any
}

var recordColumns = []string{"id", "active", "created_at", "updated_at"}

func columns(own ...string) []string {
	return append(append([]string{}, recordColumns...), own...)
}

var Projects = Table[domain.Project]{
	Name:         "projects",
	Kind:         domain.KindProject,
	Columns:      columns("user_id", "name", "info"),
	ParentColumn: "user_id",
	Values: func(p *domain.Project) map[string]any {
		return map[string]any{"user_id": p.UserID, "name": p.Name, "info": p.Info}
	},
}

var Epics = Table[domain.Epic]{
	Name:         "epics",
	Kind:         domain.KindEpic,
	Columns:      columns("project_id", "seq", "code", "name", "info"),
	ParentColumn: "project_id",
	Values: func(e *domain.Epic) map[string]any {
		return map[string]any{
			"project_id": e.ProjectID, "seq": e.Seq, "code": e.Code,
			"name": e.Name, "info": e.Info,
		}
	},
}

var Stories = Table[domain.Story]{
	Name:         "stories",
	Kind:         domain.KindStory,
	Columns:      columns("epic_id", "seq", "code", "name", "info"),
	ParentColumn: "epic_id",
	Values: func(s *domain.Story) map[string]any {
		return map[string]any{
			"epic_id": s.EpicID, "seq": s.Seq, "code": s.Code,
			"name": s.Name, "info": s.Info,
		}
	},
}

var Mockups = Table[domain.Mockup]{
	Name:         "mockups",
	Kind:         domain.KindMockup,
	Columns:      columns("story_id", "seq", "code", "url", "image_path", "raw"),
	ParentColumn: "story_id",
	Values: func(m *domain.Mockup) map[string]any {
		return map[string]any{
			"story_id": m.StoryID, "seq": m.Seq, "code": m.Code,
			"url": m.URL, "image_path": m.ImagePath, "raw": m.Raw,
		}
	},
}

var Assertions = Table[domain.Assertion]{
	Name:         "assertions",
	Kind:         domain.KindAssertion,
	Columns:      columns("story_id", "seq", "code", "info"),
	ParentColumn: "story_id",
	Values: func(a *domain.Assertion) map[string]any {
		return map[string]any{"story_id": a.StoryID, "seq": a.Seq, "code": a.Code, "info": a.Info}
	},
}

var Interactions = Table[domain.Interaction]{
	Name:         "interactions",
	Kind:         domain.KindInteraction,
	Columns:      columns("mockup_id", "seq", "code", "action", "target", "outcome"),
	ParentColumn: "mockup_id",
	Values: func(i *domain.Interaction) map[string]any {
		return map[string]any{
			"mockup_id": i.MockupID, "seq": i.Seq, "code": i.Code,
			"action": i.Action, "target": i.Target, "outcome": i.Outcome,
		}
	},
}

// location returns the table and parent column of a kind.
func location(kind domain.Kind) (table, parentColumn string, ok bool) {
	switch kind {
	case domain.KindProject:
		return Projects.Name, Projects.ParentColumn, true
	case domain.KindEpic:
		return Epics.Name, Epics.ParentColumn, true
	case domain.KindStory:
		return Stories.Name, Stories.ParentColumn, true
	case domain.KindMockup:
		return Mockups.Name, Mockups.ParentColumn, true
	case domain.KindAssertion:
		return Assertions.Name, Assertions.ParentColumn, true
	case domain.KindInteraction:
		return Interactions.Name, Interactions.ParentColumn, true
	}
	return "", "", false
}
