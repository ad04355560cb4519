package lifecycle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/planboard-backend/internal/domain"
)

//go:generate moq -out user_directory_mock_test.go -pkg lifecycle . userDirectory

type userDirectory interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// Stores groups the per-kind entity stores.
type Stores struct {
	Projects     entityStore[domain.Project, *domain.Project]
	Epics        entityStore[domain.Epic, *domain.Epic]
	Stories      entityStore[domain.Story, *domain.Story]
	Mockups      entityStore[domain.Mockup, *domain.Mockup]
	Assertions   entityStore[domain.Assertion, *domain.Assertion]
	Interactions entityStore[domain.Interaction, *domain.Interaction]
}

// Deps are the collaborators shared by every controller.
type Deps struct {
	Users    userDirectory
	Codes    codeAssigner
	Tree     treeLoader
	Tx       txManager
	Images   imageStore
	Events   eventPublisher
	Observer mutationObserver
}

type deps struct {
	codes    codeAssigner
	tree     treeLoader
	tx       txManager
	events   eventPublisher
	observer mutationObserver
	log      *slog.Logger
}

// Service exposes one controller per entity kind plus the nested child
// listings.
type Service struct {
	Projects     *Controller[domain.Project, *domain.Project]
	Epics        *Controller[domain.Epic, *domain.Epic]
	Stories      *Controller[domain.Story, *domain.Story]
	Mockups      *Controller[domain.Mockup, *domain.Mockup]
	Assertions   *Controller[domain.Assertion, *domain.Assertion]
	Interactions *Controller[domain.Interaction, *domain.Interaction]

	tree treeLoader
}

// NewService wires a controller for every kind.
func NewService(log *slog.Logger, stores Stores, d Deps) *Service {
	shared := deps{
		codes:    d.Codes,
		tree:     d.Tree,
		tx:       d.Tx,
		events:   d.Events,
		observer: d.Observer,
		log:      log,
	}

	return &Service{
		Projects: newController(domain.KindProject, shared, stores.Projects,
			existingUser(d.Users),
			Policy[domain.Project, *domain.Project]{HardDelete: true}),
		Epics: newController(domain.KindEpic, shared, stores.Epics,
			activeParent[domain.Project](stores.Projects),
			Policy[domain.Epic, *domain.Epic]{PreloadOnPatch: true}),
		Stories: newController(domain.KindStory, shared, stores.Stories,
			activeParent[domain.Epic](stores.Epics),
			Policy[domain.Story, *domain.Story]{PreloadOnPatch: true}),
		Mockups: newController(domain.KindMockup, shared, stores.Mockups,
			activeParent[domain.Story](stores.Stories),
			mockupPolicy(d.Images, log.With("service", domain.KindMockup.String()))),
		Assertions: newController(domain.KindAssertion, shared, stores.Assertions,
			activeParent[domain.Story](stores.Stories),
			Policy[domain.Assertion, *domain.Assertion]{}),
		Interactions: newController(domain.KindInteraction, shared, stores.Interactions,
			activeParent[domain.Mockup](stores.Mockups),
			Policy[domain.Interaction, *domain.Interaction]{}),
		tree: d.Tree,
	}
}

// ProjectsOf returns the active projects owned by an existing user.
func (s *Service) ProjectsOf(ctx context.Context, userID int64) ([]*domain.Project, error) {
	return s.Projects.ListByParent(ctx, userID)
}

// EpicsOf returns the active epics of an active project.
func (s *Service) EpicsOf(ctx context.Context, projectID int64) ([]*domain.Epic, error) {
	return childrenOf[domain.Epic](ctx, s.tree, domain.KindProject, projectID, domain.KindEpic)
}

// StoriesOf returns the active stories of an active epic, newest first.
func (s *Service) StoriesOf(ctx context.Context, epicID int64) ([]*domain.Story, error) {
	return childrenOf[domain.Story](ctx, s.tree, domain.KindEpic, epicID, domain.KindStory)
}

// AssertionsOf returns the active assertions of an active story.
func (s *Service) AssertionsOf(ctx context.Context, storyID int64) ([]*domain.Assertion, error) {
	return childrenOf[domain.Assertion](ctx, s.tree, domain.KindStory, storyID, domain.KindAssertion)
}

// MockupsOf returns the active mockups of an active story.
func (s *Service) MockupsOf(ctx context.Context, storyID int64) ([]*domain.Mockup, error) {
	return childrenOf[domain.Mockup](ctx, s.tree, domain.KindStory, storyID, domain.KindMockup)
}

// InteractionsOf returns the active interactions of an active mockup.
func (s *Service) InteractionsOf(ctx context.Context, mockupID int64) ([]*domain.Interaction, error) {
	return childrenOf[domain.Interaction](ctx, s.tree, domain.KindMockup, mockupID, domain.KindInteraction)
}

func childrenOf[T any, P domain.EntityPtr[T]](ctx context.Context, tree treeLoader, parent domain.Kind, parentID int64, child domain.Kind) ([]P, error) {
	nodes, err := tree.LoadChildren(ctx, parent, parentID, child)
	if err != nil {
		return nil, err
	}
	out, err := narrow[T, P](nodes)
	if err != nil {
		return nil, fmt.Errorf("%s of %s %d: %w", child.Plural(), parent, parentID, err)
	}
	return out, nil
}

func activeParent[T any, P domain.EntityPtr[T]](parents entityStore[T, P]) parentCheck {
	return func(ctx context.Context, id int64) error {
		_, err := parents.FindActive(ctx, id)
		return err
	}
}

func existingUser(users userDirectory) parentCheck {
	return func(ctx context.Context, id int64) error {
		ok, err := users.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
		}
		return nil
	}
}
