package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/planboard-backend/internal/adapter/sqldb/store"
	"github.com/heartmarshall/planboard-backend/internal/auth"
	"github.com/heartmarshall/planboard-backend/internal/domain"
	"github.com/heartmarshall/planboard-backend/internal/service/lifecycle"
)

// SeedUser is one account created by SeedUsers.
type SeedUser struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// DefaultSeedUsers returns the local development accounts.
func DefaultSeedUsers(userPassword, adminPassword string) []SeedUser {
	return []SeedUser{
		{Name: "Test User", Email: "user@example.com", Password: userPassword, Role: domain.RoleUser},
		{Name: "Admin", Email: "admin@example.com", Password: adminPassword, Role: domain.RoleAdmin},
	}
}

// SeedUsers creates the given accounts. Existing emails are left alone and
// their current rows are returned.
func SeedUsers(ctx context.Context, users *store.Users, log *slog.Logger, seeds []SeedUser) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(seeds))
	for _, s := range seeds {
		hash, err := auth.HashPassword(s.Password)
		if err != nil {
			return nil, fmt.Errorf("seed %s: %w", s.Email, err)
		}

		u, err := users.Create(ctx, &domain.User{
			Name:         s.Name,
			Email:        s.Email,
			Role:         s.Role,
			Provider:     "local",
			PasswordHash: hash,
		})
		if errors.Is(err, domain.ErrConflict) {
			if u, err = users.GetByEmail(ctx, s.Email); err != nil {
				return nil, fmt.Errorf("seed %s: %w", s.Email, err)
			}
			log.InfoContext(ctx, "user already present", slog.String("email", s.Email), slog.Int64("user_id", u.ID))
			out = append(out, u)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("seed %s: %w", s.Email, err)
		}

		log.InfoContext(ctx, "user seeded", slog.String("email", s.Email), slog.Int64("user_id", u.ID))
		out = append(out, u)
	}
	return out, nil
}

// samplePNG is a 1x1 transparent PNG.
const samplePNG = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII="

// SeedSample builds a small project tree for ownerID through the lifecycle
// service, so codes and images go through the normal paths.
func SeedSample(ctx context.Context, svc *lifecycle.Service, ownerID int64) (*domain.Project, error) {
	info := "Manage your projects. Create, update and delete projects of your own."
	p, err := svc.Projects.Create(ctx, &domain.Project{UserID: ownerID, Name: "Project Management", Info: &info})
	if err != nil {
		return nil, fmt.Errorf("sample project: %w", err)
	}

	epic, err := svc.Epics.Create(ctx, &domain.Epic{ProjectID: p.ID, Name: "Accounts"})
	if err != nil {
		return nil, fmt.Errorf("sample epic: %w", err)
	}

	for _, name := range []string{"Sign in", "Sign out"} {
		story, err := svc.Stories.Create(ctx, &domain.Story{EpicID: epic.ID, Name: name})
		if err != nil {
			return nil, fmt.Errorf("sample story: %w", err)
		}
		if _, err := svc.Assertions.Create(ctx, &domain.Assertion{StoryID: story.ID, Info: name + " succeeds with valid input"}); err != nil {
			return nil, fmt.Errorf("sample assertion: %w", err)
		}

		mockup, err := svc.Mockups.Create(ctx, &domain.Mockup{StoryID: story.ID, URL: "/account", Image: samplePNG})
		if err != nil {
			return nil, fmt.Errorf("sample mockup: %w", err)
		}
		if _, err := svc.Interactions.Create(ctx, &domain.Interaction{
			MockupID: mockup.ID,
			Action:   "click",
			Target:   name,
			Outcome:  "redirect",
		}); err != nil {
			return nil, fmt.Errorf("sample interaction: %w", err)
		}
	}

	return svc.Projects.Get(ctx, p.ID)
}
