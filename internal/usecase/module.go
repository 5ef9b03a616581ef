package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/course-kit/coursekit/internal/course"
	"github.com/course-kit/coursekit/internal/database"
	"github.com/course-kit/coursekit/internal/services"
)

// AddModule creates a module and returns its assigned ID. Modules live only
// in the relational index; they have no archive folder.
func (s *Store) AddModule(ctx context.Context, m *course.Module) (int64, error) {
	if strings.TrimSpace(m.Name) == "" {
		return 0, fmt.Errorf("module name must not be empty: %w", course.ErrValidation)
	}

	svc := services.NewModuleService(s.dbCtx)
	inUse, err := svc.NameInUse(ctx, m.Name, 0)
	if err != nil {
		return 0, err
	}
	if inUse {
		return 0, fmt.Errorf("module %q: %w", m.Name, course.ErrDuplicateTitle)
	}

	id, err := svc.Insert(ctx, m.Clone())
	if err != nil {
		s.logger.Error("add module failed", zap.String("name", m.Name), zap.Error(err))
		return 0, err
	}
	return id, nil
}

// UpdateModule rewrites a module row and diffs its tag memberships.
func (s *Store) UpdateModule(ctx context.Context, m *course.Module) error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("module name must not be empty: %w", course.ErrValidation)
	}

	svc := services.NewModuleService(s.dbCtx)
	inUse, err := svc.NameInUse(ctx, m.Name, m.ID)
	if err != nil {
		return err
	}
	if inUse {
		return fmt.Errorf("module %q: %w", m.Name, course.ErrDuplicateTitle)
	}

	if err := svc.Update(ctx, m.Clone()); err != nil {
		s.logger.Error("update module failed", zap.Int64("id", m.ID), zap.Error(err))
		return err
	}
	return nil
}

// DeleteModules removes modules best-effort, returning the completed count
// alongside the first error.
func (s *Store) DeleteModules(ctx context.Context, ids []int64) (int, error) {
	svc := services.NewModuleService(s.dbCtx)

	deleted := 0
	for _, id := range ids {
		if err := svc.Delete(ctx, id); err != nil {
			s.logger.Error("delete module failed", zap.Int64("id", id), zap.Error(err))
			return deleted, err
		}
		deleted++
	}
	return deleted, nil
}

// FilteredModules returns modules, restricted to those carrying any of the
// given tags when the tag filter is non-empty.
func (s *Store) FilteredModules(ctx context.Context, tags []string) ([]database.ModuleRecord, error) {
	repo := database.NewModuleRepository(s.dbCtx)
	all, err := repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(tags) == 0 {
		return all, nil
	}

	tagRepo := database.NewTagRepository(s.dbCtx)
	wanted := make(map[string]bool)
	for _, tag := range tags {
		members, err := tagRepo.MembersOf(ctx, course.SpaceModule, tag)
		if err != nil {
			return nil, err
		}
		for _, owner := range members {
			wanted[owner] = true
		}
	}

	var result []database.ModuleRecord
	for _, m := range all {
		if wanted[database.ModuleOwnerID(m.ID)] {
			result = append(result, m)
		}
	}
	return result, nil
}

// ModuleTags lists every tag in the module space with its members.
func (s *Store) ModuleTags(ctx context.Context) ([]database.TagRecord, error) {
	return database.NewTagRepository(s.dbCtx).AllTags(ctx, course.SpaceModule)
}
