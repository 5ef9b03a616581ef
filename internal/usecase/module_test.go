package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/course-kit/coursekit/internal/course"
)

func TestAddModuleDuplicateName(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	if _, err := store.AddModule(ctx, &course.Module{Name: "Basics"}); err != nil {
		t.Fatalf("first add: %v", err)
	}

	_, err := store.AddModule(ctx, &course.Module{Name: "Basics"})
	if !errors.Is(err, course.ErrDuplicateTitle) {
		t.Fatalf("expected ErrDuplicateTitle, got %v", err)
	}
}

func TestAddModuleEmptyName(t *testing.T) {
	store, _ := setupStore(t)

	_, err := store.AddModule(context.Background(), &course.Module{Name: " "})
	if !errors.Is(err, course.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestUpdateModuleRejectsTakenName(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	if _, err := store.AddModule(ctx, &course.Module{Name: "Basics"}); err != nil {
		t.Fatalf("add Basics: %v", err)
	}
	id, err := store.AddModule(ctx, &course.Module{Name: "Advanced"})
	if err != nil {
		t.Fatalf("add Advanced: %v", err)
	}

	err = store.UpdateModule(ctx, &course.Module{ID: id, Name: "Basics"})
	if !errors.Is(err, course.ErrDuplicateTitle) {
		t.Fatalf("expected ErrDuplicateTitle, got %v", err)
	}

	// Keeping its own name is not a conflict.
	if err := store.UpdateModule(ctx, &course.Module{ID: id, Name: "Advanced", Subjects: "functions"}); err != nil {
		t.Fatalf("self-named update: %v", err)
	}
}

func TestFilteredModulesByTag(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	if _, err := store.AddModule(ctx, &course.Module{Name: "Basics", Tags: []string{"week1"}}); err != nil {
		t.Fatalf("add Basics: %v", err)
	}
	if _, err := store.AddModule(ctx, &course.Module{Name: "Advanced", Tags: []string{"week8"}}); err != nil {
		t.Fatalf("add Advanced: %v", err)
	}

	all, err := store.FilteredModules(ctx, nil)
	if err != nil {
		t.Fatalf("unfiltered: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 modules, got %d", len(all))
	}

	tagged, err := store.FilteredModules(ctx, []string{"week1"})
	if err != nil {
		t.Fatalf("tag filter: %v", err)
	}
	if len(tagged) != 1 || tagged[0].Name != "Basics" {
		t.Fatalf("tag filter expected only Basics, got %+v", tagged)
	}
}

func TestModuleTagsListing(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	id, err := store.AddModule(ctx, &course.Module{Name: "Basics", Tags: []string{"week1", "intro"}})
	if err != nil {
		t.Fatalf("AddModule: %v", err)
	}

	tags, err := store.ModuleTags(ctx)
	if err != nil {
		t.Fatalf("ModuleTags: %v", err)
	}
	if len(tags) != 2 {
		t.Fatalf("expected 2 tags, got %+v", tags)
	}

	if _, err := store.DeleteModules(ctx, []int64{id}); err != nil {
		t.Fatalf("DeleteModules: %v", err)
	}
	tags, err = store.ModuleTags(ctx)
	if err != nil {
		t.Fatalf("ModuleTags after delete: %v", err)
	}
	if len(tags) != 0 {
		t.Fatalf("tags must vanish with their last member, got %+v", tags)
	}
}
