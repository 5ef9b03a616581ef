package services

import (
	"context"
	"errors"
	"testing"

	"github.com/course-kit/coursekit/internal/course"
	"github.com/course-kit/coursekit/internal/database"
)

func TestModuleInsertAndUpdate(t *testing.T) {
	dbCtx := setupServiceDB(t)
	ctx := context.Background()
	svc := NewModuleService(dbCtx)

	id, err := svc.Insert(ctx, &course.Module{Name: "Basics", Tags: []string{"week1"}, Letters: true})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if id == 0 {
		t.Fatalf("expected generated module ID")
	}

	record, err := database.NewModuleRepository(dbCtx).FindByID(ctx, id)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if record == nil || record.Name != "Basics" || !record.Letters {
		t.Fatalf("unexpected module record: %+v", record)
	}
	if len(record.Tags) != 1 || record.Tags[0] != "week1" {
		t.Fatalf("module tags not registered: %v", record.Tags)
	}

	if err := svc.Update(ctx, &course.Module{ID: id, Name: "Fundamentals", Tags: []string{"week2"}}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	record, err = database.NewModuleRepository(dbCtx).FindByID(ctx, id)
	if err != nil {
		t.Fatalf("FindByID after update: %v", err)
	}
	if record.Name != "Fundamentals" {
		t.Fatalf("name not updated: %s", record.Name)
	}
	if len(record.Tags) != 1 || record.Tags[0] != "week2" {
		t.Fatalf("module tags not diffed: %v", record.Tags)
	}
}

func TestModuleUpdateMissing(t *testing.T) {
	dbCtx := setupServiceDB(t)
	svc := NewModuleService(dbCtx)

	err := svc.Update(context.Background(), &course.Module{ID: 999, Name: "Ghost"})
	if !errors.Is(err, course.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestModuleDeleteRetractsTags(t *testing.T) {
	dbCtx := setupServiceDB(t)
	ctx := context.Background()
	svc := NewModuleService(dbCtx)

	id, err := svc.Insert(ctx, &course.Module{Name: "Basics", Tags: []string{"week1"}})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := svc.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	record, err := database.NewModuleRepository(dbCtx).FindByID(ctx, id)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if record != nil {
		t.Fatalf("module row survived delete")
	}

	tags, err := database.NewTagRepository(dbCtx).AllTags(ctx, course.SpaceModule)
	if err != nil {
		t.Fatalf("AllTags: %v", err)
	}
	if len(tags) != 0 {
		t.Fatalf("module tag memberships survived delete: %+v", tags)
	}
}

func TestModuleNameInUse(t *testing.T) {
	dbCtx := setupServiceDB(t)
	ctx := context.Background()
	svc := NewModuleService(dbCtx)

	id, err := svc.Insert(ctx, &course.Module{Name: "Basics"})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	inUse, err := svc.NameInUse(ctx, "Basics", 0)
	if err != nil {
		t.Fatalf("NameInUse: %v", err)
	}
	if !inUse {
		t.Fatalf("taken name must report in use")
	}

	inUse, err = svc.NameInUse(ctx, "Basics", id)
	if err != nil {
		t.Fatalf("NameInUse self: %v", err)
	}
	if inUse {
		t.Fatalf("a module does not conflict with its own name")
	}
}
