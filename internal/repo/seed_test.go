package repo

import (
	"context"
	"testing"

	"github.com/tbourn/go-landing-backend/internal/domain"
)

func TestReplaceContent_WipesAndRepopulates(t *testing.T) {
	db := newTestDB(t, "seedrepo1")
	ctx := context.Background()

	// Pre-existing catalog rows that must disappear.
	if _, err := CreateProject(ctx, db, "old project", "d", nil); err != nil {
		t.Fatalf("seed old project: %v", err)
	}
	if _, err := CreateClient(ctx, db, "old client", "CEO", "d", nil); err != nil {
		t.Fatalf("seed old client: %v", err)
	}
	// A lead row that must survive.
	if _, err := CreateContact(ctx, db, "keep me", "k@x.com", "1234 5678", "City"); err != nil {
		t.Fatalf("seed contact: %v", err)
	}

	projects := []domain.Project{{Name: "p1", Description: "d1"}, {Name: "p2", Description: "d2"}}
	clients := []domain.Client{{Name: "c1", Designation: "x", Description: "d"}}
	if err := ReplaceContent(ctx, db, projects, clients); err != nil {
		t.Fatalf("ReplaceContent: %v", err)
	}

	gotP, err := ListProjects(ctx, db)
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	if len(gotP) != 2 {
		t.Fatalf("expected 2 projects after reseed, got %d", len(gotP))
	}
	for _, p := range gotP {
		if p.Name == "old project" {
			t.Fatalf("old catalog row survived reseed")
		}
	}

	gotC, err := ListClients(ctx, db)
	if err != nil {
		t.Fatalf("ListClients: %v", err)
	}
	if len(gotC) != 1 || gotC[0].Name != "c1" {
		t.Fatalf("unexpected clients after reseed: %+v", gotC)
	}

	leads, err := ListContacts(ctx, db)
	if err != nil {
		t.Fatalf("ListContacts: %v", err)
	}
	if len(leads) != 1 || leads[0].FullName != "keep me" {
		t.Fatalf("lead rows must be untouched by reseed: %+v", leads)
	}
}

func TestReplaceContent_EmptyReplacement(t *testing.T) {
	db := newTestDB(t, "seedrepo2")
	ctx := context.Background()

	if _, err := CreateProject(ctx, db, "p", "d", nil); err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if err := ReplaceContent(ctx, db, nil, nil); err != nil {
		t.Fatalf("ReplaceContent: %v", err)
	}

	out, err := ListProjects(ctx, db)
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty catalog, got %d rows", len(out))
	}
}
