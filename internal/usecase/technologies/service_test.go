package technologies

import (
	"context"
	"errors"
	"testing"

	"github.com/jobgrid/jobgrid/internal/domain"
	"github.com/jobgrid/jobgrid/internal/domain/technology"
)

type repoMock struct {
	listFn func(ctx context.Context) ([]technology.Technology, error)
}

func (m *repoMock) List(ctx context.Context) ([]technology.Technology, error) {
	return m.listFn(ctx)
}

func fixtureService() *Service {
	return New(&repoMock{
		listFn: func(context.Context) ([]technology.Technology, error) {
			return []technology.Technology{
				technology.Reconstruct("t1", "React", "react", "", true),
				technology.Reconstruct("t2", "Go", "go", "", true),
				technology.Reconstruct("t3", "COBOL", "cobol", "", false),
			}, nil
		},
	})
}

func TestListActiveAlphabetical(t *testing.T) {
	svc := fixtureService()

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("inactive technologies must be hidden, got %d", len(got))
	}
	if got[0].Name() != "Go" || got[1].Name() != "React" {
		t.Fatalf("expected alphabetical order, got %s, %s", got[0].Name(), got[1].Name())
	}
}

func TestGetBySlugCaseInsensitive(t *testing.T) {
	svc := fixtureService()

	tech, err := svc.GetBySlug(context.Background(), "GO")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tech.ID() != "t2" {
		t.Fatalf("expected t2, got %s", tech.ID())
	}
}

func TestGetBySlugResolvesInactive(t *testing.T) {
	svc := fixtureService()

	tech, err := svc.GetBySlug(context.Background(), "cobol")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tech.Active() {
		t.Fatal("expected the inactive technology itself")
	}
}

func TestGetBySlugNotFound(t *testing.T) {
	svc := fixtureService()

	_, err := svc.GetBySlug(context.Background(), "fortran")
	if !errors.Is(err, domain.ErrTechnologyNotFound) {
		t.Fatalf("expected ErrTechnologyNotFound, got %v", err)
	}
}
