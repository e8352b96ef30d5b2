package project_test

import (
	"context"
	"testing"
	"time"

	"Planzee/internal/domain/project"
	"Planzee/internal/domain/status"
	appErrors "Planzee/internal/errors"
	"Planzee/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type fakeProjectRepository struct {
	createFn  func(ctx context.Context, p *project.Project) error
	updateFn  func(ctx context.Context, p *project.Project) error
	deleteFn  func(ctx context.Context, id ulid.ULID) error
	getByIDFn func(ctx context.Context, id ulid.ULID) (*project.Project, error)
}

func (f *fakeProjectRepository) Create(ctx context.Context, p *project.Project) error {
	if f.createFn != nil {
		return f.createFn(ctx, p)
	}
	return nil
}

func (f *fakeProjectRepository) Update(ctx context.Context, p *project.Project) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, p)
	}
	return nil
}

func (f *fakeProjectRepository) Delete(ctx context.Context, id ulid.ULID) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeProjectRepository) GetByID(ctx context.Context, id ulid.ULID) (*project.Project, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProjectRepository) Exists(ctx context.Context, id ulid.ULID) (bool, error) {
	_, err := f.GetByID(ctx, id)
	return err == nil, nil
}

func (f *fakeProjectRepository) List(ctx context.Context, filters *project.Filters, pagination *pkg.PaginationParams) ([]*project.Project, int64, error) {
	return nil, 0, nil
}

func (f *fakeProjectRepository) ListAll(ctx context.Context, filters *project.Filters) ([]*project.Project, error) {
	return nil, nil
}

type fakeStatuses struct{}

func (fakeStatuses) GetByID(ctx context.Context, id ulid.ULID) (*status.Status, error) {
	for _, st := range status.GetDefaultStatuses() {
		if st.Id == id {
			return st, nil
		}
	}
	return nil, appErrors.ErrStatusNotFound
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func ulidPtr(v ulid.ULID) *ulid.ULID { return &v }

func datePtr(s string) *time.Time {
	d, err := pkg.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return &d
}

func TestServiceCreate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		req         project.CreateProjectRequest
		wantErrCode string
		wantStatus  string
	}{
		{
			name:       "defaults to planning status",
			req:        project.CreateProjectRequest{Name: " Portal do Cliente "},
			wantStatus: "Planejamento",
		},
		{
			name:       "explicit status",
			req:        project.CreateProjectRequest{Name: "ERP", StatusId: ulidPtr(status.DefaultStatusID("Em Andamento"))},
			wantStatus: "Em Andamento",
		},
		{
			name:        "missing name",
			req:         project.CreateProjectRequest{Name: "  "},
			wantErrCode: "VALIDATION_ERROR",
		},
		{
			name:        "progress above 100",
			req:         project.CreateProjectRequest{Name: "ERP", Progress: intPtr(101)},
			wantErrCode: "VALIDATION_ERROR",
		},
		{
			name:        "negative cost",
			req:         project.CreateProjectRequest{Name: "ERP", TotalEstimatedCost: floatPtr(-1)},
			wantErrCode: "VALIDATION_ERROR",
		},
		{
			name: "deadline before start",
			req: project.CreateProjectRequest{
				Name:      "ERP",
				StartDate: datePtr("2025-05-10"),
				Deadline:  datePtr("2025-05-01"),
			},
			wantErrCode: "VALIDATION_ERROR",
		},
		{
			name:        "unknown status",
			req:         project.CreateProjectRequest{Name: "ERP", StatusId: ulidPtr(ulid.Make())},
			wantErrCode: appErrors.ErrStatusNotFound.Code,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var created *project.Project
			repo := &fakeProjectRepository{
				createFn: func(ctx context.Context, p *project.Project) error {
					created = p
					return nil
				},
			}
			svc := project.NewService(repo, fakeStatuses{})

			p, err := svc.Create(context.Background(), &tt.req)
			if tt.wantErrCode != "" {
				appErr, ok := appErrors.AsAppError(err)
				if !ok || appErr.Code != tt.wantErrCode {
					t.Fatalf("expected %s, got %v", tt.wantErrCode, err)
				}
				if created != nil {
					t.Fatalf("invalid project must not be persisted")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.StatusName != tt.wantStatus {
				t.Fatalf("expected status %s, got %s", tt.wantStatus, p.StatusName)
			}
			if created != p || pkg.IsEmptyULID(p.Id) {
				t.Fatalf("expected project with generated id to be persisted")
			}
		})
	}
}

func TestServiceUpdatePartial(t *testing.T) {
	t.Parallel()

	id := ulid.Make()
	stored := &project.Project{
		Id:       id,
		Name:     "ERP",
		StatusId: status.DefaultStatusID("Planejamento"),
		Progress: intPtr(10),
	}

	var updated *project.Project
	repo := &fakeProjectRepository{
		getByIDFn: func(ctx context.Context, pid ulid.ULID) (*project.Project, error) {
			if pid != id {
				return nil, gorm.ErrRecordNotFound
			}
			cp := *stored
			return &cp, nil
		},
		updateFn: func(ctx context.Context, p *project.Project) error {
			updated = p
			return nil
		},
	}
	svc := project.NewService(repo, fakeStatuses{})

	p, err := svc.Update(context.Background(), id, &project.UpdateProjectRequest{
		Progress: intPtr(55),
		StatusId: ulidPtr(status.DefaultStatusID("Concluído")),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated != p || p.ProgressOrZero() != 55 || p.StatusName != "Concluído" || p.Name != "ERP" {
		t.Fatalf("unexpected update result: %+v", p)
	}

	_, err = svc.Update(context.Background(), ulid.Make(), &project.UpdateProjectRequest{})
	if appErr, ok := appErrors.AsAppError(err); !ok || appErr.Code != appErrors.ErrProjectNotFound.Code {
		t.Fatalf("expected PROJECT_NOT_FOUND, got %v", err)
	}
}

func TestProjectOverlaps(t *testing.T) {
	t.Parallel()

	from, to := *datePtr("2025-03-01"), *datePtr("2025-03-31")

	tests := []struct {
		name string
		p    project.Project
		want bool
	}{
		{"inside", project.Project{StartDate: datePtr("2025-03-05"), Deadline: datePtr("2025-03-20")}, true},
		{"spans window", project.Project{StartDate: datePtr("2025-01-01"), Deadline: datePtr("2025-12-31")}, true},
		{"ends on first day", project.Project{StartDate: datePtr("2025-02-01"), Deadline: datePtr("2025-03-01")}, true},
		{"before", project.Project{StartDate: datePtr("2025-01-01"), Deadline: datePtr("2025-02-28")}, false},
		{"after", project.Project{StartDate: datePtr("2025-04-01"), Deadline: datePtr("2025-04-30")}, false},
		{"no start date", project.Project{Deadline: datePtr("2025-03-10")}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.p.Overlaps(from, to); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
