package task_test

import (
	"context"
	"testing"

	"Planzee/internal/domain/shared"
	"Planzee/internal/domain/task"
	appErrors "Planzee/internal/errors"
	"Planzee/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type fakeProjectChecker struct {
	known map[ulid.ULID]bool
}

func (f *fakeProjectChecker) Exists(ctx context.Context, id ulid.ULID) (bool, error) {
	return f.known[id], nil
}

type fakeTaskRepository struct {
	tasks   map[ulid.ULID]*task.Task
	created int
	updated int
}

func newFakeTaskRepository() *fakeTaskRepository {
	return &fakeTaskRepository{tasks: make(map[ulid.ULID]*task.Task)}
}

func (f *fakeTaskRepository) Create(ctx context.Context, t *task.Task) error {
	f.created++
	f.tasks[t.Id] = t
	return nil
}

func (f *fakeTaskRepository) Update(ctx context.Context, t *task.Task) error {
	f.updated++
	f.tasks[t.Id] = t
	return nil
}

func (f *fakeTaskRepository) Delete(ctx context.Context, id ulid.ULID) error {
	delete(f.tasks, id)
	return nil
}

func (f *fakeTaskRepository) GetByID(ctx context.Context, id ulid.ULID) (*task.Task, error) {
	if t, ok := f.tasks[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTaskRepository) ListByProject(ctx context.Context, projectID ulid.ULID, filters *task.Filters, pagination *pkg.PaginationParams) ([]*task.Task, int64, error) {
	out, _ := f.ListAllByProject(ctx, projectID)
	return out, int64(len(out)), nil
}

func (f *fakeTaskRepository) ListAllByProject(ctx context.Context, projectID ulid.ULID) ([]*task.Task, error) {
	var out []*task.Task
	for _, t := range f.tasks {
		if t.ProjectId == projectID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepository) ListByProjects(ctx context.Context, projectIDs []ulid.ULID) ([]*task.Task, error) {
	var out []*task.Task
	for _, id := range projectIDs {
		tasks, _ := f.ListAllByProject(ctx, id)
		out = append(out, tasks...)
	}
	return out, nil
}

func newService(projectID ulid.ULID) (*task.Service, *fakeTaskRepository) {
	repo := newFakeTaskRepository()
	checker := shared.NewProjectCheckerService(&fakeProjectChecker{known: map[ulid.ULID]bool{projectID: true}})
	return task.NewService(repo, checker), repo
}

func TestServiceCreate(t *testing.T) {
	t.Parallel()

	projectID := ulid.Make()

	tests := []struct {
		name        string
		req         task.CreateTaskRequest
		wantErrCode string
	}{
		{name: "defaults", req: task.CreateTaskRequest{ProjectId: projectID, Title: "Levantar requisitos"}},
		{name: "blocked", req: task.CreateTaskRequest{ProjectId: projectID, Title: "Integração", Status: task.StatusBlocked}},
		{name: "unknown project", req: task.CreateTaskRequest{ProjectId: ulid.Make(), Title: "x"}, wantErrCode: appErrors.ErrProjectNotFound.Code},
		{name: "empty title", req: task.CreateTaskRequest{ProjectId: projectID, Title: " "}, wantErrCode: "VALIDATION_ERROR"},
		{name: "invalid status", req: task.CreateTaskRequest{ProjectId: projectID, Title: "x", Status: "done"}, wantErrCode: "VALIDATION_ERROR"},
		{name: "invalid priority", req: task.CreateTaskRequest{ProjectId: projectID, Title: "x", Priority: "urgente"}, wantErrCode: "VALIDATION_ERROR"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, repo := newService(projectID)
			created, err := svc.Create(context.Background(), &tt.req)

			if tt.wantErrCode != "" {
				appErr, ok := appErrors.AsAppError(err)
				if !ok || appErr.Code != tt.wantErrCode {
					t.Fatalf("expected %s, got %v", tt.wantErrCode, err)
				}
				if repo.created != 0 {
					t.Fatalf("invalid task must not be persisted")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.req.Status == "" && created.Status != task.StatusPending {
				t.Fatalf("expected default status pendente, got %s", created.Status)
			}
			if created.Priority != task.PriorityMedium {
				t.Fatalf("expected default priority media, got %s", created.Priority)
			}
		})
	}
}

func TestServiceChangeStatus(t *testing.T) {
	t.Parallel()

	projectID := ulid.Make()
	svc, repo := newService(projectID)
	ctx := context.Background()

	created, err := svc.Create(ctx, &task.CreateTaskRequest{ProjectId: projectID, Title: "Deploy"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	changed, err := svc.ChangeStatus(ctx, created.Id, task.StatusCompleted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !changed.IsCompleted() || repo.updated != 1 {
		t.Fatalf("expected task to be completed and persisted")
	}

	if _, err := svc.ChangeStatus(ctx, created.Id, "arquivada"); err == nil {
		t.Fatalf("expected validation error for unknown status")
	}

	if _, err := svc.ChangeStatus(ctx, ulid.Make(), task.StatusBlocked); err == nil {
		t.Fatalf("expected not found error")
	} else if appErr, _ := appErrors.AsAppError(err); appErr.Code != appErrors.ErrTaskNotFound.Code {
		t.Fatalf("expected TASK_NOT_FOUND, got %s", appErr.Code)
	}
}

func TestServiceListByProjectValidatesFilter(t *testing.T) {
	t.Parallel()

	projectID := ulid.Make()
	svc, _ := newService(projectID)

	bad := task.Status("qualquer")
	_, _, err := svc.ListByProject(context.Background(), projectID, &task.Filters{Status: &bad}, nil)
	if appErr, ok := appErrors.AsAppError(err); !ok || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}
