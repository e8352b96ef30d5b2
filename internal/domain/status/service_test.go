package status_test

import (
	"context"
	"testing"

	"Planzee/internal/domain/status"
	appErrors "Planzee/internal/errors"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type fakeStatusRepository struct {
	byID          map[ulid.ULID]*status.Status
	projectCounts map[ulid.ULID]int64
	created       []*status.Status
	deleted       []ulid.ULID
}

func newFakeStatusRepository(statuses ...*status.Status) *fakeStatusRepository {
	f := &fakeStatusRepository{
		byID:          make(map[ulid.ULID]*status.Status),
		projectCounts: make(map[ulid.ULID]int64),
	}
	for _, st := range statuses {
		f.byID[st.Id] = st
	}
	return f
}

func (f *fakeStatusRepository) Create(ctx context.Context, st *status.Status) error {
	f.created = append(f.created, st)
	f.byID[st.Id] = st
	return nil
}

func (f *fakeStatusRepository) Update(ctx context.Context, st *status.Status) error {
	f.byID[st.Id] = st
	return nil
}

func (f *fakeStatusRepository) Delete(ctx context.Context, id ulid.ULID) error {
	f.deleted = append(f.deleted, id)
	delete(f.byID, id)
	return nil
}

func (f *fakeStatusRepository) GetByID(ctx context.Context, id ulid.ULID) (*status.Status, error) {
	if st, ok := f.byID[id]; ok {
		return st, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStatusRepository) GetByName(ctx context.Context, name string) (*status.Status, error) {
	for _, st := range f.byID {
		if st.Name == name {
			return st, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStatusRepository) List(ctx context.Context) ([]*status.Status, error) {
	out := make([]*status.Status, 0, len(f.byID))
	for _, st := range f.byID {
		out = append(out, st)
	}
	return out, nil
}

func (f *fakeStatusRepository) CountProjects(ctx context.Context, id ulid.ULID) (int64, error) {
	return f.projectCounts[id], nil
}

func TestServiceCreate(t *testing.T) {
	t.Parallel()

	existing := &status.Status{Id: ulid.Make(), Name: "Em Andamento"}

	tests := []struct {
		name        string
		req         status.CreateStatusRequest
		wantErrCode string
		wantName    string
	}{
		{name: "normalizes name", req: status.CreateStatusRequest{Name: "  em   revisão ", Color: "#123ABC"}, wantName: "Em Revisão"},
		{name: "empty name", req: status.CreateStatusRequest{Name: "   "}, wantErrCode: "VALIDATION_ERROR"},
		{name: "invalid color", req: status.CreateStatusRequest{Name: "Revisão", Color: "blue"}, wantErrCode: "VALIDATION_ERROR"},
		{name: "duplicate", req: status.CreateStatusRequest{Name: "em andamento"}, wantErrCode: "CONFLICT"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := status.NewService(newFakeStatusRepository(existing))
			st, err := svc.Create(context.Background(), &tt.req)

			if tt.wantErrCode != "" {
				appErr, ok := appErrors.AsAppError(err)
				if !ok {
					t.Fatalf("expected AppError, got %v", err)
				}
				if appErr.Code != tt.wantErrCode {
					t.Fatalf("expected %s, got %s", tt.wantErrCode, appErr.Code)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if st.Name != tt.wantName {
				t.Fatalf("expected name %q, got %q", tt.wantName, st.Name)
			}
		})
	}
}

func TestServiceDeleteRefusesStatusInUse(t *testing.T) {
	t.Parallel()

	st := &status.Status{Id: ulid.Make(), Name: "Pausado"}
	repo := newFakeStatusRepository(st)
	repo.projectCounts[st.Id] = 2
	svc := status.NewService(repo)

	err := svc.Delete(context.Background(), st.Id)
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != appErrors.ErrStatusInUse.Code {
		t.Fatalf("expected STATUS_IN_USE, got %v", err)
	}
	if appErr.Details["projects"] != int64(2) {
		t.Fatalf("expected project count in details, got %#v", appErr.Details)
	}
	if len(repo.deleted) != 0 {
		t.Fatalf("status in use must not be deleted")
	}
}

func TestServiceIsFinal(t *testing.T) {
	t.Parallel()

	repo := newFakeStatusRepository(status.GetDefaultStatuses()...)
	svc := status.NewService(repo)
	ctx := context.Background()

	for _, def := range status.DefaultStatuses {
		final, err := svc.IsFinal(ctx, status.DefaultStatusID(def.Name))
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", def.Name, err)
		}
		if final != def.IsFinal {
			t.Fatalf("%s: expected final=%v, got %v", def.Name, def.IsFinal, final)
		}
	}

	_, err := svc.IsFinal(ctx, ulid.Make())
	if appErr, ok := appErrors.AsAppError(err); !ok || appErr.Code != appErrors.ErrStatusNotFound.Code {
		t.Fatalf("expected STATUS_NOT_FOUND, got %v", err)
	}
}
