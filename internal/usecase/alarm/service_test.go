package alarm

import (
	"context"
	"errors"
	"testing"
	"time"

	"orgbox/internal/domain/entity"
)

type stubAlarmRepo struct {
	alarms map[int64]*entity.Alarm
	nextID int64
}

func newStubAlarmRepo() *stubAlarmRepo {
	return &stubAlarmRepo{alarms: make(map[int64]*entity.Alarm), nextID: 1}
}

func (r *stubAlarmRepo) Get(_ context.Context, id int64) (*entity.Alarm, error) {
	a, ok := r.alarms[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *stubAlarmRepo) ListByUser(_ context.Context, userID int64) ([]*entity.Alarm, error) {
	out := make([]*entity.Alarm, 0, len(r.alarms))
	for _, a := range r.alarms {
		if a.UserID == userID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *stubAlarmRepo) Create(_ context.Context, a *entity.Alarm) error {
	a.ID = r.nextID
	r.nextID++
	cp := *a
	r.alarms[a.ID] = &cp
	return nil
}

func (r *stubAlarmRepo) Update(_ context.Context, a *entity.Alarm) error {
	if _, ok := r.alarms[a.ID]; !ok {
		return entity.ErrNotFound
	}
	cp := *a
	r.alarms[a.ID] = &cp
	return nil
}

func (r *stubAlarmRepo) Delete(_ context.Context, id int64) error {
	delete(r.alarms, id)
	return nil
}

func strPtr(s string) *string { return &s }

func TestService_Create(t *testing.T) {
	repo := newStubAlarmRepo()
	svc := &Service{Repo: repo}

	at := time.Date(2026, 9, 1, 7, 0, 0, 0, time.UTC)
	err := svc.Create(context.Background(), CreateInput{
		UserID: 1, AlarmName: "Wake", Time: at,
	})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if len(repo.alarms) != 1 {
		t.Fatalf("stored=%d, want 1", len(repo.alarms))
	}
}

func TestService_Create_validation(t *testing.T) {
	at := time.Date(2026, 9, 1, 7, 0, 0, 0, time.UTC)
	tests := []struct {
		name      string
		in        CreateInput
		wantField string
	}{
		{"user id must be positive", CreateInput{UserID: 0, AlarmName: "Wake", Time: at}, "userId"},
		{"name required", CreateInput{UserID: 1, AlarmName: "", Time: at}, "alarmName"},
		{"time required", CreateInput{UserID: 1, AlarmName: "Wake"}, "time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &Service{Repo: newStubAlarmRepo()}

			err := svc.Create(context.Background(), tt.in)
			var verr *entity.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("want ValidationError, got %v", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("field=%q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}

// 名前だけ更新しても時刻は据え置き
func TestService_Update_partial(t *testing.T) {
	repo := newStubAlarmRepo()
	at := time.Date(2026, 9, 1, 7, 0, 0, 0, time.UTC)
	repo.alarms[1] = &entity.Alarm{ID: 1, UserID: 1, AlarmName: "Wake", Time: at}
	svc := &Service{Repo: repo}

	err := svc.Update(context.Background(), UpdateInput{ID: 1, AlarmName: strPtr("WakeUp")})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	got := repo.alarms[1]
	if got.AlarmName != "WakeUp" {
		t.Errorf("name=%q, want WakeUp", got.AlarmName)
	}
	if !got.Time.Equal(at) {
		t.Errorf("time=%v, want unchanged", got.Time)
	}
}

func TestService_Update_notFound(t *testing.T) {
	svc := &Service{Repo: newStubAlarmRepo()}

	err := svc.Update(context.Background(), UpdateInput{ID: 99, AlarmName: strPtr("Wake")})
	if !errors.Is(err, ErrAlarmNotFound) {
		t.Fatalf("want ErrAlarmNotFound, got %v", err)
	}
}

func TestService_Delete_idempotent(t *testing.T) {
	repo := newStubAlarmRepo()
	repo.alarms[1] = &entity.Alarm{ID: 1, UserID: 1, AlarmName: "Wake", Time: time.Now()}
	svc := &Service{Repo: repo}

	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("second Delete err=%v", err)
	}
}
