package service

import (
	"context"
	"testing"

	"github.com/spec-kit/grooming-service/internal/domain"
	"github.com/spec-kit/grooming-service/internal/events"
	apperrors "github.com/spec-kit/grooming-service/pkg/util"
)

func TestRosterDeleteCascadesAppointmentsFirst(t *testing.T) {
	ctx := context.Background()
	var callLog []string

	users := newFakeUserRepo()
	users.callLog = &callLog
	appointments := newFakeAppointmentRepo()
	appointments.callLog = &callLog
	dispatcher := &recordingDispatcher{}

	user := &domain.User{Username: "alice", Email: "alice@example.com"}
	if err := users.Create(ctx, user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if err := appointments.Create(ctx, &domain.Appointment{UserID: user.ID}); err != nil {
		t.Fatalf("create appointment: %v", err)
	}

	svc := NewRosterService(users, appointments, dispatcher)
	if err := svc.Delete(ctx, user.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if len(callLog) != 2 || callLog[0] != "appointments.DeleteByUser" || callLog[1] != "users.Delete" {
		t.Errorf("call order = %v, want appointments first", callLog)
	}
	if _, _, err := appointments.ListIncompleteByUser(ctx, user.ID, 0, 0); err != nil {
		t.Fatalf("list: %v", err)
	}
	if items, _, _ := appointments.ListIncompleteByUser(ctx, user.ID, 0, 0); len(items) != 0 {
		t.Errorf("appointments left behind: %+v", items)
	}

	published := dispatcher.published()
	if len(published) != 1 || published[0].Type != events.EventUserDeleted {
		t.Errorf("published = %+v, want one user_deleted", published)
	}
}

func TestRosterDeleteMissingUser(t *testing.T) {
	svc := NewRosterService(newFakeUserRepo(), newFakeAppointmentRepo(), nil)
	if err := svc.Delete(context.Background(), "nope"); !apperrors.IsNotFound(err) {
		t.Errorf("err = %v, want NOT_FOUND", err)
	}
}

func TestRosterSetPermission(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	svc := NewRosterService(users, newFakeAppointmentRepo(), nil)

	user := &domain.User{Username: "alice"}
	if err := users.Create(ctx, user); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.SetPermission(ctx, user.ID, true); err != nil {
		t.Fatalf("set permission: %v", err)
	}
	stored, _ := users.GetByID(ctx, user.ID)
	if !stored.Administrator {
		t.Error("administrator flag not set")
	}

	if err := svc.SetPermission(ctx, user.ID, false); err != nil {
		t.Fatalf("unset permission: %v", err)
	}
	stored, _ = users.GetByID(ctx, user.ID)
	if stored.Administrator {
		t.Error("administrator flag not cleared")
	}

	if err := svc.SetPermission(ctx, "nope", true); !apperrors.IsNotFound(err) {
		t.Errorf("err = %v, want NOT_FOUND", err)
	}
}

func TestRosterGetByUsername(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	svc := NewRosterService(users, newFakeAppointmentRepo(), nil)

	if _, err := svc.GetByUsername(ctx, "ghost"); !apperrors.IsNotFound(err) {
		t.Errorf("err = %v, want NOT_FOUND", err)
	}

	user := &domain.User{Username: "alice"}
	if err := users.Create(ctx, user); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := svc.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("got %q, want %q", got.ID, user.ID)
	}
}
