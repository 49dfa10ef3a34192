package service

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"siakad/backend/internal/dto"
	"siakad/backend/internal/model"
)

func TestUserCreate_DuplicateEmail(t *testing.T) {
	repo := newMockRepository()
	svc := NewUserService(repo, zap.NewNop())
	ctx := context.Background()

	req := &dto.CreateUserRequest{
		Name:     "Pak Ahmad",
		Email:    "ahmad@sekolah.sch.id",
		Password: "rahasia123",
		Role:     model.RoleTeacher,
	}
	if _, err := svc.Create(ctx, req); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Email comparison is case-insensitive.
	req.Email = "Ahmad@Sekolah.sch.id"
	if _, err := svc.Create(ctx, req); err != ErrEmailExists {
		t.Errorf("second Create err = %v, want ErrEmailExists", err)
	}
}

func TestUserDelete_Self(t *testing.T) {
	repo := newMockRepository()
	svc := NewUserService(repo, zap.NewNop())

	created, err := svc.Create(context.Background(), &dto.CreateUserRequest{
		Name:     "Admin Sekolah",
		Email:    "admin@sekolah.sch.id",
		Password: "rahasia123",
		Role:     model.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID, created.ID); err != ErrUserSelfDelete {
		t.Errorf("Delete err = %v, want ErrUserSelfDelete", err)
	}
}

func TestUserResetPassword(t *testing.T) {
	repo := newMockRepository()
	svc := NewUserService(repo, zap.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateUserRequest{
		Name:     "Bu Rina",
		Email:    "rina@sekolah.sch.id",
		Password: "rahasia123",
		Role:     model.RoleTeacher,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	resp, err := svc.ResetPassword(ctx, created.ID)
	if err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}

	if len(resp.TempPassword) != 10 {
		t.Errorf("temp password length = %d, want 10", len(resp.TempPassword))
	}
	if !strings.ContainsAny(resp.TempPassword, "23456789") {
		t.Errorf("temp password %q has no digit", resp.TempPassword)
	}

	user, err := repo.User.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !user.MustChangePassword {
		t.Error("must_change_password = false after reset")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(resp.TempPassword)); err != nil {
		t.Errorf("stored hash does not match the temp password: %v", err)
	}
}

func TestUserList_FilterByRole(t *testing.T) {
	repo := newMockRepository()
	svc := NewUserService(repo, zap.NewNop())
	ctx := context.Background()

	for _, u := range []dto.CreateUserRequest{
		{Name: "Admin Sekolah", Email: "admin@sekolah.sch.id", Password: "rahasia123", Role: model.RoleAdmin},
		{Name: "Pak Ahmad", Email: "ahmad@sekolah.sch.id", Password: "rahasia123", Role: model.RoleTeacher},
	} {
		req := u
		if _, err := svc.Create(ctx, &req); err != nil {
			t.Fatalf("Create %s: %v", u.Email, err)
		}
	}

	rows, total, err := svc.List(ctx, &dto.UserListRequest{Role: model.RoleTeacher})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || len(rows) != 1 || rows[0].Role != model.RoleTeacher {
		t.Errorf("got %d rows (total %d), want only the guru account", len(rows), total)
	}
}
