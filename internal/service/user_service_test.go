package service_test

import (
	"errors"
	"testing"

	"quiz_master_backend/internal/model"
	"quiz_master_backend/internal/service"
	"quiz_master_backend/internal/util"
)

func updateRequestFor(user *model.User) service.UpdateUserRequest {
	return service.UpdateUserRequest{
		FullName: user.FullName,
		Email:    user.Email,
		Role:     string(user.Role),
	}
}

func TestUpdateUserPromotion(t *testing.T) {
	env := newTestEnv(t)
	admin := createUser(t, env, "admin@example.com", model.RoleAdmin)
	user := createUser(t, env, "user@example.com", model.RoleUser)

	req := updateRequestFor(user)
	req.Role = "admin"
	req.Qualification = "BSc"
	req.DOB = "1999-04-12"

	updated, err := env.user.UpdateUser(admin.ID, user.ID, req)
	if err != nil {
		t.Fatalf("UpdateUser() error = %v", err)
	}
	if updated.Role != model.RoleAdmin {
		t.Errorf("Role = %q, want %q", updated.Role, model.RoleAdmin)
	}
	if updated.DOB == nil || updated.DOB.Format(util.DateFormat) != "1999-04-12" {
		t.Errorf("DOB = %v, want 1999-04-12", updated.DOB)
	}
}

func TestUpdateUserAdminDowngradeRejected(t *testing.T) {
	env := newTestEnv(t)
	admin := createUser(t, env, "admin@example.com", model.RoleAdmin)

	req := updateRequestFor(admin)
	req.Role = "user"

	_, err := env.user.UpdateUser(admin.ID, admin.ID, req)
	if !errors.Is(err, util.ErrPermissionDenied) {
		t.Errorf("UpdateUser() error = %v, want ErrPermissionDenied", err)
	}
}

func TestUpdateUserOtherAdminRejected(t *testing.T) {
	env := newTestEnv(t)
	first := createUser(t, env, "first@example.com", model.RoleAdmin)
	second := createUser(t, env, "second@example.com", model.RoleAdmin)

	_, err := env.user.UpdateUser(first.ID, second.ID, updateRequestFor(second))
	if !errors.Is(err, util.ErrPermissionDenied) {
		t.Errorf("UpdateUser() error = %v, want ErrPermissionDenied", err)
	}
}

func TestUpdateUserDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	admin := createUser(t, env, "admin@example.com", model.RoleAdmin)
	createUser(t, env, "taken@example.com", model.RoleUser)
	user := createUser(t, env, "user@example.com", model.RoleUser)

	req := updateRequestFor(user)
	req.Email = "taken@example.com"

	_, err := env.user.UpdateUser(admin.ID, user.ID, req)
	if !errors.Is(err, util.ErrEmailRegistered) {
		t.Errorf("UpdateUser() error = %v, want ErrEmailRegistered", err)
	}
}

func TestUpdateUserBadDOB(t *testing.T) {
	env := newTestEnv(t)
	admin := createUser(t, env, "admin@example.com", model.RoleAdmin)
	user := createUser(t, env, "user@example.com", model.RoleUser)

	req := updateRequestFor(user)
	req.DOB = "12/04/1999"

	_, err := env.user.UpdateUser(admin.ID, user.ID, req)
	if !errors.Is(err, util.ErrValidation) {
		t.Errorf("UpdateUser() error = %v, want ErrValidation", err)
	}
}

func TestDeleteUserAdminProtected(t *testing.T) {
	env := newTestEnv(t)
	admin := createUser(t, env, "admin@example.com", model.RoleAdmin)

	if err := env.user.DeleteUser(admin.ID); !errors.Is(err, util.ErrPermissionDenied) {
		t.Errorf("DeleteUser() error = %v, want ErrPermissionDenied", err)
	}
	if got := countRows(t, env, &model.User{}); got != 1 {
		t.Errorf("user rows = %d, want 1", got)
	}
}

func TestDeleteUserRemovesScores(t *testing.T) {
	env := newTestEnv(t)
	doomed := createUser(t, env, "doomed@example.com", model.RoleUser)
	keeper := createUser(t, env, "keeper@example.com", model.RoleUser)
	quiz, _ := createQuiz(t, env, 1)

	if _, err := env.scoring.ScoreSubmission(doomed.ID, quiz.ID, model.AnswerMap{}); err != nil {
		t.Fatalf("ScoreSubmission() error = %v", err)
	}
	if _, err := env.scoring.ScoreSubmission(keeper.ID, quiz.ID, model.AnswerMap{}); err != nil {
		t.Fatalf("ScoreSubmission() error = %v", err)
	}

	if err := env.user.DeleteUser(doomed.ID); err != nil {
		t.Fatalf("DeleteUser() error = %v", err)
	}

	if got := countRows(t, env, &model.User{}); got != 1 {
		t.Errorf("user rows = %d, want 1", got)
	}
	scores, err := env.scores.ListByUser(keeper.ID)
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(scores) != 1 {
		t.Errorf("keeper scores = %d, want 1", len(scores))
	}
	if got := countRows(t, env, &model.Score{}); got != 1 {
		t.Errorf("score rows = %d, want 1", got)
	}
}

func TestListUsersAdminsFirst(t *testing.T) {
	env := newTestEnv(t)
	createUser(t, env, "zed@example.com", model.RoleUser)
	createUser(t, env, "admin@example.com", model.RoleAdmin)

	users, err := env.user.ListUsers()
	if err != nil {
		t.Fatalf("ListUsers() error = %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("len(users) = %d, want 2", len(users))
	}
	if users[0].Role != model.RoleAdmin {
		t.Errorf("users[0].Role = %q, want %q", users[0].Role, model.RoleAdmin)
	}
}
