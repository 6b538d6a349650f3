package service_test

import (
	"errors"
	"testing"

	"quiz_master_backend/internal/model"
	"quiz_master_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
)

func TestRegisterHashesPassword(t *testing.T) {
	env := newTestEnv(t)

	user := &model.User{
		Email:    "new@example.com",
		FullName: "New User",
		Password: "plaintext-secret",
	}
	if err := env.auth.Register(user); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	stored, err := env.users.FindByEmail("new@example.com")
	if err != nil {
		t.Fatalf("FindByEmail() error = %v", err)
	}
	if stored.Password == "plaintext-secret" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("plaintext-secret")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
}

func TestRegisterForcesUserRole(t *testing.T) {
	env := newTestEnv(t)

	user := &model.User{
		Email:    "sneaky@example.com",
		FullName: "Sneaky",
		Password: "password123",
		Role:     model.RoleAdmin,
	}
	if err := env.auth.Register(user); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	stored, err := env.users.FindByEmail("sneaky@example.com")
	if err != nil {
		t.Fatalf("FindByEmail() error = %v", err)
	}
	if stored.Role != model.RoleUser {
		t.Errorf("Role = %q, want %q", stored.Role, model.RoleUser)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	createUser(t, env, "taken@example.com", model.RoleUser)

	err := env.auth.Register(&model.User{
		Email:    "taken@example.com",
		FullName: "Second",
		Password: "password123",
	})
	if !errors.Is(err, util.ErrEmailRegistered) {
		t.Fatalf("Register() error = %v, want ErrEmailRegistered", err)
	}
	if got := countRows(t, env, &model.User{}); got != 1 {
		t.Errorf("user rows = %d, want 1", got)
	}
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	createUser(t, env, "login@example.com", model.RoleUser)

	token, err := env.auth.Login("login@example.com", "password123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if token == "" {
		t.Error("Login() returned an empty token")
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Login("missing@example.com", "password123")
	if !errors.Is(err, util.ErrAccountNotFound) {
		t.Errorf("Login() error = %v, want ErrAccountNotFound", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	createUser(t, env, "login@example.com", model.RoleUser)

	_, err := env.auth.Login("login@example.com", "wrong-password")
	if !errors.Is(err, util.ErrWrongPassword) {
		t.Errorf("Login() error = %v, want ErrWrongPassword", err)
	}
}
