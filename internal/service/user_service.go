package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"inventory-api/internal/model"
	"inventory-api/internal/paging"
	"inventory-api/internal/result"
	"inventory-api/pkg/password"
)

type UserService struct {
	users  UserStore
	hasher *password.Hasher
	logger *slog.Logger
}

func NewUserService(users UserStore, hasher *password.Hasher, logger *slog.Logger) *UserService {
	return &UserService{users: users, hasher: hasher, logger: logger}
}

func (s *UserService) Get(ctx context.Context, id int) *result.Result[model.UserInfo] {
	res := result.New[model.UserInfo]()

	user, err := s.users.FindByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return res.Fail(result.StatusNotFound, "User not found.")
	}
	if err != nil {
		s.logger.Error("get user failed", "id", id, "error", err)
		return res.Fail(result.StatusInternalError, "An error occurred while retrieving the user.")
	}

	return res.Succeed(user.Info(), "")
}

func (s *UserService) List(ctx context.Context, p paging.Params, filter string) *result.Result[[]model.UserInfo] {
	res := result.New[[]model.UserInfo]()

	users, total, err := s.users.List(ctx, p, filter)
	if err != nil {
		s.logger.Error("list users failed", "error", err)
		return res.Fail(result.StatusInternalError, "An error occurred while retrieving users.")
	}

	infos := make([]model.UserInfo, 0, len(users))
	for _, u := range users {
		infos = append(infos, u.Info())
	}

	return res.Succeed(infos, "").WithPaging(paging.NewPageInfo(p, total))
}

func (s *UserService) Create(ctx context.Context, req model.CreateUserRequest) *result.Result[model.UserInfo] {
	res := result.New[model.UserInfo]()

	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.FullName) == "" ||
		strings.TrimSpace(req.Password) == "" {
		return res.Fail(result.StatusBadRequest, "Email, Full Name and Password are required.")
	}

	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Error("create user failed", "email", req.Email, "error", err)
		return res.Fail(result.StatusInternalError, "An error occurred while creating the user.")
	}
	if exists {
		return res.Fail(result.StatusAlreadyExist, "A user with this email already exists.")
	}

	created, err := s.users.Create(ctx, model.User{
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: s.hasher.Hash(req.Password),
		Active:       req.Active,
		RoleID:       req.RoleID,
	})
	if err != nil {
		s.logger.Error("create user failed", "email", req.Email, "error", err)
		return res.Fail(result.StatusInternalError, "An error occurred while creating the user.")
	}

	return res.Succeed(created.Info(), "User created successfully.")
}

func (s *UserService) Update(ctx context.Context, id int, req model.UpdateUserRequest) *result.Result[model.UserInfo] {
	res := result.New[model.UserInfo]()

	err := s.users.Update(ctx, model.User{
		ID:       id,
		Email:    req.Email,
		FullName: req.FullName,
		RoleID:   req.RoleID,
		Active:   req.Active,
	})
	if errors.Is(err, model.ErrNotFound) {
		return res.Fail(result.StatusNotFound, "User not found.")
	}
	if err != nil {
		s.logger.Error("update user failed", "id", id, "error", err)
		return res.Fail(result.StatusInternalError, "An error occurred while updating the user.")
	}

	updated, err := s.users.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update user failed", "id", id, "error", err)
		return res.Fail(result.StatusInternalError, "An error occurred while updating the user.")
	}

	return res.Succeed(updated.Info(), "User updated successfully.")
}

// Delete removes an account. The account holding the "Admin" role is
// protected and may never be removed.
func (s *UserService) Delete(ctx context.Context, id int) *result.Result[bool] {
	res := result.New[bool]()

	user, err := s.users.FindByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return res.Fail(result.StatusNotFound, "User not found.")
	}
	if err != nil {
		s.logger.Error("delete user failed", "id", id, "error", err)
		return res.Fail(result.StatusInternalError, "An error occurred while deleting the user.")
	}

	if user.RoleName == model.RoleAdminName {
		return res.Fail(result.StatusBadRequest, "Admin user cannot be deleted.")
	}

	if err := s.users.Delete(ctx, id); err != nil {
		s.logger.Error("delete user failed", "id", id, "error", err)
		return res.Fail(result.StatusInternalError, "An error occurred while deleting the user.")
	}

	return res.Succeed(true, "User deleted successfully.")
}

func (s *UserService) ChangePassword(ctx context.Context, id int, req model.ChangePasswordRequest) *result.Result[bool] {
	res := result.New[bool]()

	if strings.TrimSpace(req.NewPassword) == "" {
		return res.Fail(result.StatusBadRequest, "New password is required.")
	}

	err := s.users.UpdatePassword(ctx, id, s.hasher.Hash(req.NewPassword))
	if errors.Is(err, model.ErrNotFound) {
		return res.Fail(result.StatusNotFound, "User not found.")
	}
	if err != nil {
		s.logger.Error("change password failed", "id", id, "error", err)
		return res.Fail(result.StatusInternalError, "An error occurred while changing the password.")
	}

	return res.Succeed(true, "Password changed successfully.")
}
