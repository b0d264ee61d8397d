package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"library-catalog-backend/internal/domains/staff"
	"library-catalog-backend/pkg/jwt"
)

type staffService struct {
	repo   staff.Repository
	tokens *jwt.Manager
}

func NewStaffService(repo staff.Repository, tokens *jwt.Manager) staff.Service {
	return &staffService{repo: repo, tokens: tokens}
}

func (s *staffService) Login(ctx context.Context, req staff.LoginRequest) (*staff.LoginResponse, error) {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if err := req.Validate(); err != nil {
		return nil, err
	}

	member, err := s.repo.GetByEmail(ctx, req.Email)
	if errors.Is(err, staff.ErrStaffNotFound) {
		return nil, staff.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(req.Password)) != nil {
		return nil, staff.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(member.ID, member.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &staff.LoginResponse{Token: token, Staff: *member}, nil
}

func (s *staffService) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	_, err = s.repo.Create(ctx, &staff.Staff{
		Email:        strings.ToLower(email),
		FullName:     "Administrator",
		PasswordHash: string(hash),
	})
	return err
}
