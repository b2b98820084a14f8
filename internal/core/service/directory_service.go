package service

import (
	"context"

	"github.com/skillstorm/hotel-management/internal/core/domain"
	"github.com/skillstorm/hotel-management/internal/core/ports"
)

// DirectoryService lists users of the hotel directory.
type DirectoryService struct {
	repo ports.UserRepository
}

func NewDirectoryService(repo ports.UserRepository) *DirectoryService {
	return &DirectoryService{repo: repo}
}

func (s *DirectoryService) UsersByRole(ctx context.Context, role domain.Role) ([]domain.DirectoryUser, error) {
	if !role.Valid() {
		return nil, domain.Invalid("role", "role must be one of: user, employee, admin")
	}
	return s.repo.FindByRole(ctx, role)
}
