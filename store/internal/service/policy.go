package service

import (
	"context"

	"github.com/Astemirdum/store-service/pkg/auth"
	"github.com/Astemirdum/store-service/store/internal/errs"
)

// authorizeMutation lets a book be mutated by its owner or by staff.
// A missing book is reported as not found; an existing book the
// requester may not touch is a permission error, never a 404.
func (s *Service) authorizeMutation(ctx context.Context, identity auth.Identity, bookID int64) error {
	row, err := s.repo.GetBook(ctx, bookID)
	if err != nil {
		return err
	}
	if identity.IsStaff() {
		return nil
	}
	if row.OwnerName != nil && *row.OwnerName == identity.Username {
		return nil
	}
	return errs.ErrPermissionDenied
}
