package handler

import (
	"context"

	"github.com/Astemirdum/store-service/pkg/auth"
	"github.com/Astemirdum/store-service/store/internal/model"
	"github.com/Astemirdum/store-service/store/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type StoreService interface {
	ListBooks(ctx context.Context, f model.BookFilter) ([]model.BookResponse, error)
	GetBook(ctx context.Context, id int64) (model.BookResponse, error)
	CreateBook(ctx context.Context, identity auth.Identity, book model.Book) (model.BookResponse, error)
	UpdateBook(ctx context.Context, identity auth.Identity, id int64, book model.Book) (model.BookResponse, error)
	DeleteBook(ctx context.Context, identity auth.Identity, id int64) error
	UpsertRelation(ctx context.Context, identity auth.Identity, bookID int64, patch model.RelationPatch) (model.UserBookRelation, error)
	SetRating(ctx context.Context, bookID int64) error
}

var _ StoreService = (*service.Service)(nil)
