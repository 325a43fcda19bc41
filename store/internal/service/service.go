package service

import (
	"context"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/store-service/pkg/auth"
	"github.com/Astemirdum/store-service/store/internal/model"
	storeRepo "github.com/Astemirdum/store-service/store/internal/repository"
)

type Service struct {
	log      *zap.Logger
	repo     storeRepo.Repository
	producer sarama.SyncProducer
}

// NewService wires the repository and an optional kafka producer for
// activity events (nil disables publishing).
func NewService(repo storeRepo.Repository, producer sarama.SyncProducer, log *zap.Logger) *Service {
	return &Service{
		log:      log,
		repo:     repo,
		producer: producer,
	}
}

// ListBooks filters, annotates and serializes the book collection. The
// annotated rows and the reader rows are two independent queries over the
// same filter, fetched concurrently and merged per book.
func (s *Service) ListBooks(ctx context.Context, f model.BookFilter) ([]model.BookResponse, error) {
	var (
		rows    []model.BookRow
		readers []model.Reader
	)
	gg, gctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		var err error
		rows, err = s.repo.ListBooks(gctx, f)
		return err
	})
	gg.Go(func() error {
		var err error
		readers, err = s.repo.ListReaders(gctx, f)
		return err
	})
	if err := gg.Wait(); err != nil {
		return nil, err
	}

	byBook := make(map[int64][]model.Reader, len(rows))
	for _, reader := range readers {
		byBook[reader.BookID] = append(byBook[reader.BookID], reader)
	}
	items := make([]model.BookResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, model.NewBookResponse(row, byBook[row.ID]))
	}
	return items, nil
}

func (s *Service) GetBook(ctx context.Context, id int64) (model.BookResponse, error) {
	row, err := s.repo.GetBook(ctx, id)
	if err != nil {
		return model.BookResponse{}, err
	}
	readers, err := s.repo.ListReaders(ctx, model.BookFilter{ID: &id})
	if err != nil {
		return model.BookResponse{}, err
	}
	return model.NewBookResponse(row, readers), nil
}

// CreateBook persists a book owned by the requester. Owner never comes
// from the payload.
func (s *Service) CreateBook(ctx context.Context, identity auth.Identity, book model.Book) (model.BookResponse, error) {
	ownerID, err := s.ensureUser(ctx, identity)
	if err != nil {
		return model.BookResponse{}, err
	}
	book.OwnerID = &ownerID
	id, err := s.repo.CreateBook(ctx, book)
	if err != nil {
		return model.BookResponse{}, err
	}
	return s.GetBook(ctx, id)
}

func (s *Service) UpdateBook(ctx context.Context, identity auth.Identity, id int64, book model.Book) (model.BookResponse, error) {
	if err := s.authorizeMutation(ctx, identity, id); err != nil {
		return model.BookResponse{}, err
	}
	if err := s.repo.UpdateBook(ctx, id, book); err != nil {
		return model.BookResponse{}, err
	}
	return s.GetBook(ctx, id)
}

func (s *Service) DeleteBook(ctx context.Context, identity auth.Identity, id int64) error {
	if err := s.authorizeMutation(ctx, identity, id); err != nil {
		return err
	}
	return s.repo.DeleteBook(ctx, id)
}

// UpsertRelation writes the requester's like/bookmark/rate facts for one
// book. The relation is always scoped to the requester; the rating
// aggregation runs inside the same transaction as the write.
func (s *Service) UpsertRelation(ctx context.Context, identity auth.Identity, bookID int64, patch model.RelationPatch) (model.UserBookRelation, error) {
	userID, err := s.ensureUser(ctx, identity)
	if err != nil {
		return model.UserBookRelation{}, err
	}
	rel, err := s.repo.UpsertRelation(ctx, userID, bookID, patch)
	if err != nil {
		return model.UserBookRelation{}, err
	}
	s.publishActivity(identity.Username, bookID, patch)
	return rel, nil
}

// SetRating re-runs the rating aggregator for a book.
func (s *Service) SetRating(ctx context.Context, bookID int64) error {
	return s.repo.SetRating(ctx, bookID)
}

func (s *Service) ensureUser(ctx context.Context, identity auth.Identity) (int64, error) {
	return s.repo.UpsertUser(ctx, model.User{
		Username:  identity.Username,
		FirstName: identity.FirstName,
		LastName:  identity.LastName,
	})
}
