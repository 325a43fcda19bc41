package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/store-service/pkg/auth"
	"github.com/Astemirdum/store-service/store/internal/errs"
	"github.com/Astemirdum/store-service/store/internal/model"
)

type fakeRepo struct {
	book      model.BookRow
	bookErr   error
	books     []model.BookRow
	readers   []model.Reader
	relation  model.UserBookRelation
	userID    int64
	updated   bool
	deleted   bool
	upserted  *model.RelationPatch
	lastUser  model.User
	ratingRun bool
}

func (f *fakeRepo) UpsertUser(_ context.Context, user model.User) (int64, error) {
	f.lastUser = user
	return f.userID, nil
}

func (f *fakeRepo) CreateBook(_ context.Context, _ model.Book) (int64, error) {
	return f.book.ID, nil
}

func (f *fakeRepo) UpdateBook(_ context.Context, _ int64, _ model.Book) error {
	f.updated = true
	return nil
}

func (f *fakeRepo) DeleteBook(_ context.Context, _ int64) error {
	f.deleted = true
	return nil
}

func (f *fakeRepo) GetBook(_ context.Context, _ int64) (model.BookRow, error) {
	return f.book, f.bookErr
}

func (f *fakeRepo) ListBooks(_ context.Context, _ model.BookFilter) ([]model.BookRow, error) {
	return f.books, nil
}

func (f *fakeRepo) ListReaders(_ context.Context, _ model.BookFilter) ([]model.Reader, error) {
	return f.readers, nil
}

func (f *fakeRepo) UpsertRelation(_ context.Context, _, _ int64, patch model.RelationPatch) (model.UserBookRelation, error) {
	f.upserted = &patch
	return f.relation, nil
}

func (f *fakeRepo) SetRating(_ context.Context, _ int64) error {
	f.ratingRun = true
	return nil
}

func strPtr(s string) *string { return &s }

func TestService_AuthorizeMutation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		identity auth.Identity
		owner    *string
		wantErr  error
	}{
		{
			name:     "owner may mutate",
			identity: auth.Identity{Username: "test_user1"},
			owner:    strPtr("test_user1"),
		},
		{
			name:     "staff may mutate foreign book",
			identity: auth.Identity{Username: "admin", Role: auth.RoleStaff},
			owner:    strPtr("test_user1"),
		},
		{
			name:     "outsider is denied",
			identity: auth.Identity{Username: "test_user2"},
			owner:    strPtr("test_user1"),
			wantErr:  errs.ErrPermissionDenied,
		},
		{
			name:     "orphaned book only mutable by staff",
			identity: auth.Identity{Username: "test_user1"},
			owner:    nil,
			wantErr:  errs.ErrPermissionDenied,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo := &fakeRepo{book: model.BookRow{ID: 1, OwnerName: tt.owner}}
			svc := NewService(repo, nil, zap.NewExample())

			err := svc.authorizeMutation(context.Background(), tt.identity, 1)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestService_AuthorizeMutation_NotFoundBeatsForbidden(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{bookErr: errs.ErrNotFound}
	svc := NewService(repo, nil, zap.NewExample())

	err := svc.DeleteBook(context.Background(), auth.Identity{Username: "anyone"}, 42)
	require.ErrorIs(t, err, errs.ErrNotFound)
	require.False(t, repo.deleted)
}

func TestService_ListBooks_MergesReaders(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{
		books: []model.BookRow{
			{ID: 1, Name: "Hotel", Price: "77.33", LikesCount: 3, Rating: strPtr("4.67")},
			{ID: 2, Name: "Airport", Price: "88.50", LikesCount: 2, Rating: strPtr("3.50")},
			{ID: 3, Name: "Wheels", Price: "10.00"},
		},
		readers: []model.Reader{
			{BookID: 1, FirstName: "Ivan", LastName: "Petrov"},
			{BookID: 1, FirstName: "Dima", LastName: "Shilov"},
			{BookID: 2, FirstName: "Ivan", LastName: "Petrov"},
		},
	}
	svc := NewService(repo, nil, zap.NewExample())

	items, err := svc.ListBooks(context.Background(), model.BookFilter{OrderBy: "id"})
	require.NoError(t, err)
	require.Len(t, items, 3)

	require.Equal(t, []model.Reader{
		{BookID: 1, FirstName: "Ivan", LastName: "Petrov"},
		{BookID: 1, FirstName: "Dima", LastName: "Shilov"},
	}, items[0].Readers)
	require.Equal(t, int64(3), items[0].LikesCount)
	require.Equal(t, "4.67", *items[0].Rating)

	require.Len(t, items[1].Readers, 1)

	// books without relations serialize an empty list, not null
	require.NotNil(t, items[2].Readers)
	require.Empty(t, items[2].Readers)
	require.Nil(t, items[2].Rating)
}

func TestService_UpsertRelation_ScopedToRequester(t *testing.T) {
	t.Parallel()
	rate := 5
	repo := &fakeRepo{
		userID:   7,
		relation: model.UserBookRelation{UserID: 7, BookID: 1, Like: true, Rate: &rate},
	}
	svc := NewService(repo, nil, zap.NewExample())

	identity := auth.Identity{Username: "test_user1", FirstName: "Ivan", LastName: "Petrov"}
	patch := model.RelationPatch{Rate: &rate}

	rel, err := svc.UpsertRelation(context.Background(), identity, 1, patch)
	require.NoError(t, err)
	require.Equal(t, int64(7), rel.UserID)
	require.Equal(t, model.User{Username: "test_user1", FirstName: "Ivan", LastName: "Petrov"}, repo.lastUser)
	require.NotNil(t, repo.upserted)
	require.Equal(t, patch, *repo.upserted)
}

func TestService_CreateBook_OwnerFromIdentity(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{
		userID: 3,
		book:   model.BookRow{ID: 11, Name: "Hotel", Price: "77.33", OwnerName: strPtr("test_user1")},
	}
	svc := NewService(repo, nil, zap.NewExample())

	resp, err := svc.CreateBook(context.Background(),
		auth.Identity{Username: "test_user1"},
		model.Book{Name: "Hotel", Price: "77.33"})
	require.NoError(t, err)
	require.Equal(t, "test_user1", repo.lastUser.Username)
	require.Equal(t, "test_user1", *resp.OwnerName)
}
