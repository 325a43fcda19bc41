package repository

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/store-service/store/internal/errs"
	"github.com/Astemirdum/store-service/store/internal/model"
)

type Repository interface {
	UpsertUser(ctx context.Context, user model.User) (int64, error)
	CreateBook(ctx context.Context, book model.Book) (int64, error)
	UpdateBook(ctx context.Context, id int64, book model.Book) error
	DeleteBook(ctx context.Context, id int64) error
	GetBook(ctx context.Context, id int64) (model.BookRow, error)
	ListBooks(ctx context.Context, f model.BookFilter) ([]model.BookRow, error)
	ListReaders(ctx context.Context, f model.BookFilter) ([]model.Reader, error)
	UpsertRelation(ctx context.Context, userID, bookID int64, patch model.RelationPatch) (model.UserBookRelation, error)
	SetRating(ctx context.Context, bookID int64) error
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	usersTableName     = `users`
	booksTableName     = `books`
	relationsTableName = `user_book_relations`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) UpsertUser(ctx context.Context, user model.User) (int64, error) {
	q := `
insert into users (username, first_name, last_name)
values ($1, $2, $3)
on conflict (username) do update
    set first_name = coalesce(nullif(excluded.first_name, ''), users.first_name),
        last_name  = coalesce(nullif(excluded.last_name, ''), users.last_name)
returning id`
	var id int64
	if err := r.db.QueryRowContext(ctx, q, user.Username, user.FirstName, user.LastName).Scan(&id); err != nil {
		return 0, errors.Wrap(err, "upsert user")
	}
	return id, nil
}

func (r *repository) CreateBook(ctx context.Context, book model.Book) (int64, error) {
	query, args, err := qb.Insert(booksTableName).
		Columns("name", "price", "author_name", "owner_id").
		Values(book.Name, book.Price, book.AuthorName, book.OwnerID).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return 0, err
	}
	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		r.log.Error("CreateBook", zap.String("q", query), zap.Any("args", args))
		return 0, err
	}
	return id, nil
}

func (r *repository) UpdateBook(ctx context.Context, id int64, book model.Book) error {
	query, args, err := qb.Update(booksTableName).
		Set("name", book.Name).
		Set("price", book.Price).
		Set("author_name", book.AuthorName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) DeleteBook(ctx context.Context, id int64) error {
	query, args, err := qb.Delete(booksTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// annotatedBooks is the single-pass list query: per book, likes_count over
// its relations and the mean of present rates, rounded to 2 decimals the
// same way the aggregator rounds.
func annotatedBooks(f model.BookFilter) sq.SelectBuilder {
	q := qb.Select(
		"b.id",
		"b.name",
		"b.price::text as price",
		"b.author_name",
		"u.username as owner_name",
		"count(r.id) filter (where r.liked) as likes_count",
		"round(avg(r.rate), 2)::text as rating",
	).
		From(booksTableName+" b").
		LeftJoin(usersTableName+" u on u.id = b.owner_id").
		LeftJoin(relationsTableName+" r on r.book_id = b.id").
		GroupBy("b.id", "u.username")

	return applyFilter(q, f, "b")
}

func applyFilter(q sq.SelectBuilder, f model.BookFilter, alias string) sq.SelectBuilder {
	if f.ID != nil {
		q = q.Where(sq.Eq{alias + ".id": *f.ID})
	}
	if f.Price != nil {
		q = q.Where(sq.Eq{alias + ".price": *f.Price})
	}
	if f.Search != "" {
		pattern := "%" + likeEscaper.Replace(f.Search) + "%"
		q = q.Where(sq.Or{
			sq.ILike{alias + ".name": pattern},
			sq.ILike{alias + ".author_name": pattern},
		})
	}
	return q
}

// likeEscaper neutralizes LIKE metacharacters in user search input so a
// term such as "100%" matches the literal text instead of everything.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *repository) GetBook(ctx context.Context, id int64) (model.BookRow, error) {
	query, args, err := annotatedBooks(model.BookFilter{ID: &id}).ToSql()
	if err != nil {
		return model.BookRow{}, err
	}
	var row model.BookRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BookRow{}, errs.ErrNotFound
		}
		return model.BookRow{}, err
	}
	return row, nil
}

func (r *repository) ListBooks(ctx context.Context, f model.BookFilter) ([]model.BookRow, error) {
	dir := "asc"
	if f.Desc {
		dir = "desc"
	}
	order := []string{"b.id " + dir}
	if f.OrderBy != "" && f.OrderBy != "id" {
		// secondary id ordering keeps ties stable
		order = []string{"b." + f.OrderBy + " " + dir, "b.id asc"}
	}
	query, args, err := annotatedBooks(f).OrderBy(order...).ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("ListBooks", zap.String("query", query), zap.Any("args", args))

	books := make([]model.BookRow, 0)
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}

// ListReaders returns, for every book matching the filter, the users
// holding a relation to it. The unique (user, book) key makes the rows
// distinct per book.
func (r *repository) ListReaders(ctx context.Context, f model.BookFilter) ([]model.Reader, error) {
	q := qb.Select("r.book_id", "u.first_name", "u.last_name").
		From(relationsTableName+" r").
		Join(usersTableName+" u on u.id = r.user_id").
		Join(booksTableName+" b on b.id = r.book_id").
		OrderBy("r.book_id asc", "r.user_id asc")

	query, args, err := applyFilter(q, f, "b").ToSql()
	if err != nil {
		return nil, err
	}
	readers := make([]model.Reader, 0)
	if err := r.db.SelectContext(ctx, &readers, query, args...); err != nil {
		return nil, err
	}
	return readers, nil
}

// UpsertRelation creates-or-updates the requester's relation with the book
// and, when the patch touches rate, recomputes the book's stored rating in
// the same transaction.
func (r *repository) UpsertRelation(ctx context.Context, userID, bookID int64, patch model.RelationPatch) (model.UserBookRelation, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.UserBookRelation{}, errors.Wrap(err, "begin tx")
	}
	defer tx.Rollback() //nolint:errcheck

	ins := `
insert into user_book_relations (user_id, book_id)
values ($1, $2)
on conflict (user_id, book_id) do nothing`
	if _, err := tx.ExecContext(ctx, ins, userID, bookID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return model.UserBookRelation{}, errs.ErrNotFound
		}
		return model.UserBookRelation{}, errors.Wrap(err, "relation insert")
	}

	const relColumns = "id, user_id, book_id, liked, in_bookmarks, rate"

	var rel model.UserBookRelation
	if fields := patch.Fields(); len(fields) > 0 {
		query, args, err := qb.Update(relationsTableName).
			SetMap(fields).
			Where(sq.Eq{"user_id": userID, "book_id": bookID}).
			Suffix("returning " + relColumns).
			ToSql()
		if err != nil {
			return model.UserBookRelation{}, err
		}
		if err := tx.GetContext(ctx, &rel, query, args...); err != nil {
			r.log.Error("UpsertRelation", zap.String("q", query), zap.Any("args", args))
			return model.UserBookRelation{}, err
		}
	} else {
		query, args, err := qb.Select(relColumns).
			From(relationsTableName).
			Where(sq.Eq{"user_id": userID, "book_id": bookID}).
			ToSql()
		if err != nil {
			return model.UserBookRelation{}, err
		}
		if err := tx.GetContext(ctx, &rel, query, args...); err != nil {
			return model.UserBookRelation{}, err
		}
	}

	if patch.Rate != nil {
		if err := recomputeRating(ctx, tx, bookID); err != nil {
			return model.UserBookRelation{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return model.UserBookRelation{}, errors.Wrap(err, "commit tx")
	}
	return rel, nil
}

// SetRating re-runs the rating aggregation for one book outside any
// relation write. Idempotent.
func (r *repository) SetRating(ctx context.Context, bookID int64) error {
	return recomputeRating(ctx, r.db, bookID)
}

func recomputeRating(ctx context.Context, ext sqlx.ExtContext, bookID int64) error {
	var rates []int
	q := `
select rate from user_book_relations
where book_id = $1 and rate is not null
order by id`
	if err := sqlx.SelectContext(ctx, ext, &rates, q, bookID); err != nil {
		return errors.Wrap(err, "select rates")
	}

	_, err := ext.ExecContext(ctx, `update books set rating = $2 where id = $1`,
		bookID, model.AverageRate(rates))
	return errors.Wrap(err, "store rating")
}
