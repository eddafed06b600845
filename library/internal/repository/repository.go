package repository

import (
	"context"

	"github.com/Astemirdum/library-catalog/library/internal/errs"
	"github.com/Astemirdum/library-catalog/library/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Repository interface {
	Dashboard(ctx context.Context) (model.Dashboard, error)
	ListBooks(ctx context.Context, page, size int) (model.ListBooks, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	CreateBook(ctx context.Context, req model.BookRequest) (model.Book, error)
	ListBooksByAuthor(ctx context.Context, authorID int64) ([]model.Book, error)
	ListAuthors(ctx context.Context, page, size int) (model.ListAuthors, error)
	GetAuthor(ctx context.Context, id int64) (model.Author, error)
	CreateAuthor(ctx context.Context, a model.Author) (model.Author, error)
	UpdateAuthor(ctx context.Context, a model.Author) (model.Author, error)
	DeleteAuthor(ctx context.Context, id int64) error
	GetLanguage(ctx context.Context, id int64) (model.Language, error)
	FindLanguage(ctx context.Context, nameContains string) (model.Language, error)
	ListLanguages(ctx context.Context) ([]model.Language, error)
	CreateLanguage(ctx context.Context, name string) (model.Language, error)
	ListGenres(ctx context.Context) ([]model.Genre, error)

	CreateInstance(ctx context.Context, bookID int64, imprint string) (model.BookInstance, error)
	GetInstance(ctx context.Context, id uuid.UUID) (model.BookInstance, error)
	ListInstances(ctx context.Context, bookID int64) ([]model.BookInstance, error)
	UpdateInstance(ctx context.Context, id uuid.UUID, mutate func(*model.BookInstance) error) (model.BookInstance, error)
	ListLoans(ctx context.Context, borrower string) ([]model.BookInstance, error)
	ListOverdue(ctx context.Context, today model.Date) ([]model.BookInstance, error)

	ImportBook(ctx context.Context, row model.ImportRow, languageID int64, createGenre bool) (model.Book, error)

	CreateProfile(ctx context.Context, p model.Profile) (model.Profile, error)
	GetProfile(ctx context.Context, userName string) (model.Profile, error)
	UpdateProfile(ctx context.Context, p model.Profile) (model.Profile, error)
	ToggleLike(ctx context.Context, userName string, bookID int64) (model.LikeResult, error)
	ListLikedBooks(ctx context.Context, userName string) ([]model.Book, error)

	Visit(ctx context.Context, sessionKey, counterKey string) (int, error)
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	languageTableName     = `language`
	genreTableName        = `genre`
	authorTableName       = `author`
	bookTableName         = `book`
	bookGenreTableName    = `book_genre`
	instanceTableName     = `book_instance`
	profileTableName      = `profile`
	likedBooksTableName   = `profile_liked_books`
	sessionVisitTableName = `session_visits`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var bookColumns = []string{"b.id", "b.title", "b.summary", "b.isbn", "b.language_id", "b.author_id", "b.cover_url"}

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func (r *repository) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return pgx.BeginTxFunc(ctx, r.db, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func collectOne[T any](ctx context.Context, q querier, b sq.Sqlizer) (T, error) {
	var zero T
	query, args, err := b.ToSql()
	if err != nil {
		return zero, err
	}
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return zero, err
	}
	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		return zero, mapErr(err)
	}
	return item, nil
}

func collectAll[T any](ctx context.Context, q querier, b sq.Sqlizer) ([]T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return items, nil
}

func count(ctx context.Context, q querier, b sq.SelectBuilder) (int, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	if err = q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func paginate(b sq.SelectBuilder, page, size int) sq.SelectBuilder {
	if page != 0 && size != 0 {
		b = b.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}
	return b
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return errors.Wrap(errs.ErrAlreadyExists, pgErr.ConstraintName)
		case pgerrcode.ForeignKeyViolation:
			return errors.Wrap(errs.ErrNotFound, pgErr.Detail)
		case pgerrcode.CheckViolation:
			return errors.Wrap(errs.ErrInvalidState, pgErr.ConstraintName)
		}
	}
	return err
}
