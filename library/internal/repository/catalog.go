package repository

import (
	"context"
	"fmt"

	"github.com/Astemirdum/library-catalog/library/internal/errs"
	"github.com/Astemirdum/library-catalog/library/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func (r *repository) Dashboard(ctx context.Context) (model.Dashboard, error) {
	const q = `
select (select count(*) from book)                            as num_books,
       (select count(*) from book_instance)                   as num_instances,
       (select count(*) from book_instance where status = $1) as num_available,
       (select count(*) from author)                          as num_authors,
       (select count(*) from genre)                           as num_genres`
	var d model.Dashboard
	err := r.db.QueryRow(ctx, q, model.StatusAvailable).
		Scan(&d.NumBooks, &d.NumInstances, &d.NumInstancesAvailable, &d.NumAuthors, &d.NumGenres)
	if err != nil {
		return model.Dashboard{}, err
	}
	return d, nil
}

func (r *repository) ListBooks(ctx context.Context, page, size int) (model.ListBooks, error) {
	total, err := count(ctx, r.db, qb.Select("count(*)").From(bookTableName))
	if err != nil {
		return model.ListBooks{}, err
	}
	q := paginate(qb.Select(bookColumns...).From(bookTableName+" b").OrderBy("b.title", "b.id"), page, size)
	books, err := collectAll[model.Book](ctx, r.db, q)
	if err != nil {
		return model.ListBooks{}, err
	}
	if err = r.attachGenres(ctx, r.db, books); err != nil {
		return model.ListBooks{}, err
	}
	return model.ListBooks{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: total,
		},
		Items: books,
	}, nil
}

func (r *repository) GetBook(ctx context.Context, id int64) (model.Book, error) {
	book, err := collectOne[model.Book](ctx, r.db, qb.Select(bookColumns...).
		From(bookTableName+" b").
		Where(sq.Eq{"b.id": id}).
		Limit(1))
	if err != nil {
		return model.Book{}, err
	}
	books := []model.Book{book}
	if err = r.attachGenres(ctx, r.db, books); err != nil {
		return model.Book{}, err
	}
	return books[0], nil
}

func (r *repository) ListBooksByAuthor(ctx context.Context, authorID int64) ([]model.Book, error) {
	books, err := collectAll[model.Book](ctx, r.db, qb.Select(bookColumns...).
		From(bookTableName+" b").
		Where(sq.Eq{"b.author_id": authorID}).
		OrderBy("b.title"))
	if err != nil {
		return nil, err
	}
	return books, r.attachGenres(ctx, r.db, books)
}

func (r *repository) CreateBook(ctx context.Context, req model.BookRequest) (model.Book, error) {
	var book model.Book
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		var err error
		book, err = collectOne[model.Book](ctx, tx, qb.Insert(bookTableName).
			Columns("title", "summary", "isbn", "language_id", "author_id", "cover_url").
			Values(req.Title, req.Summary, req.ISBN, req.LanguageID, req.AuthorID, req.CoverURL).
			Suffix("returning id, title, summary, isbn, language_id, author_id, cover_url"))
		if err != nil {
			return err
		}
		book.Genres, err = setGenres(ctx, tx, book.ID, sq.Eq{"id": req.GenreIDs})
		return err
	})
	if err != nil {
		return model.Book{}, mapErr(err)
	}
	return book, nil
}

// setGenres replaces the genre membership of a book with the genres matching where.
func setGenres(ctx context.Context, tx pgx.Tx, bookID int64, where sq.Sqlizer) ([]model.Genre, error) {
	genres, err := collectAll[model.Genre](ctx, tx, qb.Select("id", "name").
		From(genreTableName).
		Where(where).
		OrderBy("id"))
	if err != nil {
		return nil, err
	}
	if _, err = tx.Exec(ctx, fmt.Sprintf(`delete from %s where book_id = $1`, bookGenreTableName), bookID); err != nil {
		return nil, err
	}
	if len(genres) == 0 {
		return genres, nil
	}
	ins := qb.Insert(bookGenreTableName).Columns("book_id", "genre_id")
	for _, g := range genres {
		ins = ins.Values(bookID, g.ID)
	}
	query, args, err := ins.ToSql()
	if err != nil {
		return nil, err
	}
	if _, err = tx.Exec(ctx, query, args...); err != nil {
		return nil, err
	}
	return genres, nil
}

func (r *repository) attachGenres(ctx context.Context, q querier, books []model.Book) error {
	if len(books) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(books))
	for _, b := range books {
		ids = append(ids, b.ID)
	}
	query, args, err := qb.Select("bg.book_id", "g.id", "g.name").
		From(bookGenreTableName + " bg").
		Join(fmt.Sprintf("%s g on g.id = bg.genre_id", genreTableName)).
		Where(sq.Eq{"bg.book_id": ids}).
		OrderBy("g.name").
		ToSql()
	if err != nil {
		return err
	}
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	byBook := make(map[int64][]model.Genre, len(books))
	for rows.Next() {
		var (
			bookID int64
			g      model.Genre
		)
		if err = rows.Scan(&bookID, &g.ID, &g.Name); err != nil {
			return err
		}
		byBook[bookID] = append(byBook[bookID], g)
	}
	if err = rows.Err(); err != nil {
		return err
	}
	for i := range books {
		books[i].Genres = byBook[books[i].ID]
	}
	return nil
}

var authorColumns = []string{"id", "first_name", "last_name", "date_of_birth", "date_of_death"}

func (r *repository) ListAuthors(ctx context.Context, page, size int) (model.ListAuthors, error) {
	total, err := count(ctx, r.db, qb.Select("count(*)").From(authorTableName))
	if err != nil {
		return model.ListAuthors{}, err
	}
	authors, err := collectAll[model.Author](ctx, r.db,
		paginate(qb.Select(authorColumns...).From(authorTableName).OrderBy("last_name", "first_name", "id"), page, size))
	if err != nil {
		return model.ListAuthors{}, err
	}
	return model.ListAuthors{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: total,
		},
		Items: authors,
	}, nil
}

func (r *repository) GetAuthor(ctx context.Context, id int64) (model.Author, error) {
	return collectOne[model.Author](ctx, r.db, qb.Select(authorColumns...).
		From(authorTableName).
		Where(sq.Eq{"id": id}).
		Limit(1))
}

func (r *repository) CreateAuthor(ctx context.Context, a model.Author) (model.Author, error) {
	return collectOne[model.Author](ctx, r.db, qb.Insert(authorTableName).
		Columns("first_name", "last_name", "date_of_birth", "date_of_death").
		Values(a.FirstName, a.LastName, a.DateOfBirth.Time, dateArg(a.DateOfDeath)).
		Suffix("returning id, first_name, last_name, date_of_birth, date_of_death"))
}

func (r *repository) UpdateAuthor(ctx context.Context, a model.Author) (model.Author, error) {
	return collectOne[model.Author](ctx, r.db, qb.Update(authorTableName).
		Set("first_name", a.FirstName).
		Set("last_name", a.LastName).
		Set("date_of_birth", a.DateOfBirth.Time).
		Set("date_of_death", dateArg(a.DateOfDeath)).
		Where(sq.Eq{"id": a.ID}).
		Suffix("returning id, first_name, last_name, date_of_birth, date_of_death"))
}

func (r *repository) DeleteAuthor(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, fmt.Sprintf(`delete from %s where id = $1`, authorTableName), id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return errors.Wrap(errs.ErrInvalidState, "author is still referenced by books")
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) GetLanguage(ctx context.Context, id int64) (model.Language, error) {
	return collectOne[model.Language](ctx, r.db, qb.Select("id", "name").
		From(languageTableName).
		Where(sq.Eq{"id": id}).
		Limit(1))
}

func (r *repository) FindLanguage(ctx context.Context, nameContains string) (model.Language, error) {
	lang, err := collectOne[model.Language](ctx, r.db, qb.Select("id", "name").
		From(languageTableName).
		Where(sq.ILike{"name": "%" + nameContains + "%"}).
		OrderBy("id").
		Limit(1))
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		r.log.Error("FindLanguage", zap.String("contains", nameContains), zap.Error(err))
	}
	return lang, err
}

func (r *repository) ListLanguages(ctx context.Context) ([]model.Language, error) {
	return collectAll[model.Language](ctx, r.db, qb.Select("id", "name").From(languageTableName).OrderBy("name"))
}

func (r *repository) CreateLanguage(ctx context.Context, name string) (model.Language, error) {
	return collectOne[model.Language](ctx, r.db, qb.Insert(languageTableName).
		Columns("name").
		Values(name).
		Suffix("returning id, name"))
}

func (r *repository) ListGenres(ctx context.Context) ([]model.Genre, error) {
	return collectAll[model.Genre](ctx, r.db, qb.Select("id", "name").From(genreTableName).OrderBy("name"))
}

func dateArg(d *model.Date) any {
	if d == nil || d.IsZero() {
		return nil
	}
	return d.Time
}
