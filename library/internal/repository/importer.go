package repository

import (
	"context"
	"fmt"

	"github.com/Astemirdum/library-catalog/library/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// ImportBook stores one import row in its own transaction: the book, the genre
// when createGenre is set, and the book's genre membership. Genre creation is
// insert-if-absent so concurrent imports cannot produce duplicate names.
func (r *repository) ImportBook(ctx context.Context, row model.ImportRow, languageID int64, createGenre bool) (model.Book, error) {
	var book model.Book
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		var err error
		book, err = collectOne[model.Book](ctx, tx, qb.Insert(bookTableName).
			Columns("title", "summary", "isbn", "language_id", "cover_url").
			Values(row.Title, row.Summary, row.ISBN, languageID, row.CoverURL).
			Suffix("returning id, title, summary, isbn, language_id, author_id, cover_url"))
		if err != nil {
			return err
		}
		if createGenre {
			q := fmt.Sprintf(`insert into %s (name) values ($1) on conflict (name) do nothing`, genreTableName)
			if _, err = tx.Exec(ctx, q, row.Genre); err != nil {
				return err
			}
		}
		book.Genres, err = setGenres(ctx, tx, book.ID, sq.Eq{"name": row.Genre})
		return err
	})
	if err != nil {
		return model.Book{}, mapErr(err)
	}
	return book, nil
}
