package repository

import (
	"context"
	"fmt"

	"github.com/Astemirdum/library-catalog/library/internal/errs"
	"github.com/Astemirdum/library-catalog/library/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

var profileColumns = []string{"user_name", "bio", "date_of_birth", "photo_url", "created_at"}

func (r *repository) CreateProfile(ctx context.Context, p model.Profile) (model.Profile, error) {
	return collectOne[model.Profile](ctx, r.db, qb.Insert(profileTableName).
		Columns("user_name", "bio", "date_of_birth", "photo_url").
		Values(p.UserName, p.Bio, dateArg(p.DateOfBirth), p.PhotoURL).
		Suffix("returning user_name, bio, date_of_birth, photo_url, created_at"))
}

func (r *repository) GetProfile(ctx context.Context, userName string) (model.Profile, error) {
	return collectOne[model.Profile](ctx, r.db, qb.Select(profileColumns...).
		From(profileTableName).
		Where(sq.Eq{"user_name": userName}).
		Limit(1))
}

func (r *repository) UpdateProfile(ctx context.Context, p model.Profile) (model.Profile, error) {
	return collectOne[model.Profile](ctx, r.db, qb.Update(profileTableName).
		Set("bio", p.Bio).
		Set("date_of_birth", dateArg(p.DateOfBirth)).
		Set("photo_url", p.PhotoURL).
		Where(sq.Eq{"user_name": p.UserName}).
		Suffix("returning user_name, bio, date_of_birth, photo_url, created_at"))
}

func (r *repository) ToggleLike(ctx context.Context, userName string, bookID int64) (model.LikeResult, error) {
	var result model.LikeResult
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		var exists bool
		q := fmt.Sprintf(`select exists(select 1 from %s where id = $1)`, bookTableName)
		if err := tx.QueryRow(ctx, q, bookID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return errors.Wrapf(errs.ErrNotFound, "book %d", bookID)
		}
		// locks the profile row so concurrent toggles of one user serialize
		q = fmt.Sprintf(`select user_name from %s where user_name = $1 for update`, profileTableName)
		var owner string
		if err := tx.QueryRow(ctx, q, userName).Scan(&owner); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errors.Wrapf(errs.ErrNotFound, "profile of %q", userName)
			}
			return err
		}

		q = fmt.Sprintf(`delete from %s where user_name = $1 and book_id = $2`, likedBooksTableName)
		tag, err := tx.Exec(ctx, q, userName, bookID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() > 0 {
			result = model.Unliked
			return nil
		}
		q = fmt.Sprintf(`insert into %s (user_name, book_id) values ($1, $2)`, likedBooksTableName)
		if _, err = tx.Exec(ctx, q, userName, bookID); err != nil {
			return err
		}
		result = model.Liked
		return nil
	})
	if err != nil {
		return "", mapErr(err)
	}
	return result, nil
}

func (r *repository) ListLikedBooks(ctx context.Context, userName string) ([]model.Book, error) {
	books, err := collectAll[model.Book](ctx, r.db, qb.Select(bookColumns...).
		From(bookTableName+" b").
		Join(fmt.Sprintf("%s l on l.book_id = b.id", likedBooksTableName)).
		Where(sq.Eq{"l.user_name": userName}).
		OrderBy("b.title"))
	if err != nil {
		return nil, err
	}
	return books, r.attachGenres(ctx, r.db, books)
}

// Visit bumps a per-session counter and returns the value it had before.
func (r *repository) Visit(ctx context.Context, sessionKey, counterKey string) (int, error) {
	q := fmt.Sprintf(`
insert into %s (session_key, counter_key, visits)
values ($1, $2, 1)
on conflict (session_key, counter_key)
    do update set visits = %[1]s.visits + 1, updated_at = now()
returning visits - 1`, sessionVisitTableName)
	var before int
	if err := r.db.QueryRow(ctx, q, sessionKey, counterKey).Scan(&before); err != nil {
		return 0, err
	}
	return before, nil
}
