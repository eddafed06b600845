package repository

import (
	"context"
	"fmt"

	"github.com/Astemirdum/library-catalog/library/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

func instanceQuery() sq.SelectBuilder {
	return qb.Select("bi.id", "bi.book_id", "b.title as book_title", "bi.imprint", "bi.status", "bi.due_back", "bi.borrower").
		From(instanceTableName + " bi").
		Join(fmt.Sprintf("%s b on b.id = bi.book_id", bookTableName))
}

func (r *repository) CreateInstance(ctx context.Context, bookID int64, imprint string) (model.BookInstance, error) {
	id := uuid.New()
	q, args, err := qb.Insert(instanceTableName).
		Columns("id", "book_id", "imprint", "status").
		Values(id, bookID, imprint, model.StatusAvailable).
		ToSql()
	if err != nil {
		return model.BookInstance{}, err
	}
	if _, err = r.db.Exec(ctx, q, args...); err != nil {
		r.log.Error("CreateInstance", zap.String("q", q), zap.Any("args", args))
		return model.BookInstance{}, mapErr(err)
	}
	return r.GetInstance(ctx, id)
}

func (r *repository) GetInstance(ctx context.Context, id uuid.UUID) (model.BookInstance, error) {
	return collectOne[model.BookInstance](ctx, r.db, instanceQuery().Where(sq.Eq{"bi.id": id.String()}).Limit(1))
}

func (r *repository) ListInstances(ctx context.Context, bookID int64) ([]model.BookInstance, error) {
	return collectAll[model.BookInstance](ctx, r.db, instanceQuery().
		Where(sq.Eq{"bi.book_id": bookID}).
		OrderBy("bi.status", "bi.due_back nulls last", "bi.id"))
}

// UpdateInstance locks the instance row, lets mutate change it and writes back
// status, due_back and borrower in the same transaction. Concurrent updates of
// one instance serialize on the row lock.
func (r *repository) UpdateInstance(ctx context.Context, id uuid.UUID, mutate func(*model.BookInstance) error) (model.BookInstance, error) {
	var bi model.BookInstance
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		var err error
		bi, err = collectOne[model.BookInstance](ctx, tx, instanceQuery().
			Where(sq.Eq{"bi.id": id.String()}).
			Suffix("for update of bi"))
		if err != nil {
			return err
		}
		if err = mutate(&bi); err != nil {
			return err
		}
		if err = bi.CheckInvariant(); err != nil {
			return err
		}
		q, args, err := qb.Update(instanceTableName).
			Set("status", bi.Status).
			Set("due_back", dateArg(bi.DueBack)).
			Set("borrower", bi.Borrower).
			Where(sq.Eq{"id": id.String()}).
			ToSql()
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, q, args...)
		return err
	})
	if err != nil {
		return model.BookInstance{}, mapErr(err)
	}
	return bi, nil
}

// ListLoans returns on-loan instances, soonest due first. An empty borrower
// lists every loan.
func (r *repository) ListLoans(ctx context.Context, borrower string) ([]model.BookInstance, error) {
	q := instanceQuery().Where(sq.Eq{"bi.status": model.StatusOnLoan})
	if borrower != "" {
		q = q.Where(sq.Eq{"bi.borrower": borrower})
	}
	return collectAll[model.BookInstance](ctx, r.db, q.OrderBy("bi.due_back", "bi.id"))
}

func (r *repository) ListOverdue(ctx context.Context, today model.Date) ([]model.BookInstance, error) {
	return collectAll[model.BookInstance](ctx, r.db, instanceQuery().
		Where(sq.Eq{"bi.status": model.StatusOnLoan}).
		Where(sq.Lt{"bi.due_back": today.Time}).
		OrderBy("bi.due_back", "bi.id"))
}
