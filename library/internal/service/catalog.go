package service

import (
	"context"
	"strconv"

	"github.com/Astemirdum/library-catalog/library/internal/errs"
	"github.com/Astemirdum/library-catalog/library/internal/model"
	"github.com/Astemirdum/library-catalog/library/internal/policy"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	homeVisitsKey = "num_visits"
	bookVisitsKey = "num_visits_"
)

// Dashboard counts the catalog. A non-empty sessionKey also bumps the
// session's home page counter.
func (s *Service) Dashboard(ctx context.Context, sessionKey string) (model.Dashboard, error) {
	return call(ctx, s.cfg.OperationTimeout, func(ctx context.Context) (model.Dashboard, error) {
		d, err := s.repo.Dashboard(ctx)
		if err != nil {
			return model.Dashboard{}, err
		}
		if sessionKey != "" {
			if d.NumVisits, err = s.repo.Visit(ctx, sessionKey, homeVisitsKey); err != nil {
				return model.Dashboard{}, err
			}
		}
		return d, nil
	})
}

func (s *Service) ListBooks(ctx context.Context, page, size int) (model.ListBooks, error) {
	return call(ctx, s.cfg.OperationTimeout, func(ctx context.Context) (model.ListBooks, error) {
		return s.repo.ListBooks(ctx, page, size)
	})
}

func (s *Service) GetBook(ctx context.Context, id int64, sessionKey string) (model.BookDetail, error) {
	return call(ctx, s.cfg.OperationTimeout, func(ctx context.Context) (model.BookDetail, error) {
		book, err := s.repo.GetBook(ctx, id)
		if err != nil {
			return model.BookDetail{}, err
		}
		d := model.BookDetail{Book: book}
		if d.Language, err = s.repo.GetLanguage(ctx, book.LanguageID); err != nil {
			return model.BookDetail{}, err
		}
		if book.AuthorID != nil {
			a, err := s.repo.GetAuthor(ctx, *book.AuthorID)
			if err != nil {
				return model.BookDetail{}, err
			}
			d.Author = &a
		}
		if d.Instances, err = s.repo.ListInstances(ctx, id); err != nil {
			return model.BookDetail{}, err
		}
		if sessionKey != "" {
			if d.Visits, err = s.repo.Visit(ctx, sessionKey, bookVisitsKey+strconv.FormatInt(id, 10)); err != nil {
				return model.BookDetail{}, err
			}
		}
		return d, nil
	})
}

func (s *Service) CreateBook(ctx context.Context, actor policy.Actor, req model.BookRequest) (model.Book, error) {
	if err := policy.Require(actor, policy.CanMarkReturned, "create book"); err != nil {
		return model.Book{}, err
	}
	return call(ctx, s.cfg.OperationTimeout, func(ctx context.Context) (model.Book, error) {
		return s.repo.CreateBook(ctx, req)
	})
}

func (s *Service) ListAuthors(ctx context.Context, page, size int) (model.ListAuthors, error) {
	return call(ctx, s.cfg.OperationTimeout, func(ctx context.Context) (model.ListAuthors, error) {
		return s.repo.ListAuthors(ctx, page, size)
	})
}

func (s *Service) GetAuthor(ctx context.Context, id int64) (model.AuthorDetail, error) {
	return call(ctx, s.cfg.OperationTimeout, func(ctx context.Context) (model.AuthorDetail, error) {
		a, err := s.repo.GetAuthor(ctx, id)
		if err != nil {
			return model.AuthorDetail{}, err
		}
		books, err := s.repo.ListBooksByAuthor(ctx, id)
		if err != nil {
			return model.AuthorDetail{}, err
		}
		return model.AuthorDetail{Author: a, Books: books}, nil
	})
}

func authorFromRequest(id int64, req model.AuthorRequest) (model.Author, error) {
	a := model.Author{
		ID:          id,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.DateOfBirth,
		DateOfDeath: req.DateOfDeath,
	}
	if a.DateOfDeath != nil && a.DateOfDeath.IsZero() {
		a.DateOfDeath = nil
	}
	return a, a.Validate()
}

func (s *Service) CreateAuthor(ctx context.Context, actor policy.Actor, req model.AuthorRequest) (model.Author, error) {
	if err := policy.Require(actor, policy.CanMarkReturned, "create author"); err != nil {
		return model.Author{}, err
	}
	a, err := authorFromRequest(0, req)
	if err != nil {
		return model.Author{}, err
	}
	return call(ctx, s.cfg.OperationTimeout, func(ctx context.Context) (model.Author, error) {
		return s.repo.CreateAuthor(ctx, a)
	})
}

func (s *Service) UpdateAuthor(ctx context.Context, actor policy.Actor, id int64, req model.AuthorRequest) (model.Author, error) {
	if err := policy.Require(actor, policy.CanMarkReturned, "update author"); err != nil {
		return model.Author{}, err
	}
	a, err := authorFromRequest(id, req)
	if err != nil {
		return model.Author{}, err
	}
	return call(ctx, s.cfg.OperationTimeout, func(ctx context.Context) (model.Author, error) {
		return s.repo.UpdateAuthor(ctx, a)
	})
}

// DeleteAuthor refuses while books still reference the author.
func (s *Service) DeleteAuthor(ctx context.Context, actor policy.Actor, id int64) error {
	if err := policy.Require(actor, policy.CanMarkReturned, "delete author"); err != nil {
		return err
	}
	_, err := call(ctx, s.cfg.OperationTimeout, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.repo.DeleteAuthor(ctx, id)
	})
	if err == nil {
		s.log.Info("author deleted", zap.Int64("id", id), zap.String("by", actor.UserName))
	}
	return err
}

func (s *Service) CreateLanguage(ctx context.Context, actor policy.Actor, name string) (model.Language, error) {
	if err := policy.Require(actor, policy.CanMarkReturned, "create language"); err != nil {
		return model.Language{}, err
	}
	if name == "" {
		return model.Language{}, errors.Wrap(errs.ErrInvalidState, "language name is required")
	}
	return call(ctx, s.cfg.OperationTimeout, func(ctx context.Context) (model.Language, error) {
		return s.repo.CreateLanguage(ctx, name)
	})
}

func (s *Service) ListLanguages(ctx context.Context) ([]model.Language, error) {
	return call(ctx, s.cfg.OperationTimeout, s.repo.ListLanguages)
}

func (s *Service) ListGenres(ctx context.Context) ([]model.Genre, error) {
	return call(ctx, s.cfg.OperationTimeout, s.repo.ListGenres)
}
