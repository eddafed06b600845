package service

import (
	"context"
	"io"
	"sync/atomic"

	"github.com/Astemirdum/library-catalog/library/internal/errs"
	"github.com/Astemirdum/library-catalog/library/internal/model"
	"github.com/Astemirdum/library-catalog/library/internal/policy"
	"github.com/Astemirdum/library-catalog/library/internal/service/tabular"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Import ingests a CSV or Excel table of books. Rows are stored one
// transaction each; on a row failure the rows already stored stay and the
// remaining rows are skipped.
func (s *Service) Import(ctx context.Context, actor policy.Actor, filename string, r io.Reader) (model.ImportResult, error) {
	if err := policy.Require(actor, policy.CanMarkReturned, "import books"); err != nil {
		return model.ImportResult{}, err
	}
	format, err := tabular.FormatOf(filename)
	if err != nil {
		return model.ImportResult{}, err
	}
	rows, err := tabular.Read(format, r)
	if err != nil {
		return model.ImportResult{}, err
	}
	res := model.ImportResult{Format: string(format), Rows: rows}

	if s.cfg.ImportTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.ImportTimeout)
		defer cancel()
	}

	lang, err := s.repo.FindLanguage(ctx, s.cfg.DefaultLanguage)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return res, errors.Wrapf(errs.ErrConfiguration, "no language matching %q", s.cfg.DefaultLanguage)
		}
		return res, asTimeout(ctx, err)
	}
	genres, err := s.repo.ListGenres(ctx)
	if err != nil {
		return res, asTimeout(ctx, err)
	}
	known := make(map[string]struct{}, len(genres))
	for _, g := range genres {
		known[g.Name] = struct{}{}
	}

	var created atomic.Int64
	store := func(ctx context.Context, n int, row model.ImportRow) error {
		if err := s.validator.Validate(row); err != nil {
			return &errs.ImportError{Stage: errs.StageRow, Row: n, Err: err}
		}
		_, createGenre := known[row.Genre]
		if _, err := s.repo.ImportBook(ctx, row, lang.ID, !createGenre); err != nil {
			return &errs.ImportError{Stage: errs.StageRow, Row: n, Err: asTimeout(ctx, err)}
		}
		created.Add(1)
		return nil
	}

	if s.cfg.ImportWorkers > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.cfg.ImportWorkers)
		for i, row := range rows {
			if gctx.Err() != nil {
				break
			}
			n, row := i+1, row
			g.Go(func() error { return store(gctx, n, row) })
		}
		err = g.Wait()
	} else {
		for i, row := range rows {
			if err = store(ctx, i+1, row); err != nil {
				break
			}
		}
	}
	res.Created = int(created.Load())
	if err != nil {
		s.log.Warn("import stopped", zap.String("file", filename), zap.Int("created", res.Created), zap.Error(err))
		return res, err
	}
	s.log.Info("import done", zap.String("file", filename), zap.Int("created", res.Created))
	s.publish(ctx, model.EventBooksImported, actor.UserName, map[string]any{"file": filename, "created": res.Created})
	return res, nil
}
