package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Astemirdum/library-catalog/library/internal/errs"
	"github.com/Astemirdum/library-catalog/library/internal/model"
	"github.com/Astemirdum/library-catalog/library/internal/policy"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	now       = time.Date(2024, time.January, 1, 15, 30, 0, 0, time.UTC)
	today     = model.Today(now)
	librarian = policy.NewActor("marian", policy.CanMarkReturned)
	alice     = policy.NewActor("alice")
	bob       = policy.NewActor("bob")
)

type recorder struct {
	mu     sync.Mutex
	events []model.Event
}

func (r *recorder) Publish(_ context.Context, e model.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) types() []model.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.EventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

func newTestService(repo *memRepo, opts ...Option) (*Service, *recorder) {
	rec := &recorder{}
	opts = append([]Option{WithClock(func() time.Time { return now }), WithPublisher(rec)}, opts...)
	return NewService(repo, zap.NewNop(), opts...), rec
}

func seedLoan(t *testing.T, repo *memRepo, borrower string, due model.Date) model.BookInstance {
	t.Helper()
	b, err := repo.CreateBook(context.Background(), model.BookRequest{Title: "Book of " + borrower})
	require.NoError(t, err)
	bi, err := repo.CreateInstance(context.Background(), b.ID, "first")
	require.NoError(t, err)
	bi.Status, bi.DueBack, bi.Borrower = model.StatusOnLoan, &due, &borrower
	repo.putInstance(bi)
	return bi
}

func TestProposeRenewal(t *testing.T) {
	t.Parallel()
	require.Equal(t, model.NewDate(2024, time.January, 22), ProposeRenewal(model.NewDate(2024, time.January, 1)))
	require.Equal(t, model.NewDate(2024, time.March, 13), ProposeRenewal(model.NewDate(2024, time.February, 21)))
}

func TestRenew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		actor   policy.Actor
		status  model.LoanStatus
		unknown bool
		due     model.Date
		wantErr error
	}{
		{name: "ok", actor: librarian, status: model.StatusOnLoan, due: today.AddDays(21)},
		{name: "anonymous", actor: policy.Anonymous(), status: model.StatusOnLoan, due: today.AddDays(7), wantErr: errs.ErrForbidden},
		{name: "not librarian", actor: alice, status: model.StatusOnLoan, due: today.AddDays(7), wantErr: errs.ErrForbidden},
		{name: "today", actor: librarian, status: model.StatusOnLoan, due: today, wantErr: errs.ErrInvalidDate},
		{name: "past", actor: librarian, status: model.StatusOnLoan, due: today.AddDays(-3), wantErr: errs.ErrInvalidDate},
		{name: "too far", actor: librarian, status: model.StatusOnLoan, due: today.AddDays(29), wantErr: errs.ErrInvalidDate},
		{name: "zero", actor: librarian, status: model.StatusOnLoan, wantErr: errs.ErrInvalidDate},
		{name: "unknown", actor: librarian, unknown: true, due: today.AddDays(7), wantErr: errs.ErrNotFound},
		{name: "available", actor: librarian, status: model.StatusAvailable, due: today.AddDays(7), wantErr: errs.ErrInvalidState},
		{name: "maintenance", actor: librarian, status: model.StatusMaintenance, due: today.AddDays(7), wantErr: errs.ErrInvalidState},
		{name: "available past date", actor: librarian, status: model.StatusAvailable, due: today.AddDays(-3), wantErr: errs.ErrInvalidState},
		{name: "reserved zero date", actor: librarian, status: model.StatusReserved, wantErr: errs.ErrInvalidState},
		{name: "unknown past date", actor: librarian, unknown: true, due: today.AddDays(-3), wantErr: errs.ErrNotFound},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo := newMemRepo()
			svc, rec := newTestService(repo)

			bi := seedLoan(t, repo, "alice", today.AddDays(2))
			if tt.status != model.StatusOnLoan {
				bi.Status, bi.DueBack, bi.Borrower = tt.status, nil, nil
				repo.putInstance(bi)
			}
			id := bi.ID
			if tt.unknown {
				id = uuid.New()
			}

			got, err := svc.Renew(context.Background(), tt.actor, id, tt.due)
			stored, _ := repo.GetInstance(context.Background(), bi.ID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Equal(t, bi, stored)
				require.Empty(t, rec.types())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.due, *got.DueBack)
			require.Equal(t, model.StatusOnLoan, got.Status)
			require.Equal(t, "alice", *got.Borrower)
			require.Equal(t, got, stored)
			require.Equal(t, []model.EventType{model.EventLoanRenewed}, rec.types())
		})
	}
}

func TestRenew_NoCap(t *testing.T) {
	t.Parallel()
	repo := newMemRepo()
	cfg := DefaultConfig()
	cfg.MaxRenewalDays = 0
	svc, _ := newTestService(repo, WithConfig(cfg))
	bi := seedLoan(t, repo, "alice", today.AddDays(1))

	got, err := svc.Renew(context.Background(), librarian, bi.ID, today.AddDays(365))
	require.NoError(t, err)
	require.Equal(t, today.AddDays(365), *got.DueBack)
}

func TestRenewalProposal(t *testing.T) {
	t.Parallel()
	repo := newMemRepo()
	svc, _ := newTestService(repo)
	bi := seedLoan(t, repo, "alice", today.AddDays(1))

	p, err := svc.RenewalProposal(context.Background(), librarian, bi.ID)
	require.NoError(t, err)
	require.Equal(t, model.NewDate(2024, time.January, 22), p.DueBack)
	require.Equal(t, bi.ID, p.Instance.ID)

	_, err = svc.RenewalProposal(context.Background(), alice, bi.ID)
	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestLoanLifecycle_Invariant(t *testing.T) {
	t.Parallel()
	repo := newMemRepo()
	svc, rec := newTestService(repo)
	ctx := context.Background()

	b, err := repo.CreateBook(ctx, model.BookRequest{Title: "Dune"})
	require.NoError(t, err)
	bi, err := svc.AddInstance(ctx, librarian, b.ID, "Ace, 1965")
	require.NoError(t, err)
	require.NoError(t, bi.CheckInvariant())

	_, err = svc.MarkReturned(ctx, librarian, bi.ID)
	require.ErrorIs(t, err, errs.ErrInvalidState)

	bi, err = svc.Checkout(ctx, librarian, bi.ID, "alice", today.AddDays(14))
	require.NoError(t, err)
	require.NoError(t, bi.CheckInvariant())
	require.Equal(t, model.StatusOnLoan, bi.Status)

	_, err = svc.Checkout(ctx, librarian, bi.ID, "bob", today.AddDays(14))
	require.ErrorIs(t, err, errs.ErrInvalidState)

	bi, err = svc.Renew(ctx, librarian, bi.ID, today.AddDays(21))
	require.NoError(t, err)
	require.NoError(t, bi.CheckInvariant())

	bi, err = svc.MarkReturned(ctx, librarian, bi.ID)
	require.NoError(t, err)
	require.NoError(t, bi.CheckInvariant())
	require.Equal(t, model.StatusAvailable, bi.Status)
	require.Nil(t, bi.DueBack)
	require.Nil(t, bi.Borrower)

	require.Equal(t, []model.EventType{model.EventLoanCheckedOut, model.EventLoanRenewed, model.EventLoanReturned}, rec.types())
}

func TestListLoans(t *testing.T) {
	t.Parallel()
	repo := newMemRepo()
	svc, _ := newTestService(repo)
	ctx := context.Background()

	late := seedLoan(t, repo, "alice", today.AddDays(10))
	soon := seedLoan(t, repo, "alice", today.AddDays(3))
	other := seedLoan(t, repo, "bob", today.AddDays(1))

	loans, err := svc.ListLoansForUser(ctx, alice)
	require.NoError(t, err)
	require.Len(t, loans, 2)
	require.Equal(t, soon.ID, loans[0].ID)
	require.Equal(t, late.ID, loans[1].ID)
	for _, l := range loans {
		require.Equal(t, "alice", *l.Borrower)
	}

	_, err = svc.ListLoansForUser(ctx, policy.Anonymous())
	require.ErrorIs(t, err, errs.ErrForbidden)

	_, err = svc.ListAllLoans(ctx, bob)
	require.ErrorIs(t, err, errs.ErrForbidden)

	all, err := svc.ListAllLoans(ctx, librarian)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, other.ID, all[0].ID)
}

func TestSweepOverdue(t *testing.T) {
	t.Parallel()
	repo := newMemRepo()
	svc, rec := newTestService(repo)

	seedLoan(t, repo, "alice", today.AddDays(-1))
	seedLoan(t, repo, "bob", today)
	seedLoan(t, repo, "carol", today.AddDays(5))

	n, err := svc.SweepOverdue(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, []model.EventType{model.EventLoanOverdue}, rec.types())
	require.Equal(t, "alice", rec.events[0].UserName)
}

func TestApplyLoanMessage(t *testing.T) {
	t.Parallel()
	repo := newMemRepo()
	svc, _ := newTestService(repo)
	ctx := context.Background()

	b, err := repo.CreateBook(ctx, model.BookRequest{Title: "Emma"})
	require.NoError(t, err)
	bi, err := repo.CreateInstance(ctx, b.ID, "")
	require.NoError(t, err)

	err = svc.ApplyLoanMessage(ctx, model.LoanMessage{InstanceID: bi.ID, Action: model.LoanCheckout, DueBack: today.AddDays(7)})
	require.Error(t, err)

	require.NoError(t, svc.ApplyLoanMessage(ctx, model.LoanMessage{
		InstanceID: bi.ID, Action: model.LoanCheckout, Borrower: "alice", DueBack: today.AddDays(7),
	}))
	got, _ := repo.GetInstance(ctx, bi.ID)
	require.Equal(t, model.StatusOnLoan, got.Status)

	require.NoError(t, svc.ApplyLoanMessage(ctx, model.LoanMessage{InstanceID: bi.ID, Action: model.LoanReturn}))
	got, _ = repo.GetInstance(ctx, bi.ID)
	require.Equal(t, model.StatusAvailable, got.Status)
}

const mysteryCSV = `title,summary,isbn,cover_url,genre
A,first,1111111111111,,Mystery
B,second,2222222222222,,Mystery
C,third,3333333333333,,Drama
`

func TestImport_GenresCreatedOnce(t *testing.T) {
	t.Parallel()
	for _, workers := range []int{1, 4} {
		workers := workers
		t.Run("workers", func(t *testing.T) {
			t.Parallel()
			repo := newMemRepo()
			repo.languages = []model.Language{{ID: 100, Name: "English (EN)"}}
			cfg := DefaultConfig()
			cfg.ImportWorkers = workers
			svc, rec := newTestService(repo, WithConfig(cfg))

			res, err := svc.Import(context.Background(), librarian, "books.csv", strings.NewReader(mysteryCSV))
			require.NoError(t, err)
			require.Equal(t, 3, res.Created)
			require.Len(t, res.Rows, 3)
			require.Equal(t, "csv", res.Format)

			genres, _ := repo.ListGenres(context.Background())
			require.Len(t, genres, 2)

			books, _ := repo.ListBooks(context.Background(), 0, 0)
			require.Len(t, books.Items, 3)
			for _, b := range books.Items {
				require.Len(t, b.Genres, 1)
				require.Equal(t, int64(100), b.LanguageID)
				want := "Mystery"
				if b.Title == "C" {
					want = "Drama"
				}
				require.Equal(t, want, b.Genres[0].Name)
			}
			require.Equal(t, []model.EventType{model.EventBooksImported}, rec.types())
		})
	}
}

func TestImport_ExistingGenreReused(t *testing.T) {
	t.Parallel()
	repo := newMemRepo()
	repo.languages = []model.Language{{ID: 1, Name: "English"}}
	repo.genres = []model.Genre{{ID: 50, Name: "Mystery"}}
	svc, _ := newTestService(repo)

	_, err := svc.Import(context.Background(), librarian, "books.csv", strings.NewReader(mysteryCSV))
	require.NoError(t, err)
	genres, _ := repo.ListGenres(context.Background())
	require.Len(t, genres, 2)
	require.Equal(t, int64(50), genres[0].ID)
}

func TestImport_Failures(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		actor     policy.Actor
		file      string
		body      string
		languages []model.Language
		wantErr   error
		stage     errs.Stage
		row       int
		created   int
	}{
		{
			name: "txt", actor: librarian, file: "books.txt", body: mysteryCSV,
			languages: []model.Language{{ID: 1, Name: "EN"}}, wantErr: errs.ErrUnsupportedFormat,
		},
		{
			name: "forbidden", actor: alice, file: "books.csv", body: mysteryCSV,
			languages: []model.Language{{ID: 1, Name: "EN"}}, wantErr: errs.ErrForbidden,
		},
		{
			name: "no language", actor: librarian, file: "books.csv", body: mysteryCSV,
			languages: []model.Language{{ID: 1, Name: "Russian (RU)"}}, wantErr: errs.ErrConfiguration,
		},
		{
			name: "bad header", actor: librarian, file: "books.csv", body: "name,genre\nA,Drama\n",
			languages: []model.Language{{ID: 1, Name: "EN"}}, stage: errs.StageCSV,
		},
		{
			name: "bad row", actor: librarian, file: "books.csv",
			body:      "title,summary,isbn,cover_url,genre\nA,s,1,,Drama\n,s,2,,Drama\nC,s,3,,Drama\n",
			languages: []model.Language{{ID: 1, Name: "EN"}}, stage: errs.StageRow, row: 2, created: 1,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo := newMemRepo()
			repo.languages = tt.languages
			svc, rec := newTestService(repo)

			res, err := svc.Import(context.Background(), tt.actor, tt.file, strings.NewReader(tt.body))
			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				var ie *errs.ImportError
				require.True(t, errors.As(err, &ie))
				require.Equal(t, tt.stage, ie.Stage)
				require.Equal(t, tt.row, ie.Row)
			}
			require.Equal(t, tt.created, res.Created)
			require.Len(t, repo.books, tt.created)
			require.Empty(t, rec.types())
		})
	}
}

func TestToggleLike(t *testing.T) {
	t.Parallel()
	repo := newMemRepo()
	svc, rec := newTestService(repo)
	ctx := context.Background()

	b, err := repo.CreateBook(ctx, model.BookRequest{Title: "Persuasion"})
	require.NoError(t, err)

	_, err = svc.ToggleLike(ctx, alice, b.ID)
	require.ErrorIs(t, err, errs.ErrNotFound)

	_, err = svc.RegisterProfile(ctx, alice, model.ProfileRequest{Bio: "reader"})
	require.NoError(t, err)
	_, err = svc.RegisterProfile(ctx, alice, model.ProfileRequest{})
	require.ErrorIs(t, err, errs.ErrAlreadyExists)

	res, err := svc.ToggleLike(ctx, alice, b.ID)
	require.NoError(t, err)
	require.Equal(t, model.Liked, res)
	liked, err := svc.ListLikedBooks(ctx, alice)
	require.NoError(t, err)
	require.Len(t, liked, 1)

	res, err = svc.ToggleLike(ctx, alice, b.ID)
	require.NoError(t, err)
	require.Equal(t, model.Unliked, res)
	liked, err = svc.ListLikedBooks(ctx, alice)
	require.NoError(t, err)
	require.Empty(t, liked)

	_, err = svc.ToggleLike(ctx, policy.Anonymous(), b.ID)
	require.ErrorIs(t, err, errs.ErrForbidden)
	_, err = svc.ToggleLike(ctx, alice, b.ID+1000)
	require.ErrorIs(t, err, errs.ErrNotFound)

	require.Equal(t, []model.EventType{model.EventProfileCreated, model.EventBookLiked, model.EventBookUnliked}, rec.types())
}

func TestAuthors(t *testing.T) {
	t.Parallel()
	repo := newMemRepo()
	svc, _ := newTestService(repo)
	ctx := context.Background()

	_, err := svc.CreateAuthor(ctx, alice, model.AuthorRequest{FirstName: "Jane", LastName: "Austen"})
	require.ErrorIs(t, err, errs.ErrForbidden)

	death := model.NewDate(1700, time.January, 1)
	_, err = svc.CreateAuthor(ctx, librarian, model.AuthorRequest{
		FirstName: "Jane", LastName: "Austen", DateOfBirth: model.NewDate(1775, time.December, 16), DateOfDeath: &death,
	})
	require.ErrorIs(t, err, errs.ErrInvalidDate)

	death = model.NewDate(1817, time.July, 18)
	a, err := svc.CreateAuthor(ctx, librarian, model.AuthorRequest{
		FirstName: "Jane", LastName: "Austen", DateOfBirth: model.NewDate(1775, time.December, 16), DateOfDeath: &death,
	})
	require.NoError(t, err)

	_, err = repo.CreateBook(ctx, model.BookRequest{Title: "Emma", AuthorID: &a.ID})
	require.NoError(t, err)

	detail, err := svc.GetAuthor(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, detail.Books, 1)

	require.ErrorIs(t, svc.DeleteAuthor(ctx, librarian, a.ID), errs.ErrInvalidState)
}

func TestVisitCounters(t *testing.T) {
	t.Parallel()
	repo := newMemRepo()
	repo.languages = []model.Language{{ID: 1, Name: "English"}}
	svc, _ := newTestService(repo)
	ctx := context.Background()

	for want := 0; want < 3; want++ {
		d, err := svc.Dashboard(ctx, "s1")
		require.NoError(t, err)
		require.Equal(t, want, d.NumVisits)
	}
	d, err := svc.Dashboard(ctx, "s2")
	require.NoError(t, err)
	require.Equal(t, 0, d.NumVisits)

	b, err := repo.CreateBook(ctx, model.BookRequest{Title: "Emma", LanguageID: 1})
	require.NoError(t, err)
	_, err = svc.GetBook(ctx, b.ID, "s1")
	require.NoError(t, err)
	detail, err := svc.GetBook(ctx, b.ID, "s1")
	require.NoError(t, err)
	require.Equal(t, 1, detail.Visits)
	require.Equal(t, "English", detail.Language.Name)
}

type slowRepo struct {
	*memRepo
}

func (s slowRepo) GetInstance(ctx context.Context, _ uuid.UUID) (model.BookInstance, error) {
	<-ctx.Done()
	return model.BookInstance{}, ctx.Err()
}

func TestTimeout(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	cfg.OperationTimeout = 10 * time.Millisecond
	svc := NewService(slowRepo{newMemRepo()}, zap.NewNop(), WithConfig(cfg))

	_, err := svc.RenewalProposal(context.Background(), librarian, uuid.New())
	require.ErrorIs(t, err, errs.ErrTimeout)
	require.True(t, errs.Retryable(err))
}
