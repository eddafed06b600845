package handler

import (
	"context"
	"io"

	"github.com/Astemirdum/library-catalog/library/internal/model"
	"github.com/Astemirdum/library-catalog/library/internal/policy"
	"github.com/Astemirdum/library-catalog/library/internal/service"
	"github.com/google/uuid"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LibraryService interface {
	Dashboard(ctx context.Context, sessionKey string) (model.Dashboard, error)
	ListBooks(ctx context.Context, page, size int) (model.ListBooks, error)
	GetBook(ctx context.Context, id int64, sessionKey string) (model.BookDetail, error)
	CreateBook(ctx context.Context, actor policy.Actor, req model.BookRequest) (model.Book, error)
	ListAuthors(ctx context.Context, page, size int) (model.ListAuthors, error)
	GetAuthor(ctx context.Context, id int64) (model.AuthorDetail, error)
	CreateAuthor(ctx context.Context, actor policy.Actor, req model.AuthorRequest) (model.Author, error)
	UpdateAuthor(ctx context.Context, actor policy.Actor, id int64, req model.AuthorRequest) (model.Author, error)
	DeleteAuthor(ctx context.Context, actor policy.Actor, id int64) error
	CreateLanguage(ctx context.Context, actor policy.Actor, name string) (model.Language, error)
	ListLanguages(ctx context.Context) ([]model.Language, error)
	ListGenres(ctx context.Context) ([]model.Genre, error)

	AddInstance(ctx context.Context, actor policy.Actor, bookID int64, imprint string) (model.BookInstance, error)
	RenewalProposal(ctx context.Context, actor policy.Actor, id uuid.UUID) (model.RenewProposal, error)
	Renew(ctx context.Context, actor policy.Actor, id uuid.UUID, due model.Date) (model.BookInstance, error)
	Checkout(ctx context.Context, actor policy.Actor, id uuid.UUID, borrower string, due model.Date) (model.BookInstance, error)
	MarkReturned(ctx context.Context, actor policy.Actor, id uuid.UUID) (model.BookInstance, error)
	ListLoansForUser(ctx context.Context, actor policy.Actor) ([]model.BookInstance, error)
	ListAllLoans(ctx context.Context, actor policy.Actor) ([]model.BookInstance, error)
	ListOverdue(ctx context.Context, actor policy.Actor) ([]model.BookInstance, error)

	Import(ctx context.Context, actor policy.Actor, filename string, r io.Reader) (model.ImportResult, error)

	RegisterProfile(ctx context.Context, actor policy.Actor, req model.ProfileRequest) (model.Profile, error)
	GetProfile(ctx context.Context, actor policy.Actor) (model.Profile, error)
	UpdateProfile(ctx context.Context, actor policy.Actor, req model.ProfileRequest) (model.Profile, error)
	ToggleLike(ctx context.Context, actor policy.Actor, bookID int64) (model.LikeResult, error)
	ListLikedBooks(ctx context.Context, actor policy.Actor) ([]model.Book, error)
}

// LoanApplier handles messages from the loans topic.
type LoanApplier interface {
	ApplyLoanMessage(ctx context.Context, msg model.LoanMessage) error
}

var (
	_ LibraryService = (*service.Service)(nil)
	_ LoanApplier    = (*service.Service)(nil)
)
