package model

import (
	"time"

	"github.com/Astemirdum/library-catalog/library/internal/errs"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type ListBooks struct {
	Paging `json:",inline"`
	Items  []Book `json:"items"`
}

type ListAuthors struct {
	Paging `json:",inline"`
	Items  []Author `json:"items"`
}

type Author struct {
	ID          int64  `json:"id" db:"id"`
	FirstName   string `json:"firstName" db:"first_name"`
	LastName    string `json:"lastName" db:"last_name"`
	DateOfBirth Date   `json:"dateOfBirth" db:"date_of_birth"`
	DateOfDeath *Date  `json:"dateOfDeath,omitempty" db:"date_of_death"`
}

func (a Author) Validate() error {
	if a.DateOfBirth.IsZero() {
		return errors.Wrap(errs.ErrInvalidDate, "date of birth is required")
	}
	if a.DateOfDeath != nil && a.DateOfDeath.Before(a.DateOfBirth.Time) {
		return errors.Wrap(errs.ErrInvalidDate, "date of death precedes date of birth")
	}
	return nil
}

type AuthorDetail struct {
	Author `json:",inline"`
	Books  []Book `json:"books"`
}

type Genre struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type Language struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type Book struct {
	ID         int64   `json:"id" db:"id"`
	Title      string  `json:"title" db:"title"`
	Summary    string  `json:"summary" db:"summary"`
	ISBN       string  `json:"isbn" db:"isbn"`
	LanguageID int64   `json:"languageId" db:"language_id"`
	AuthorID   *int64  `json:"authorId,omitempty" db:"author_id"`
	CoverURL   string  `json:"coverUrl,omitempty" db:"cover_url"`
	Genres     []Genre `json:"genres,omitempty" db:"-"`
}

type BookDetail struct {
	Book      `json:",inline"`
	Author    *Author        `json:"author,omitempty"`
	Language  Language       `json:"language"`
	Instances []BookInstance `json:"instances"`
	Visits    int            `json:"visitNum"`
}

type LoanStatus string

const (
	StatusMaintenance LoanStatus = "m"
	StatusOnLoan      LoanStatus = "o"
	StatusAvailable   LoanStatus = "a"
	StatusReserved    LoanStatus = "r"
)

func (s LoanStatus) Valid() bool {
	switch s {
	case StatusMaintenance, StatusOnLoan, StatusAvailable, StatusReserved:
		return true
	}
	return false
}

func (s LoanStatus) Label() string {
	switch s {
	case StatusMaintenance:
		return "Maintenance"
	case StatusOnLoan:
		return "On loan"
	case StatusAvailable:
		return "Available"
	case StatusReserved:
		return "Reserved"
	}
	return "Unknown"
}

type BookInstance struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	BookID    int64      `json:"bookId" db:"book_id"`
	BookTitle string     `json:"bookTitle" db:"book_title"`
	Imprint   string     `json:"imprint" db:"imprint"`
	Status    LoanStatus `json:"status" db:"status"`
	DueBack   *Date      `json:"dueBack,omitempty" db:"due_back"`
	Borrower  *string    `json:"borrower,omitempty" db:"borrower"`
}

// CheckInvariant enforces status = on loan <=> due_back set <=> borrower set.
func (bi BookInstance) CheckInvariant() error {
	if !bi.Status.Valid() {
		return errors.Wrapf(errs.ErrInvalidState, "unknown status %q", bi.Status)
	}
	onLoan := bi.Status == StatusOnLoan
	if onLoan != (bi.DueBack != nil) || onLoan != (bi.Borrower != nil) {
		return errors.Wrapf(errs.ErrInvalidState, "instance %s: status %q inconsistent with due back/borrower", bi.ID, bi.Status)
	}
	return nil
}

func (bi BookInstance) IsOverdue(today time.Time) bool {
	return bi.Status == StatusOnLoan && bi.DueBack != nil && bi.DueBack.Before(Today(today).Time)
}

type Profile struct {
	UserName    string    `json:"username" db:"user_name"`
	Bio         string    `json:"bio" db:"bio"`
	DateOfBirth *Date     `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	PhotoURL    string    `json:"photoUrl,omitempty" db:"photo_url"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

type LikeResult string

const (
	Liked   LikeResult = "liked"
	Unliked LikeResult = "unliked"
)

type Dashboard struct {
	NumBooks              int `json:"numBooks"`
	NumInstances          int `json:"numInstances"`
	NumInstancesAvailable int `json:"numInstancesAvailable"`
	NumAuthors            int `json:"numAuthors"`
	NumGenres             int `json:"numGenres"`
	NumVisits             int `json:"numVisits"`
}

// ImportRow is one line of a bulk import table.
type ImportRow struct {
	Title    string `json:"title" validate:"required,max=200"`
	Summary  string `json:"summary" validate:"max=1000"`
	ISBN     string `json:"isbn" validate:"max=13"`
	CoverURL string `json:"coverUrl" validate:"omitempty,url"`
	Genre    string `json:"genre" validate:"required,max=200"`
}

type ImportResult struct {
	Format  string      `json:"format"`
	Created int         `json:"created"`
	Rows    []ImportRow `json:"rows"`
}
