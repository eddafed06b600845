package model

type AuthorRequest struct {
	FirstName   string `json:"firstName" validate:"required,max=100"`
	LastName    string `json:"lastName" validate:"required,max=100"`
	DateOfBirth Date   `json:"dateOfBirth"`
	DateOfDeath *Date  `json:"dateOfDeath"`
}

type BookRequest struct {
	Title      string  `json:"title" validate:"required,max=200"`
	Summary    string  `json:"summary" validate:"max=1000"`
	ISBN       string  `json:"isbn" validate:"max=13"`
	LanguageID int64   `json:"languageId" validate:"required"`
	AuthorID   *int64  `json:"authorId"`
	CoverURL   string  `json:"coverUrl" validate:"omitempty,url"`
	GenreIDs   []int64 `json:"genreIds"`
}

type LanguageRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

type InstanceRequest struct {
	Imprint string `json:"imprint" validate:"max=200"`
}

type RenewRequest struct {
	DueBack Date `json:"dueBack"`
}

type RenewProposal struct {
	Instance BookInstance `json:"instance"`
	DueBack  Date         `json:"dueBack"`
}

type CheckoutRequest struct {
	Borrower string `json:"borrower" validate:"required,max=150"`
	DueBack  Date   `json:"dueBack"`
}

type ProfileRequest struct {
	Bio         string `json:"bio" validate:"max=1000"`
	DateOfBirth *Date  `json:"dateOfBirth"`
	PhotoURL    string `json:"photoUrl" validate:"omitempty,url"`
}

type LikeResponse struct {
	BookID int64      `json:"bookId"`
	Result LikeResult `json:"result"`
}
