package service

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/Astemirdum/library-catalog/library/internal/errs"
	"github.com/Astemirdum/library-catalog/library/internal/model"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// memRepo is an in-memory Repository with the same row-level semantics as the
// postgres one: genre names unique, one lock per mutation, invariant checked
// before every instance write.
type memRepo struct {
	mu        sync.Mutex
	languages []model.Language
	genres    []model.Genre
	authors   map[int64]model.Author
	books     map[int64]model.Book
	bookGenre map[int64][]int64
	instances map[uuid.UUID]model.BookInstance
	profiles  map[string]model.Profile
	likes     map[string]map[int64]struct{}
	visits    map[string]int
	nextID    int64
	writes    int
}

func newMemRepo() *memRepo {
	return &memRepo{
		authors:   map[int64]model.Author{},
		books:     map[int64]model.Book{},
		bookGenre: map[int64][]int64{},
		instances: map[uuid.UUID]model.BookInstance{},
		profiles:  map[string]model.Profile{},
		likes:     map[string]map[int64]struct{}{},
		visits:    map[string]int{},
	}
}

func (m *memRepo) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memRepo) Dashboard(context.Context) (model.Dashboard, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d := model.Dashboard{
		NumBooks:     len(m.books),
		NumInstances: len(m.instances),
		NumAuthors:   len(m.authors),
		NumGenres:    len(m.genres),
	}
	for _, bi := range m.instances {
		if bi.Status == model.StatusAvailable {
			d.NumInstancesAvailable++
		}
	}
	return d, nil
}

func (m *memRepo) withGenres(b model.Book) model.Book {
	b.Genres = nil
	for _, gid := range m.bookGenre[b.ID] {
		for _, g := range m.genres {
			if g.ID == gid {
				b.Genres = append(b.Genres, g)
			}
		}
	}
	return b
}

func (m *memRepo) sortedBooks(filter func(model.Book) bool) []model.Book {
	out := make([]model.Book, 0)
	for _, b := range m.books {
		if filter(b) {
			out = append(out, m.withGenres(b))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *memRepo) ListBooks(_ context.Context, page, size int) (model.ListBooks, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := m.sortedBooks(func(model.Book) bool { return true })
	res := model.ListBooks{Paging: model.Paging{Page: page, PageSize: size, TotalElements: len(all)}}
	if page > 0 && size > 0 {
		lo := (page - 1) * size
		if lo > len(all) {
			lo = len(all)
		}
		hi := lo + size
		if hi > len(all) {
			hi = len(all)
		}
		all = all[lo:hi]
	}
	res.Items = all
	return res, nil
}

func (m *memRepo) GetBook(_ context.Context, id int64) (model.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.books[id]
	if !ok {
		return model.Book{}, errs.ErrNotFound
	}
	return m.withGenres(b), nil
}

func (m *memRepo) CreateBook(_ context.Context, req model.BookRequest) (model.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b := model.Book{ID: m.id(), Title: req.Title, Summary: req.Summary, ISBN: req.ISBN,
		LanguageID: req.LanguageID, AuthorID: req.AuthorID, CoverURL: req.CoverURL}
	m.books[b.ID] = b
	m.bookGenre[b.ID] = append([]int64(nil), req.GenreIDs...)
	m.writes++
	return m.withGenres(b), nil
}

func (m *memRepo) ListBooksByAuthor(_ context.Context, authorID int64) ([]model.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sortedBooks(func(b model.Book) bool { return b.AuthorID != nil && *b.AuthorID == authorID }), nil
}

func (m *memRepo) ListAuthors(_ context.Context, page, size int) (model.ListAuthors, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res := model.ListAuthors{Paging: model.Paging{Page: page, PageSize: size, TotalElements: len(m.authors)}}
	for _, a := range m.authors {
		res.Items = append(res.Items, a)
	}
	return res, nil
}

func (m *memRepo) GetAuthor(_ context.Context, id int64) (model.Author, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.authors[id]
	if !ok {
		return model.Author{}, errs.ErrNotFound
	}
	return a, nil
}

func (m *memRepo) CreateAuthor(_ context.Context, a model.Author) (model.Author, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a.ID = m.id()
	m.authors[a.ID] = a
	return a, nil
}

func (m *memRepo) UpdateAuthor(_ context.Context, a model.Author) (model.Author, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.authors[a.ID]; !ok {
		return model.Author{}, errs.ErrNotFound
	}
	m.authors[a.ID] = a
	return a, nil
}

func (m *memRepo) DeleteAuthor(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.authors[id]; !ok {
		return errs.ErrNotFound
	}
	for _, b := range m.books {
		if b.AuthorID != nil && *b.AuthorID == id {
			return errors.Wrap(errs.ErrInvalidState, "author has books")
		}
	}
	delete(m.authors, id)
	return nil
}

func (m *memRepo) GetLanguage(_ context.Context, id int64) (model.Language, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, l := range m.languages {
		if l.ID == id {
			return l, nil
		}
	}
	return model.Language{}, errs.ErrNotFound
}

func (m *memRepo) FindLanguage(_ context.Context, nameContains string) (model.Language, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, l := range m.languages {
		if strings.Contains(strings.ToLower(l.Name), strings.ToLower(nameContains)) {
			return l, nil
		}
	}
	return model.Language{}, errs.ErrNotFound
}

func (m *memRepo) ListLanguages(context.Context) ([]model.Language, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Language(nil), m.languages...), nil
}

func (m *memRepo) CreateLanguage(_ context.Context, name string) (model.Language, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l := model.Language{ID: m.id(), Name: name}
	m.languages = append(m.languages, l)
	return l, nil
}

func (m *memRepo) ListGenres(context.Context) ([]model.Genre, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Genre(nil), m.genres...), nil
}

func (m *memRepo) CreateInstance(_ context.Context, bookID int64, imprint string) (model.BookInstance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.books[bookID]
	if !ok {
		return model.BookInstance{}, errs.ErrNotFound
	}
	bi := model.BookInstance{ID: uuid.New(), BookID: bookID, BookTitle: b.Title, Imprint: imprint, Status: model.StatusAvailable}
	m.instances[bi.ID] = bi
	return bi, nil
}

// putInstance seeds an instance as-is, bypassing the invariant check.
func (m *memRepo) putInstance(bi model.BookInstance) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.instances[bi.ID] = bi
}

func (m *memRepo) GetInstance(_ context.Context, id uuid.UUID) (model.BookInstance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	bi, ok := m.instances[id]
	if !ok {
		return model.BookInstance{}, errs.ErrNotFound
	}
	return bi, nil
}

func (m *memRepo) ListInstances(_ context.Context, bookID int64) ([]model.BookInstance, error) {
	return m.filterInstances(func(bi model.BookInstance) bool { return bi.BookID == bookID }), nil
}

func (m *memRepo) UpdateInstance(_ context.Context, id uuid.UUID, mutate func(*model.BookInstance) error) (model.BookInstance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	bi, ok := m.instances[id]
	if !ok {
		return model.BookInstance{}, errs.ErrNotFound
	}
	if err := mutate(&bi); err != nil {
		return model.BookInstance{}, err
	}
	if err := bi.CheckInvariant(); err != nil {
		return model.BookInstance{}, err
	}
	m.instances[id] = bi
	m.writes++
	return bi, nil
}

func (m *memRepo) filterInstances(keep func(model.BookInstance) bool) []model.BookInstance {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.BookInstance, 0)
	for _, bi := range m.instances {
		if keep(bi) {
			out = append(out, bi)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DueBack == nil || out[j].DueBack == nil {
			return out[j].DueBack == nil && out[i].DueBack != nil
		}
		return out[i].DueBack.Before(out[j].DueBack.Time)
	})
	return out
}

func (m *memRepo) ListLoans(_ context.Context, borrower string) ([]model.BookInstance, error) {
	return m.filterInstances(func(bi model.BookInstance) bool {
		return bi.Status == model.StatusOnLoan && (borrower == "" || (bi.Borrower != nil && *bi.Borrower == borrower))
	}), nil
}

func (m *memRepo) ListOverdue(_ context.Context, today model.Date) ([]model.BookInstance, error) {
	return m.filterInstances(func(bi model.BookInstance) bool { return bi.IsOverdue(today.Time) }), nil
}

func (m *memRepo) ImportBook(_ context.Context, row model.ImportRow, languageID int64, createGenre bool) (model.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b := model.Book{ID: m.id(), Title: row.Title, Summary: row.Summary, ISBN: row.ISBN, LanguageID: languageID, CoverURL: row.CoverURL}
	m.books[b.ID] = b
	if createGenre {
		exists := false
		for _, g := range m.genres {
			exists = exists || g.Name == row.Genre
		}
		if !exists {
			m.genres = append(m.genres, model.Genre{ID: m.id(), Name: row.Genre})
		}
	}
	m.bookGenre[b.ID] = nil
	for _, g := range m.genres {
		if g.Name == row.Genre {
			m.bookGenre[b.ID] = append(m.bookGenre[b.ID], g.ID)
		}
	}
	m.writes++
	return m.withGenres(b), nil
}

func (m *memRepo) CreateProfile(_ context.Context, p model.Profile) (model.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.profiles[p.UserName]; ok {
		return model.Profile{}, errs.ErrAlreadyExists
	}
	m.profiles[p.UserName] = p
	return p, nil
}

func (m *memRepo) GetProfile(_ context.Context, userName string) (model.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[userName]
	if !ok {
		return model.Profile{}, errs.ErrNotFound
	}
	return p, nil
}

func (m *memRepo) UpdateProfile(_ context.Context, p model.Profile) (model.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	old, ok := m.profiles[p.UserName]
	if !ok {
		return model.Profile{}, errs.ErrNotFound
	}
	p.CreatedAt = old.CreatedAt
	m.profiles[p.UserName] = p
	return p, nil
}

func (m *memRepo) ToggleLike(_ context.Context, userName string, bookID int64) (model.LikeResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.books[bookID]; !ok {
		return "", errs.ErrNotFound
	}
	if _, ok := m.profiles[userName]; !ok {
		return "", errs.ErrNotFound
	}
	liked := m.likes[userName]
	if liked == nil {
		liked = map[int64]struct{}{}
		m.likes[userName] = liked
	}
	if _, ok := liked[bookID]; ok {
		delete(liked, bookID)
		return model.Unliked, nil
	}
	liked[bookID] = struct{}{}
	return model.Liked, nil
}

func (m *memRepo) ListLikedBooks(_ context.Context, userName string) ([]model.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	liked := m.likes[userName]
	return m.sortedBooks(func(b model.Book) bool {
		_, ok := liked[b.ID]
		return ok
	}), nil
}

func (m *memRepo) Visit(_ context.Context, sessionKey, counterKey string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := sessionKey + "/" + counterKey
	before := m.visits[k]
	m.visits[k] = before + 1
	return before, nil
}
