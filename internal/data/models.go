// internal/data/models.go
package data

import (
	"errors"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// IDLength is the number of characters in a generated book id.
const IDLength = 16

// TimeFormat renders timestamps as ISO 8601 UTC with millisecond precision.
const TimeFormat = "2006-01-02T15:04:05.000Z"

// Models is a top-level container that groups all model types together.
// It is passed around the application via applicationDependencies so every
// handler shares the same store.
type Models struct {
	Books *BookModel // Holds the shared book collection
}

// NewModels constructs a Models value with an empty book collection.
// Call this once during application startup, or once per test for isolation.
func NewModels() Models {
	return Models{
		Books: NewBookModel(),
	}
}

// ErrRecordNotFound is returned when no book has the requested id.
var ErrRecordNotFound = errors.New("record not found")

// Filters holds the list query parameters. An empty string means the
// parameter was not supplied.
type Filters struct {
	Name     string
	Reading  string
	Finished string
}

// matcher returns the predicate for the first supplied filter, checked in the
// order name, reading, finished. It returns nil when no filter is supplied.
// Once name and reading are both absent the finished comparison applies.
func (f Filters) matcher() func(*Book) bool {
	switch {
	case f.Name == "" && f.Reading == "" && f.Finished == "":
		return nil
	case f.Name != "":
		rx, err := regexp.Compile("(?i)" + f.Name)
		if err != nil {
			rx = regexp.MustCompile("(?i)" + regexp.QuoteMeta(f.Name))
		}
		return func(b *Book) bool { return rx.MatchString(b.Name) }
	case f.Reading != "":
		want := toNumber(f.Reading)
		return func(b *Book) bool { return flagNumber(b.Reading) == want }
	default:
		want := toNumber(f.Finished)
		return func(b *Book) bool { return flagNumber(Some(b.Finished)) == want }
	}
}

// toNumber converts a query value to a number, yielding NaN when it does not
// parse. NaN never compares equal, so an unparsable value matches no book.
func toNumber(s string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return n
}

// flagNumber maps true to 1, false and null to 0, and an absent flag to NaN.
func flagNumber(flag Optional[bool]) float64 {
	switch {
	case !flag.Set:
		return math.NaN()
	case flag.Present() && flag.Value:
		return 1
	default:
		return 0
	}
}

// BookModel is the in-memory book collection. A single RWMutex guards the
// slice so that concurrent requests see one writer at a time.
// Insertion order is preserved.
type BookModel struct {
	mu    sync.RWMutex
	books []*Book

	NewID func() (string, error) // Generates candidate ids
	Now   func() time.Time       // Clock used for insertedAt/updatedAt
}

// NewBookModel returns an empty collection using nanoid ids and the wall clock.
func NewBookModel() *BookModel {
	return &BookModel{
		NewID: func() (string, error) { return gonanoid.New(IDLength) },
		Now:   time.Now,
	}
}

func (m *BookModel) timestamp() string {
	return m.Now().UTC().Format(TimeFormat)
}

// indexOf returns the position of id in the collection, or -1.
// The caller must hold m.mu.
func (m *BookModel) indexOf(id string) int {
	for i, b := range m.books {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// Insert appends book to the collection. The id, finished flag and both
// timestamps are assigned here and written back into book.
func (m *BookModel) Insert(book *Book) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var id string
	for {
		candidate, err := m.NewID()
		if err != nil {
			return err
		}
		if m.indexOf(candidate) == -1 {
			id = candidate
			break
		}
	}

	book.ID = id
	book.Finished = isFinished(book.PageCount, book.ReadPage)
	book.InsertedAt = m.timestamp()
	book.UpdatedAt = book.InsertedAt

	stored := *book
	m.books = append(m.books, &stored)
	return nil
}

// Get returns a copy of the book with the given id.
// Returns ErrRecordNotFound if no such book exists.
func (m *BookModel) Get(id string) (*Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.indexOf(id)
	if i == -1 {
		return nil, ErrRecordNotFound
	}
	book := *m.books[i]
	return &book, nil
}

// GetAll returns copies of every book accepted by filters, in insertion order.
func (m *BookModel) GetAll(filters Filters) []*Book {
	match := filters.matcher()

	m.mu.RLock()
	defer m.mu.RUnlock()

	books := []*Book{}
	for _, b := range m.books {
		if match != nil && !match(b) {
			continue
		}
		book := *b
		books = append(books, &book)
	}
	return books
}

// Update replaces every client-owned field of the book with the given id by
// the values in book, recomputes finished and refreshes updatedAt.
// The stored id and insertedAt are kept; the result is written back into book.
// Returns ErrRecordNotFound if no such book exists.
func (m *BookModel) Update(id string, book *Book) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i == -1 {
		return ErrRecordNotFound
	}

	current := m.books[i]
	book.ID = current.ID
	book.InsertedAt = current.InsertedAt
	book.Finished = isFinished(book.PageCount, book.ReadPage)
	book.UpdatedAt = m.timestamp()

	stored := *book
	m.books[i] = &stored
	return nil
}

// Delete removes the book with the given id from the collection.
// Returns ErrRecordNotFound if no matching record exists.
func (m *BookModel) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i == -1 {
		return ErrRecordNotFound
	}
	m.books = slices.Delete(m.books, i, i+1)
	return nil
}

// Len returns the number of books in the collection.
func (m *BookModel) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.books)
}
