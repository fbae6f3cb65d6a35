package inventory

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Header is the first line written to the inventory file
const Header = "Country,Code,Product,Cost,Quantity"

const fieldCount = 5

// ItemValue is the stock value of a single record
type ItemValue struct {
	Product string
	Code    string
	Value   float64
}

// Store holds the shoe records in memory and syncs them with a delimited text file
type Store struct {
	mu    sync.Mutex
	path  string
	shoes []*Shoe
	log   *zap.Logger
}

// NewStore creates an empty store backed by the file at path
func NewStore(path string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		path: path,
		log:  log,
	}
}

// Path returns the backing file used when a restock persists
func (s *Store) Path() string {
	return s.path
}

// Load appends every valid record of the file at path to the store.
// The header line is skipped and lines without exactly five fields are ignored.
// It returns the number of records added.
func (s *Store) Load(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return 0, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	var loaded []*Shoe
	skipped := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo == 1 {
			continue
		}
		parts := strings.Split(strings.TrimSpace(scanner.Text()), ",")
		if len(parts) != fieldCount {
			skipped++
			s.log.Debug("skipping line", zap.Int("line", lineNo), zap.Int("fields", len(parts)))
			continue
		}
		shoe, err := NewShoe(parts[0], parts[1], parts[2], parts[3], parts[4])
		if err != nil {
			return 0, fmt.Errorf("%w: line %d: %w", ErrIO, lineNo, err)
		}
		loaded = append(loaded, shoe)
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrIO, err)
	}
	if lineNo == 0 {
		return 0, fmt.Errorf("%w: %s is empty, expected a header line", ErrIO, path)
	}

	s.mu.Lock()
	s.shoes = append(s.shoes, loaded...)
	total := len(s.shoes)
	s.mu.Unlock()

	s.log.Info("inventory loaded",
		zap.String("path", path),
		zap.Int("added", len(loaded)),
		zap.Int("skipped", skipped),
		zap.Int("total", total))
	return len(loaded), nil
}

// Append adds a record to the end of the collection
func (s *Store) Append(shoe *Shoe) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shoes = append(s.shoes, shoe)
}

// All returns the records in collection order
func (s *Store) All() []*Shoe {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Shoe, len(s.shoes))
	copy(out, s.shoes)
	return out
}

// Len returns the number of records
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.shoes)
}

// FindByCode returns the first record whose code matches, ignoring case
func (s *Store) FindByCode(code string) (*Shoe, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, shoe := range s.shoes {
		if strings.EqualFold(shoe.Code, code) {
			return shoe, true
		}
	}
	return nil, false
}

// LowestQuantity returns the first record holding the minimum quantity
func (s *Store) LowestQuantity() (*Shoe, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pick(func(a, b int) bool { return a < b })
}

// HighestQuantity returns the first record holding the maximum quantity
func (s *Store) HighestQuantity() (*Shoe, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pick(func(a, b int) bool { return a > b })
}

// pick keeps the current best unless a later record is strictly better, so ties go to the first one.
func (s *Store) pick(better func(a, b int) bool) (*Shoe, bool) {
	if len(s.shoes) == 0 {
		return nil, false
	}
	best := s.shoes[0]
	for _, shoe := range s.shoes[1:] {
		if better(shoe.quantity, best.quantity) {
			best = shoe
		}
	}
	return best, true
}

// Restock adds the quantity parsed from addText to shoe and saves the store.
// The record is left unchanged when addText is not a non-negative integer.
func (s *Store) Restock(shoe *Shoe, addText string) error {
	n, err := strconv.Atoi(strings.TrimSpace(addText))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidInput, addText)
	}
	if n < 0 {
		return fmt.Errorf("%w: %d is negative", ErrInvalidInput, n)
	}

	s.mu.Lock()
	if n > math.MaxInt-shoe.quantity {
		s.mu.Unlock()
		return fmt.Errorf("%w: adding %d to %d overflows", ErrInvalidInput, n, shoe.quantity)
	}
	shoe.quantity += n
	s.mu.Unlock()

	s.log.Info("restocked",
		zap.String("code", shoe.Code),
		zap.Int("added", n),
		zap.Int("quantity", shoe.Quantity()))
	return s.Save(s.path)
}

// RestockLowest restocks whichever record currently has the lowest quantity
func (s *Store) RestockLowest(addText string) (*Shoe, error) {
	shoe, ok := s.LowestQuantity()
	if !ok {
		return nil, ErrEmpty
	}
	if err := s.Restock(shoe, addText); err != nil {
		return shoe, err
	}
	return shoe, nil
}

// TotalValuePerItem returns cost * quantity for each record in collection order
func (s *Store) TotalValuePerItem() []ItemValue {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ItemValue, 0, len(s.shoes))
	for _, shoe := range s.shoes {
		out = append(out, ItemValue{Product: shoe.Product, Code: shoe.Code, Value: shoe.Value()})
	}
	return out
}

// Save overwrites the file at path with the header and every record
func (s *Store) Save(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	w := bufio.NewWriter(f)
	w.WriteString(Header + "\n")
	for _, shoe := range s.shoes {
		w.WriteString(strings.Join(shoe.fields(), ",") + "\n")
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	s.log.Info("inventory saved", zap.String("path", path), zap.Int("records", len(s.shoes)))
	return nil
}
