// Package shell implements the interactive numbered menu over an inventory store.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pankajredekar/shoeinv/internal/inventory"
	"github.com/pankajredekar/shoeinv/internal/utils"
	"go.uber.org/zap"
)

const menu = `
====== SHOE INVENTORY MENU ======
1 - Read data from file
2 - View all shoes
3 - Add new shoe
4 - Restock lowest item
5 - Search by code
6 - Show value per item
7 - Show highest stock shoe
0 - Exit`

// Shell maps menu choices to store operations
type Shell struct {
	store *inventory.Store
	in    *bufio.Scanner
	out   io.Writer
	p     *utils.Printer
	log   *zap.Logger
}

// New creates a shell reading choices from in and printing through p
func New(store *inventory.Store, in io.Reader, p *utils.Printer, log *zap.Logger) *Shell {
	if log == nil {
		log = zap.NewNop()
	}
	return &Shell{
		store: store,
		in:    bufio.NewScanner(in),
		out:   p.Writer(),
		p:     p,
		log:   log,
	}
}

// Run loops over the menu until the user exits or input ends
func (s *Shell) Run() error {
	for {
		fmt.Fprintln(s.out, menu)
		choice, ok := s.prompt("Enter your choice: ")
		if !ok {
			s.p.Plain("")
			s.p.Plain("Goodbye!")
			return s.in.Err()
		}

		s.log.Debug("menu choice", zap.String("choice", choice))
		switch strings.TrimSpace(choice) {
		case "1":
			s.load()
		case "2":
			s.viewAll()
		case "3":
			s.capture()
		case "4":
			s.restock()
		case "5":
			s.search()
		case "6":
			s.valuePerItem()
		case "7":
			s.highest()
		case "0":
			s.p.Plain("Goodbye!")
			return nil
		default:
			s.p.Warning("Invalid choice. Please try again.")
		}
	}
}

// prompt prints label and reads one line; false means input is exhausted
func (s *Shell) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func (s *Shell) load() {
	path := s.store.Path()
	n, err := s.store.Load(path)
	switch {
	case errors.Is(err, inventory.ErrNotFound):
		s.p.Error("File not found. Please make sure '%s' is in this folder.", path)
	case err != nil:
		s.log.Warn("load failed", zap.Error(err))
		s.p.Error("An error occurred while reading the file: %v", err)
	default:
		s.p.Success("Data loaded successfully! (%d shoes added)", n)
	}
}

func (s *Shell) viewAll() {
	shoes := s.store.All()
	if len(shoes) == 0 {
		s.p.Info("No shoes in the list yet.")
		return
	}

	s.p.Plain("\n--- All Shoes in Inventory ---")
	for _, shoe := range shoes {
		s.p.Plain("%s", shoe)
	}
}

func (s *Shell) capture() {
	s.p.Plain("\nEnter new shoe details:")
	labels := []string{"Country: ", "Code: ", "Product name: ", "Cost: ", "Quantity: "}
	values := make([]string, len(labels))
	for i, label := range labels {
		v, ok := s.prompt(label)
		if !ok {
			return
		}
		values[i] = v
	}

	shoe, err := inventory.NewShoe(values[0], values[1], values[2], values[3], values[4])
	if err != nil {
		s.p.Error("Could not add shoe: %v", err)
		return
	}
	s.store.Append(shoe)
	s.p.Success("Shoe added successfully!")
}

func (s *Shell) restock() {
	lowest, ok := s.store.LowestQuantity()
	if !ok {
		s.p.Info("No shoes loaded yet.")
		return
	}
	s.p.Plain("\nLowest stock item:\n%s", lowest)

	answer, ok := s.prompt("Would you like to restock this item? (yes/no): ")
	if !ok || strings.ToLower(strings.TrimSpace(answer)) != "yes" {
		return
	}
	qty, ok := s.prompt("Enter quantity to add: ")
	if !ok {
		return
	}

	err := s.store.Restock(lowest, qty)
	switch {
	case errors.Is(err, inventory.ErrInvalidInput):
		s.p.Error("Please enter a valid number.")
	case err != nil:
		s.log.Error("save after restock failed", zap.Error(err))
		s.p.Error("Quantity updated but the file could not be saved: %v", err)
	default:
		s.p.Success("Quantity updated!")
	}
}

func (s *Shell) search() {
	code, ok := s.prompt("Enter shoe code to search: ")
	if !ok {
		return
	}
	shoe, found := s.store.FindByCode(strings.TrimSpace(code))
	if !found {
		s.p.Info("Shoe not found.")
		return
	}
	s.p.Plain("Shoe found:")
	s.p.Plain("%s", shoe)
}

func (s *Shell) valuePerItem() {
	values := s.store.TotalValuePerItem()
	if len(values) == 0 {
		s.p.Info("No shoes loaded yet.")
		return
	}

	s.p.Plain("\n--- Total Value per Shoe ---")
	for _, v := range values {
		s.p.Plain("%s", FormatValue(v))
	}
}

func (s *Shell) highest() {
	shoe, ok := s.store.HighestQuantity()
	if !ok {
		s.p.Info("No shoes loaded yet.")
		return
	}
	s.p.Plain("\nHighest stock item (for sale!):\n%s", shoe)
}

// FormatValue renders one line of the per-item value report
func FormatValue(v inventory.ItemValue) string {
	return fmt.Sprintf("%s (%s) - Total Value: %s", v.Product, v.Code, strconv.FormatFloat(v.Value, 'f', -1, 64))
}
