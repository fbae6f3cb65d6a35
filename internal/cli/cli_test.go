package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pankajredekar/shoeinv/internal/config"
	"github.com/pankajredekar/shoeinv/internal/inventory"
	"github.com/pankajredekar/shoeinv/internal/utils"
)

const sampleInventory = `Country,Code,Product,Cost,Quantity
South Africa,SKU44386,Air Max 90,2300,20
China,SKU90000,Jordan 1,3200,50
Vietnam,SKU63221,Blazer,45.99,3
`

// execute runs the root command against files in dir
func execute(t *testing.T, dir, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	full := append([]string{
		"--config", filepath.Join(dir, "shoeinv.yml"),
		"--file", filepath.Join(dir, "inventory.txt"),
		"--no-color",
	}, args...)
	rootCmd.SetArgs(full)
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	err := rootCmd.Execute()
	return out.String(), err
}

func setupInventory(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "inventory.txt"), []byte(sampleInventory), 0644); err != nil {
		t.Fatalf("Failed to write inventory: %v", err)
	}
	return dir
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "", "init")
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if !strings.Contains(out, "Initialized shoe inventory") {
		t.Errorf("Expected success message, got:\n%s", out)
	}

	cfg, err := config.LoadConfig(filepath.Join(dir, "shoeinv.yml"))
	if err != nil {
		t.Fatalf("Generated config should load: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Generated config should validate: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "inventory.txt"))
	if err != nil {
		t.Fatalf("Inventory file should exist: %v", err)
	}
	if string(data) != inventory.Header+"\n" {
		t.Errorf("Expected header only, got '%s'", string(data))
	}

	out, err = execute(t, dir, "", "init")
	if err != nil {
		t.Fatalf("Second init failed: %v", err)
	}
	if !strings.Contains(out, "already exists") {
		t.Errorf("Expected warning on second init, got:\n%s", out)
	}
}

func TestInitCommandRelativePaths(t *testing.T) {
	chdir(t, t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs([]string{"--config", "sub/shoeinv.yml", "--file", "sub/inv.txt", "--no-color", "init"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("init failed: %v\n%s", err, out.String())
	}

	if !utils.FileExists("sub/inv.txt") {
		t.Error("Expected sub/inv.txt to be created")
	}
	if utils.FileExists("sub/sub/inv.txt") {
		t.Error("Inventory path should not be joined onto the config directory twice")
	}

	cfg, err := config.LoadConfig("sub/shoeinv.yml")
	if err != nil {
		t.Fatalf("Generated config should load: %v", err)
	}
	if cfg.InventoryFile != filepath.Join("sub", "inv.txt") {
		t.Errorf("Expected inventory_file to resolve to 'sub/inv.txt', got '%s'", cfg.InventoryFile)
	}

	// without --file, the config alone must find the same file
	out.Reset()
	rootCmd.SetArgs([]string{"--config", "sub/shoeinv.yml", "--file=", "--no-color", "list"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("list through generated config failed: %v\n%s", err, out.String())
	}
	if !strings.Contains(out.String(), "No shoes in the list yet.") {
		t.Errorf("Expected empty listing, got:\n%s", out.String())
	}
}

func TestInitCommandDefaultInventoryNextToConfig(t *testing.T) {
	chdir(t, t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--config", "conf/shoeinv.yml", "--file=", "--no-color", "init"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("init failed: %v\n%s", err, out.String())
	}

	if !utils.FileExists(filepath.Join("conf", "inventory.txt")) {
		t.Error("Expected inventory.txt next to the config file")
	}
	cfg, err := config.LoadConfig("conf/shoeinv.yml")
	if err != nil {
		t.Fatalf("Generated config should load: %v", err)
	}
	if cfg.InventoryFile != filepath.Join("conf", "inventory.txt") {
		t.Errorf("Expected 'conf/inventory.txt', got '%s'", cfg.InventoryFile)
	}
}

func TestListCommand(t *testing.T) {
	dir := setupInventory(t)

	out, err := execute(t, dir, "", "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d:\n%s", len(lines), out)
	}
	if lines[0] != "South Africa | SKU44386 | Air Max 90 | Cost: 2300 | Quantity: 20" {
		t.Errorf("Unexpected first line '%s'", lines[0])
	}
}

func TestListMissingFile(t *testing.T) {
	out, err := execute(t, t.TempDir(), "", "list")
	if !errors.Is(err, inventory.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
	if !strings.Contains(out, "Run 'shoeinv init' first") {
		t.Errorf("Expected init hint, got:\n%s", out)
	}
}

func TestSearchCommand(t *testing.T) {
	dir := setupInventory(t)

	out, err := execute(t, dir, "", "search", "sku63221")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !strings.Contains(out, "Vietnam | SKU63221 | Blazer") {
		t.Errorf("Expected match, got:\n%s", out)
	}

	if _, err := execute(t, dir, "", "search", "missing"); err == nil {
		t.Error("search for unknown code should fail")
	}
}

func TestValueAndHighestCommands(t *testing.T) {
	dir := setupInventory(t)

	out, err := execute(t, dir, "", "value")
	if err != nil {
		t.Fatalf("value failed: %v", err)
	}
	if !strings.Contains(out, "Jordan 1 (SKU90000) - Total Value: 160000") {
		t.Errorf("Expected value line, got:\n%s", out)
	}

	out, err = execute(t, dir, "", "highest")
	if err != nil {
		t.Fatalf("highest failed: %v", err)
	}
	if !strings.Contains(out, "SKU90000") {
		t.Errorf("Expected SKU90000, got:\n%s", out)
	}
}

func TestAddCommand(t *testing.T) {
	dir := setupInventory(t)

	_, err := execute(t, dir, "", "add",
		"--country", "Peru", "--code", "SKU7", "--product", "Trail Boot",
		"--cost", "99.5", "--quantity", "4")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "inventory.txt"))
	if err != nil {
		t.Fatalf("Failed to read inventory: %v", err)
	}
	if !strings.HasSuffix(string(data), "Peru,SKU7,Trail Boot,99.5,4\n") {
		t.Errorf("Expected appended record, got:\n%s", string(data))
	}
	if strings.Count(string(data), "\n") != 5 {
		t.Errorf("Expected header plus 4 records, got:\n%s", string(data))
	}
}

func TestRestockCommand(t *testing.T) {
	dir := setupInventory(t)

	if _, err := execute(t, dir, "", "restock", "7"); err != nil {
		t.Fatalf("restock failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "inventory.txt"))
	if err != nil {
		t.Fatalf("Failed to read inventory: %v", err)
	}
	if !strings.Contains(string(data), "Vietnam,SKU63221,Blazer,45.99,10\n") {
		t.Errorf("Expected restocked quantity, got:\n%s", string(data))
	}

	if _, err := execute(t, dir, "", "restock", "many"); !errors.Is(err, inventory.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestMenuCommand(t *testing.T) {
	dir := setupInventory(t)

	out, err := execute(t, dir, "1\n7\n0\n", "menu")
	if err != nil {
		t.Fatalf("menu failed: %v", err)
	}
	if !strings.Contains(out, "Data loaded successfully! (3 shoes added)") {
		t.Errorf("Expected load message, got:\n%s", out)
	}
	if !strings.Contains(out, "Goodbye!") {
		t.Errorf("Expected goodbye, got:\n%s", out)
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
