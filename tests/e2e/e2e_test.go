package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "stockpile-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "stockpile")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../..")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func run(t *testing.T, stdin string, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	cmd.Stdin = strings.NewReader(stdin)
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

func TestE2E_AddListExit(t *testing.T) {
	stdin := strings.Join([]string{
		"1", "A001", "Water 600ml", "20", "0,60",
		"5",
		"6",
	}, "\n") + "\n"

	out, code := run(t, stdin)
	assert.Equal(t, 0, code, "explicit exit always leaves with code 0")
	assert.Contains(t, out, "Added ID: A001")
	assert.Contains(t, out, "Water 600ml")
	assert.Contains(t, out, "Goodbye!")
}

func TestE2E_DomainErrorsNeverKillTheProcess(t *testing.T) {
	stdin := strings.Join([]string{
		"1", "A001", "Water 600ml", "20", "0.60",
		"1", "A001", "Other", "1", "1.0",
		"2", "Z999",
		"6",
	}, "\n") + "\n"

	out, code := run(t, stdin)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "already exists")
	assert.Contains(t, out, "No product with that ID.")
	assert.Contains(t, out, "Goodbye!")
}

func TestE2E_SeedCatalog(t *testing.T) {
	seed := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(seed, []byte(`
products:
  - id: A001
    name: Water 600ml
    quantity: 20
    price: 0.60
`), 0644))

	out, code := run(t, "5\n6\n", "--seed", seed)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Seeded 1 product(s)")
	assert.Contains(t, out, "Water 600ml")
}

func TestE2E_SeedCatalogFailureExitsNonZero(t *testing.T) {
	out, code := run(t, "", "--seed", "does-not-exist.yaml")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "seeding inventory")
}

func TestE2E_Version(t *testing.T) {
	out, code := run(t, "", "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "stockpile")
}
