package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/ottocraft/internal/config"
)

// runCLI runs the CLI with logging off and no environment configuration.
func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	for _, key := range []string{config.EnvBook, config.EnvLogLevel, config.EnvLogFile, config.EnvSeed} {
		t.Setenv(key, "")
	}
	var out, errOut bytes.Buffer
	args = append([]string{"--quiet", "--log-file", config.StderrLog}, args...)
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

const nailBook = `
[[recipe]]
name = "smelt-iron"
inputs  = [{ material = "iron ore", quantity = 2 }]
outputs = [{ material = "iron bar", quantity = 1 }]

[[recipe]]
name = "forge-nail"
inputs  = [{ material = "iron bar", quantity = 1 }]
outputs = [{ material = "nail", quantity = 8 }]

[[plan]]
id = "nailer"
name = "Nailer"
steps = ["smelt-iron", "forge-nail"]

[[plan]]
id = "starved"
name = "Starved"
steps = ["smelt-iron"]
[plan.stock]
"iron ore" = 1
`

func writeBook(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nails.toml")
	require.NoError(t, os.WriteFile(path, []byte(nailBook), 0o644))
	return path
}

func TestRootHelp(t *testing.T) {
	code, stdout, _ := runCLI(t)
	require.Equal(t, 0, code)
	for _, sub := range []string{"plans", "show", "simulate", "craft", "play"} {
		assert.Contains(t, stdout, sub)
	}
}

func TestUnknownCommand(t *testing.T) {
	code, _, stderr := runCLI(t, "smelt")
	require.Equal(t, 1, code)
	assert.Contains(t, stderr, "unknown command")
}

func TestPlansBuiltin(t *testing.T) {
	code, stdout, stderr := runCLI(t, "plans")
	require.Equal(t, 0, code, stderr)
	for _, id := range []string{"apothecary", "lumberyard", "swordsmith"} {
		assert.Contains(t, stdout, id)
	}
	assert.Contains(t, stdout, " 6 steps  Swordsmith")
}

func TestPlansSearch(t *testing.T) {
	code, stdout, _ := runCLI(t, "plans", "--search", "alchemy")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "apothecary")
	assert.NotContains(t, stdout, "swordsmith")

	_, stdout, _ = runCLI(t, "plans", "--search", "zeppelin")
	assert.Contains(t, stdout, "No plans found.")
}

func TestPlansFromBook(t *testing.T) {
	code, stdout, stderr := runCLI(t, "--book", writeBook(t), "plans")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "nailer")
	assert.NotContains(t, stdout, "swordsmith", "expected only the book's plans")
}

func TestBadBook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[plan]]\nid = \"p\"\nsteps = [\"ghost\"]\n"), 0o644))

	code, _, stderr := runCLI(t, "--book", path, "plans")
	require.Equal(t, 1, code)
	assert.Contains(t, stderr, "ghost", "the unknown recipe should be named")
}

func TestShow(t *testing.T) {
	code, stdout, stderr := runCLI(t, "show", "lumberyard")
	require.Equal(t, 0, code, stderr)
	want := "Lumberyard (lumberyard)\n" +
		"Turn logs into planks and handles.\n" +
		"Tags: carpentry\n" +
		"Starting stock:\n1 log\n" +
		"Recipe 1:\n1 log\n4 plank\n1 sawdust\n" +
		"Recipe 2:\n2 plank\n1 handle\n" +
		"Recipe 3:\n2 plank\n1 handle\n"
	assert.Equal(t, want, stdout)

	code, _, stderr = runCLI(t, "show", "nonexistent")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "nonexistent")
}

func TestSimulate(t *testing.T) {
	code, stdout, stderr := runCLI(t, "--seed", "7", "simulate", "apothecary", "--rounds", "2")
	require.Equal(t, 0, code, stderr)
	for _, want := range []string{
		"Round 1 of Apothecary\n",
		"Round 2 of Apothecary\n",
		"Step 1/2: The current recipe is:\n3 herb\n",
		"Step 2/2: ",
	} {
		assert.Contains(t, stdout, want)
	}
	assert.NotContains(t, stdout, "Stockpile:", "apothecary has no stock")

	_, again, _ := runCLI(t, "--seed", "7", "simulate", "apothecary", "--rounds", "2")
	assert.Equal(t, stdout, again, "the same seed should replay the same simulation")
}

func TestSimulateStalls(t *testing.T) {
	code, stdout, stderr := runCLI(t, "--book", writeBook(t), "simulate", "starved")
	require.Equal(t, 1, code)
	assert.Contains(t, stderr, "stalled")
	assert.Contains(t, stdout, "Stockpile:\n1 iron ore\n", "stdout should show the untouched stock")
}

func TestSimulateRejectsZeroRounds(t *testing.T) {
	code, _, stderr := runCLI(t, "simulate", "apothecary", "--rounds", "0")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "--rounds")
}

func TestCraft(t *testing.T) {
	code, stdout, stderr := runCLI(t, "--seed", "1", "craft", "smelt-iron", "6")
	require.Equal(t, 0, code, stderr)
	assert.Regexp(t, `^\d+ iron bar\n$`, stdout)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"not a multiple", []string{"craft", "smelt-iron", "5"}, "not a multiple"},
		{"not a number", []string{"craft", "smelt-iron", "lots"}, "whole number"},
		{"several inputs", []string{"craft", "forge-blade", "2"}, "exactly one input"},
		{"unknown recipe", []string{"craft", "smelt-gold", "2"}, "smelt-gold"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, tt.args...)
			require.Equal(t, 1, code)
			assert.Contains(t, stderr, tt.want)
		})
	}
}

func TestEnvSeedMatchesFlag(t *testing.T) {
	_, fromFlag, _ := runCLI(t, "--seed", "11", "simulate", "lumberyard")

	var out, errOut bytes.Buffer
	t.Setenv(config.EnvSeed, "11")
	t.Setenv(config.EnvLogLevel, "off")
	run([]string{"simulate", "lumberyard"}, &out, &errOut)
	assert.Equal(t, fromFlag, out.String(), "OTTOCRAFT_SEED should seed like --seed")
}
