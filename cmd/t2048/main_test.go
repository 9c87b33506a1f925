package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// run executes the CLI with an isolated home directory.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestListVariants(t *testing.T) {
	out, err := run(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, id := range []string{"2048", "2048_endless", "2048_level1", "2048_level10"} {
		if !strings.Contains(out, id) {
			t.Errorf("list output missing %q:\n%s", id, out)
		}
	}
}

func TestLevels(t *testing.T) {
	out, err := run(t, "levels")
	if err != nil {
		t.Fatalf("levels: %v", err)
	}
	if !strings.Contains(out, "Warm-up") || !strings.Contains(out, "8192") {
		t.Errorf("levels output:\n%s", out)
	}
}

func TestReplayDeterministic(t *testing.T) {
	args := []string{"replay", "--seed", "7", "--moves", "LLURDDLR", "--snapshot"}

	first, err := run(t, args...)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	second, _ := run(t, args...)

	if first != second {
		t.Errorf("replay output differs between runs:\n%s\n---\n%s", first, second)
	}
	for _, want := range []string{"seed 7", "1. left", "variant: \"2048\"", "cells: ["} {
		if !strings.Contains(first, want) {
			t.Errorf("replay output missing %q:\n%s", want, first)
		}
	}
}

func TestReplaySizeFromEnv(t *testing.T) {
	t.Setenv("T2048_SIZE", "3")

	out, err := run(t, "replay", "--moves", "l", "--snapshot")
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if !strings.Contains(out, "size: 3") {
		t.Errorf("env size not applied:\n%s", out)
	}

	// Flags win over the environment.
	out, err = run(t, "replay", "--moves", "l", "--snapshot", "--size", "5")
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if !strings.Contains(out, "size: 5") {
		t.Errorf("flag size not applied:\n%s", out)
	}
}

func TestReplayFromSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")
	snap := "variant: 2048_endless\nsize: 4\nscore: 10\nmoves: 3\ncells: [2, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0]\n"
	if err := os.WriteFile(path, []byte(snap), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "replay", "--seed", "3", "--moves", "L", "--from", path)
	if err != nil {
		t.Fatalf("replay --from: %v", err)
	}
	for _, want := range []string{"2048 (Endless)", "1. left +4 (score 14)", "score 14, moves 4"} {
		if !strings.Contains(out, want) {
			t.Errorf("replay output missing %q:\n%s", want, out)
		}
	}

	if _, err := run(t, "replay", "--moves", "L", "--from", path, "--variant", "2048"); err == nil {
		t.Error("snapshot for another variant should fail")
	}
	if _, err := run(t, "replay", "--moves", "L", "--from", filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing snapshot file should fail")
	}
}

func TestReplayErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad move", []string{"replay", "--moves", "LX"}},
		{"unknown variant", []string{"replay", "--moves", "L", "--variant", "tetris"}},
		{"missing moves", []string{"replay"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, tt.args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestInvalidConfigFlag(t *testing.T) {
	_, err := run(t, "list", "--size", "1")
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("--size 1 error = %v, want config.ErrInvalid", err)
	}

	if _, err := run(t, "list", "--log-level", "loud"); err == nil {
		t.Error("unknown log level should fail")
	}
}

func TestScores(t *testing.T) {
	db := filepath.Join(t.TempDir(), "scores.db")

	out, err := run(t, "scores", "2048", "--db", db)
	if err != nil {
		t.Fatalf("scores: %v", err)
	}
	if !strings.Contains(out, "No scores recorded yet.") {
		t.Errorf("empty scores output:\n%s", out)
	}

	store, err := storage.Open(db, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	store.SaveResult(storage.Result{GameID: "2048", Score: 1234, MaxTile: 128, Moves: 150, Status: "lost"})
	store.Close()

	out, err = run(t, "scores", "2048", "--db", db)
	if err != nil {
		t.Fatalf("scores: %v", err)
	}
	if !strings.Contains(out, "1234") || !strings.Contains(out, "Best: 1234") {
		t.Errorf("scores output:\n%s", out)
	}

	for i := range 12 {
		store, _ := storage.Open(db, nil)
		store.SaveResult(storage.Result{GameID: "2048", Score: 10 + i, Status: "lost"})
		store.Close()
	}
	out, _ = run(t, "scores", "2048", "--db", db)
	if strings.Count(out, "  lost  ") != 10 {
		t.Errorf("default listing should stop at 10 rows:\n%s", out)
	}
	out, err = run(t, "scores", "2048", "--db", db, "--all")
	if err != nil {
		t.Fatalf("scores --all: %v", err)
	}
	if strings.Count(out, "  lost  ") != 13 || !strings.Contains(out, "Games: 13") {
		t.Errorf("--all should list every game:\n%s", out)
	}
	if _, err := run(t, "scores", "--db", db, "--all"); err == nil {
		t.Error("--all without a variant should fail")
	}

	out, err = run(t, "scores", "2048", "--db", db, "--clear")
	if err != nil || !strings.Contains(out, "Cleared scores") {
		t.Fatalf("clear: %v\n%s", err, out)
	}
	out, _ = run(t, "scores", "2048", "--db", db)
	if !strings.Contains(out, "No scores recorded yet.") {
		t.Errorf("scores after clear:\n%s", out)
	}

	if _, err := run(t, "scores", "nope", "--db", db); err == nil {
		t.Error("unknown variant should fail")
	}
}
