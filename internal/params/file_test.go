package params

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeParamsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "params.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write params file: %v", err)
	}
	return path
}

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoadFile(t *testing.T) {
	path := writeParamsFile(t, `
refseq: ref.fasta
min_qual: 10
secondary: true
min_consensus_freq: 1
profile: docker
`)

	var buf bytes.Buffer
	set := NewSet()
	if err := LoadFile(path, set, testLogger(&buf)); err != nil {
		t.Fatalf("load: %v", err)
	}

	if v, _ := set.Get("refseq"); v != "ref.fasta" {
		t.Errorf("refseq = %v, want ref.fasta", v)
	}
	if v, _ := set.Get("min_qual"); v != 10 {
		t.Errorf("min_qual = %v (%T), want 10", v, v)
	}
	if v, _ := set.Get("secondary"); v != true {
		t.Errorf("secondary = %v, want true", v)
	}
	// YAML integer coerced to float for a float parameter.
	if v, _ := set.Get("min_consensus_freq"); v != 1.0 {
		t.Errorf("min_consensus_freq = %v (%T), want 1.0", v, v)
	}
	// Bare string coerced to a one-element list.
	if v, _ := set.Get("profile"); !reflect.DeepEqual(v, []string{"docker"}) {
		t.Errorf("profile = %v, want [docker]", v)
	}
}

func TestLoadFile_FlagsWin(t *testing.T) {
	path := writeParamsFile(t, "model: hac\nkit: SQK-NBD114-24\n")

	var buf bytes.Buffer
	set := NewSet()
	if err := set.Put("model", "sup"); err != nil {
		t.Fatalf("put model: %v", err)
	}
	if err := LoadFile(path, set, testLogger(&buf)); err != nil {
		t.Fatalf("load: %v", err)
	}

	if v, _ := set.Get("model"); v != "sup" {
		t.Errorf("model = %v, want flag value sup", v)
	}
	if v, _ := set.Get("kit"); v != "SQK-NBD114-24" {
		t.Errorf("kit = %v, want file value", v)
	}
}

func TestLoadFile_UnknownKeyWarns(t *testing.T) {
	path := writeParamsFile(t, "refseq: ref.fasta\nread_depth: 5\n")

	var buf bytes.Buffer
	set := NewSet()
	if err := LoadFile(path, set, testLogger(&buf)); err != nil {
		t.Fatalf("load: %v", err)
	}

	if set.Has("read_depth") {
		t.Error("unknown key should not be stored")
	}
	if !strings.Contains(buf.String(), "read_depth") {
		t.Errorf("expected warning naming read_depth, got: %s", buf.String())
	}
}

func TestLoadFile_InvalidProfile(t *testing.T) {
	path := writeParamsFile(t, "profile:\n  - podman\n")

	var buf bytes.Buffer
	err := LoadFile(path, NewSet(), testLogger(&buf))
	if err == nil {
		t.Fatal("expected error for invalid profile choice")
	}
	if !strings.Contains(err.Error(), "must be one of") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadFile_KindMismatch(t *testing.T) {
	path := writeParamsFile(t, "min_qual: high\n")

	var buf bytes.Buffer
	err := LoadFile(path, NewSet(), testLogger(&buf))
	if err == nil {
		t.Fatal("expected error for non-integer min_qual")
	}
}

func TestLoadFile_Missing(t *testing.T) {
	var buf bytes.Buffer
	err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"), NewSet(), testLogger(&buf))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
