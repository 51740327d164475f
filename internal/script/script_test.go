package script

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeScript(t *testing.T, name, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func TestLoadScript(t *testing.T) {
	src := `
module.exports = {
  name: "upper",
  transform: function(chunk) { return chunk.toUpperCase(); }
};
`
	path := writeScript(t, "upper.js", src)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if s.Name != "upper" {
		t.Fatalf("expected name upper, got %s", s.Name)
	}
	if s.FilePath != path {
		t.Fatalf("unexpected path: %s", s.FilePath)
	}
	if !strings.Contains(s.Source, "module.exports") {
		t.Fatalf("expected source to contain module exports, got %q", s.Source)
	}
}

func TestLoadScriptDefaultName(t *testing.T) {
	path := writeScript(t, "clean.js", `module.exports = { transform: function(c) { return c; } };`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if s.Name != "clean.js" {
		t.Fatalf("expected file name fallback, got %s", s.Name)
	}
}

func TestLoadScriptErrors(t *testing.T) {
	path := writeScript(t, "broken.js", `module.exports = { name: "broken" };`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for missing transform")
	}

	path = writeScript(t, "bad.js", `module.exports = { transform: "not a function" };`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for non-function transform")
	}

	path = writeScript(t, "syntax.js", `module.exports = {`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for syntax error")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.js")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestTransformReplace(t *testing.T) {
	path := writeScript(t, "upper.js", `module.exports = {
  transform: function(chunk) { return chunk.toUpperCase(); }
};`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	out, keep, err := s.Transform([]byte("hello\n"))
	if err != nil {
		t.Fatalf("Transform returned error: %v", err)
	}
	if !keep || string(out) != "HELLO\n" {
		t.Fatalf("got %q keep=%v", out, keep)
	}
}

func TestTransformDrop(t *testing.T) {
	path := writeScript(t, "filter.js", `module.exports = {
  transform: function(chunk) {
    if (chunk.indexOf("secret") !== -1) { return null; }
    if (chunk.indexOf("quiet") !== -1) { return; }
    return chunk;
  }
};`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if _, keep, err := s.Transform([]byte("a secret line\n")); err != nil || keep {
		t.Fatalf("null return: keep=%v err=%v", keep, err)
	}
	if _, keep, err := s.Transform([]byte("quiet please\n")); err != nil || keep {
		t.Fatalf("undefined return: keep=%v err=%v", keep, err)
	}
	out, keep, err := s.Transform([]byte("plain\n"))
	if err != nil || !keep || string(out) != "plain\n" {
		t.Fatalf("passthrough: %q keep=%v err=%v", out, keep, err)
	}
}

func TestTransformKeepsState(t *testing.T) {
	path := writeScript(t, "count.js", `
var n = 0;
module.exports = {
  transform: function(chunk) {
    n++;
    return n + ":" + chunk;
  }
};`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	first, _, err := s.Transform([]byte("a"))
	if err != nil {
		t.Fatalf("Transform returned error: %v", err)
	}
	second, _, err := s.Transform([]byte("b"))
	if err != nil {
		t.Fatalf("Transform returned error: %v", err)
	}
	if string(first) != "1:a" || string(second) != "2:b" {
		t.Fatalf("state not kept: %q then %q", first, second)
	}
}

func TestTransformErrors(t *testing.T) {
	path := writeScript(t, "throws.js", `module.exports = {
  name: "throws",
  transform: function(chunk) { throw new Error("boom"); }
};`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if _, _, err := s.Transform([]byte("x")); err == nil || !strings.Contains(err.Error(), "throws") {
		t.Fatalf("expected script error, got %v", err)
	}

	path = writeScript(t, "number.js", `module.exports = {
  transform: function(chunk) { return 42; }
};`)
	s, err = Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if _, _, err := s.Transform([]byte("x")); err == nil || !strings.Contains(err.Error(), "string or null") {
		t.Fatalf("expected type error, got %v", err)
	}
}
