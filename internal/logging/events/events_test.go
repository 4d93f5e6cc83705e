package events

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/flyout/internal/logging"
)

func readTrace(t *testing.T, fn func()) []map[string]interface{} {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trace.log")
	logging.Configure(path)
	logging.SetTraceEnabled(true)
	t.Cleanup(func() {
		logging.SetTraceEnabled(false)
		logging.Configure("")
	})
	fn()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open trace: %v", err)
	}
	defer f.Close()
	var out []map[string]interface{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]interface{}
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("decode %q: %v", scanner.Text(), err)
		}
		out = append(out, entry)
	}
	return out
}

func TestTracersEmitNamedEvents(t *testing.T) {
	entries := readTrace(t, func() {
		Nav.Toggle("a", 0, []string{"a"})
		Nav.Reject("b", 3, errors.New("not a descendant"))
		Nav.Reject("c", 1, nil)
		Outside.Fire("escape")
	})
	if len(entries) != 3 {
		t.Fatalf("expected nil error to be skipped, got %d entries", len(entries))
	}
	want := []string{"nav.toggle", "nav.reject", "outside.fire"}
	for i, name := range want {
		if entries[i]["event"] != name {
			t.Fatalf("entry %d: expected %s, got %v", i, name, entries[i]["event"])
		}
	}
	payload, _ := entries[1]["payload"].(map[string]interface{})
	if payload["error"] != "not a descendant" || payload["id"] != "b" {
		t.Fatalf("unexpected reject payload %v", payload)
	}
}
