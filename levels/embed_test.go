package levels

import (
	"encoding/json"
	"testing"
)

func TestReadLevel(t *testing.T) {
	for _, name := range []string{"tutorial", "tutorial.json"} {
		data, err := ReadLevel(name)
		if err != nil {
			t.Fatalf("ReadLevel(%q): %v", name, err)
		}
		var lvl Level
		if err := json.Unmarshal(data, &lvl); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(lvl.Platforms) == 0 {
			t.Fatalf("expected platforms in %s", name)
		}
	}

	if _, err := ReadLevel("missing"); err == nil {
		t.Fatalf("expected error for missing level")
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) == 0 || names[0] != "tutorial" {
		t.Fatalf("unexpected names %v", names)
	}
}
