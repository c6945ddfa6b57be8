package prefabs

import (
	"embed"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Dir is where a working tree keeps editable prefabs. Files found there
// shadow the embedded copies, so tuning and rule edits apply without a
// rebuild (and hot reload under -debug).
const Dir = "prefabs"

//go:embed *.yaml scripts/*.tengo
var embedded embed.FS

// Load returns a YAML spec such as "tuning.yaml" or "prefabs/themes.yaml".
func Load(name string) ([]byte, error) {
	return read(specKey(name))
}

// LoadScript returns a Fuzzle rule script. "wall_shift",
// "scripts/wall_shift.tengo" and "prefabs/scripts/wall_shift.tengo" all
// name the same file.
func LoadScript(name string) ([]byte, error) {
	return read(scriptKey(name))
}

func read(key string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(key))); err == nil {
		return data, nil
	}
	return embedded.ReadFile(key)
}

// specKey maps a spec name to its slash-separated key inside Dir.
func specKey(name string) string {
	key := filepath.ToSlash(name)
	key, _ = strings.CutPrefix(key, Dir+"/")
	return key
}

// scriptKey maps a rule name to "scripts/<name>.tengo".
func scriptKey(name string) string {
	base := strings.TrimSuffix(path.Base(filepath.ToSlash(name)), ".tengo")
	return "scripts/" + base + ".tengo"
}
