package locale

import (
	"embed"
	"fmt"
	"path"

	"gopkg.in/yaml.v3"
)

//go:embed packs/*.yaml
var builtinFS embed.FS

func init() {
	entries, err := builtinFS.ReadDir("packs")
	if err != nil {
		panic(fmt.Sprintf("locale: cannot read built-in packs: %v", err))
	}
	for _, e := range entries {
		data, err := builtinFS.ReadFile(path.Join("packs", e.Name()))
		if err != nil {
			panic(fmt.Sprintf("locale: cannot read %s: %v", e.Name(), err))
		}
		p, err := Parse(data)
		if err != nil {
			panic(fmt.Sprintf("locale: %s: %v", e.Name(), err))
		}
		Register(p)
	}
}

// Parse decodes a YAML language pack.
func Parse(data []byte) (Pack, error) {
	var p Pack
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Pack{}, err
	}
	if p.Code == "" {
		return Pack{}, fmt.Errorf("pack has no code")
	}
	return p, nil
}
