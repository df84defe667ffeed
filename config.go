package kui

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseMapDirectives builds a map set from a block of mapping
// directives, one per line:
//
//	map <trigger> <replacement>
//	unmap <trigger>
//
// Blank lines and lines starting with # are skipped. Triggers and
// replacements use the textual key syntax and therefore contain no
// whitespace.
func ParseMapDirectives(data string) (*MapSet, error) {
	ms := NewMapSet()
	for i, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "map":
			if len(fields) != 3 {
				return nil, fmt.Errorf("line %d: map wants a trigger and a replacement", i+1)
			}
			if err := ms.Register(fields[1], fields[2]); err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
		case "unmap":
			if len(fields) != 2 {
				return nil, fmt.Errorf("line %d: unmap wants a trigger", i+1)
			}
			if err := ms.Deregister(fields[1]); err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
		default:
			return nil, fmt.Errorf("line %d: unknown directive %q", i+1, fields[0])
		}
	}
	return ms, nil
}

type yamlMapping struct {
	Map string `yaml:"map"`
	To  string `yaml:"to"`
}

// LoadMapSetYAML builds a map set from a YAML document holding a list
// of mappings:
//
//	- map: jj
//	  to: <Esc>
//	- map: <C-d>
//	  to: quit<CR>
func LoadMapSetYAML(r io.Reader) (*MapSet, error) {
	var entries []yamlMapping
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&entries); err != nil {
		return nil, fmt.Errorf("decoding mappings: %w", err)
	}
	ms := NewMapSet()
	for i, e := range entries {
		if err := ms.Register(e.Map, e.To); err != nil {
			return nil, fmt.Errorf("mapping %d: %w", i+1, err)
		}
	}
	return ms, nil
}
