package scenarios

import (
	"bufio"
	"encoding/json"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// StripJSONC loads a JSONC file (full-line // comments) and returns raw JSON bytes suitable for unmarshalling.
func StripJSONC(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []byte
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}
		// Inline // is kept: paths and URLs may contain it.
		out = append(out, []byte(line+"\n")...)
	}
	return out, scanner.Err()
}

// LoadFile reads a JSONC scenario list. Relative paths resolve against dataDir.
func LoadFile(path, dataDir string) ([]Scenario, error) {
	b, err := StripJSONC(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load scenarios %s", path)
	}
	var list []Scenario
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, errors.Wrapf(err, "parse scenarios %s", path)
	}
	if len(list) == 0 {
		return nil, errors.Errorf("no scenarios in %s", path)
	}
	seen := make(map[string]bool, len(list))
	for i := range list {
		if err := list[i].Validate(); err != nil {
			return nil, errors.Wrapf(err, "%s entry %d", path, i)
		}
		if seen[list[i].Name] {
			return nil, errors.Errorf("%s: duplicate scenario name %q", path, list[i].Name)
		}
		seen[list[i].Name] = true
		list[i] = list[i].resolve(dataDir)
	}
	return list, nil
}
