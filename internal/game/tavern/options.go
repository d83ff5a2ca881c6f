package tavern

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadOptions reads a JSON adventure file into options ready for AddOption.
func LoadOptions(path string) ([]Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var opts []Option
	if err := json.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	for i, opt := range opts {
		if opt.ID == "" {
			return nil, fmt.Errorf("adventure %d in %s has no id", i, path)
		}
		if opt.Cost < 0 {
			return nil, fmt.Errorf("adventure %q has negative cost %d", opt.ID, opt.Cost)
		}
	}
	return opts, nil
}
