package converter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BatchFile lists expressions to convert in one run.
type BatchFile struct {
	Expressions []string `yaml:"expressions"`
}

func LoadBatchFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var batch BatchFile
	if err := yaml.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("parsing batch file %s: %w", path, err)
	}
	return batch.Expressions, nil
}
