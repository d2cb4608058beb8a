package config

import (
	"fmt"
	"os"

	"github.com/alexanderramin/bossboard/internal/domain"
	"gopkg.in/yaml.v3"
)

// bossFile is the YAML layout of a boss list:
//
//	bosses:
//	  - name: แทโอ
//	    color: "#ffcccc"
type bossFile struct {
	Bosses []struct {
		Name  string `yaml:"name"`
		Color string `yaml:"color"`
	} `yaml:"bosses"`
}

// LoadBossFile reads an ordered boss list from a YAML file. Indexes follow
// the order in the file.
func LoadBossFile(path string) ([]domain.BossDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading boss file: %w", err)
	}
	return ParseBosses(data)
}

// ParseBosses decodes a YAML boss list.
func ParseBosses(data []byte) ([]domain.BossDefinition, error) {
	var f bossFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing boss file: %w", err)
	}
	if len(f.Bosses) == 0 {
		return nil, fmt.Errorf("boss file lists no bosses")
	}
	pairs := make([][2]string, len(f.Bosses))
	for i, b := range f.Bosses {
		pairs[i] = [2]string{b.Name, b.Color}
	}
	return domain.NewBossList(pairs...), nil
}
