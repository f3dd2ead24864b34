package permission

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/brandvault/brandvault/internal/domain/permission"
)

type policyFile struct {
	Policies []policyEntry `yaml:"policies"`
}

type policyEntry struct {
	Role     string   `yaml:"role"`
	Resource string   `yaml:"resource"`
	Actions  []string `yaml:"actions"`
}

// DefaultRules is the built-in policy used when no policy file is configured.
func DefaultRules() []permission.Rule {
	return []permission.Rule{
		{Role: "MASTER", Resource: permission.ResourceTeam, Action: permission.ActionRead},
		{Role: "MASTER", Resource: permission.ResourceTeam, Action: permission.ActionManage},
		{Role: "MASTER", Resource: permission.ResourceNote, Action: permission.ActionModerate},
		{Role: "USER", Resource: permission.ResourceTeam, Action: permission.ActionRead},
	}
}

// LoadRules reads a YAML policy file. An empty path yields DefaultRules.
func LoadRules(path string) ([]permission.Rule, error) {
	if path == "" {
		return DefaultRules(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy file %s: %w", path, err)
	}
	return ParseRules(data)
}

func ParseRules(data []byte) ([]permission.Rule, error) {
	var file policyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse policy file: %w", err)
	}

	var rules []permission.Rule
	for i, entry := range file.Policies {
		if entry.Role == "" || entry.Resource == "" || len(entry.Actions) == 0 {
			return nil, fmt.Errorf("policy %d: role, resource and actions are required", i)
		}
		for _, action := range entry.Actions {
			rules = append(rules, permission.Rule{
				Role:     entry.Role,
				Resource: permission.Resource(entry.Resource),
				Action:   permission.Action(action),
			})
		}
	}
	return rules, nil
}
