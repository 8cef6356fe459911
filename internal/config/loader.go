package config

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/thomas-vilte/czcustom/internal/errors"
	"github.com/thomas-vilte/czcustom/internal/logger"
)

// FileNames are the commit configuration files looked up, in priority order.
var FileNames = []string{".cz-config.toml", ".cz-config.yaml", ".cz-config.yml"}

type fileConfig struct {
	Types                []TypeOption                  `toml:"types" yaml:"types"`
	Scopes               []Scope                       `toml:"scopes" yaml:"scopes"`
	AllowCustomScopes    bool                          `toml:"allowCustomScopes" yaml:"allowCustomScopes"`
	AllowBreakingChanges []string                      `toml:"allowBreakingChanges" yaml:"allowBreakingChanges"`
	Messages             *Messages                     `toml:"messages" yaml:"messages"`
	Body                 map[string]map[string]Section `toml:"body" yaml:"body"`
	Issue                map[string]IssueTemplate      `toml:"issue" yaml:"issue"`
}

// Find walks up from dir and returns the first commit configuration file found.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.ErrConfigNotFound.WithError(err)
	}

	for {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.ErrConfigNotFound
		}
		dir = parent
	}
}

// Load reads the commit configuration at path and applies defaults.
func Load(ctx context.Context, path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ErrConfigRead.WithError(err).WithContext("path", path)
	}

	var raw Raw
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		raw, err = DecodeTOML(ctx, data)
	case ".yaml", ".yml":
		raw, err = DecodeYAML(data)
	default:
		return nil, errors.ErrConfigFormat.WithContext("path", path)
	}
	if err != nil {
		return nil, err
	}

	model, err := ApplyDefaults(raw)
	if err != nil {
		return nil, err
	}

	logger.Debug(ctx, "commit configuration loaded",
		"path", path,
		"types", len(model.Types),
		"templates", len(raw.Body))
	return model, nil
}

// DecodeTOML decodes a TOML commit configuration. Body sections keep the order
// in which they are declared in the document.
func DecodeTOML(ctx context.Context, data []byte) (Raw, error) {
	var fc fileConfig
	md, err := toml.Decode(string(data), &fc)
	if err != nil {
		return Raw{}, errors.ErrConfigParse.WithError(err)
	}

	for _, key := range md.Undecoded() {
		logger.Warn(ctx, "unknown commit configuration key", "key", key.String())
	}

	if !md.IsDefined("messages") {
		fc.Messages = nil
	} else if fc.Messages == nil {
		fc.Messages = &Messages{}
	}

	order := make(map[string][]string)
	for _, key := range md.Keys() {
		if len(key) < 3 || key[0] != "body" {
			continue
		}
		order[key[1]] = appendUnique(order[key[1]], key[2])
	}

	return buildRaw(fc, md.IsDefined("body"), order), nil
}

// DecodeYAML decodes a YAML commit configuration. Body sections keep the order
// of the mapping nodes.
func DecodeYAML(data []byte) (Raw, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Raw{}, errors.ErrConfigParse.WithError(err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Raw{}, errors.ErrConfigParse.WithError(err)
	}

	var root *yaml.Node
	if len(doc.Content) > 0 {
		root = doc.Content[0]
	}

	if !present(mappingValue(root, "messages")) {
		fc.Messages = nil
	} else if fc.Messages == nil {
		fc.Messages = &Messages{}
	}

	bodyNode := mappingValue(root, "body")
	order := make(map[string][]string)
	if bodyNode != nil && bodyNode.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(bodyNode.Content); i += 2 {
			typeValue := bodyNode.Content[i].Value
			sections := bodyNode.Content[i+1]
			if sections.Kind != yaml.MappingNode {
				continue
			}
			for j := 0; j+1 < len(sections.Content); j += 2 {
				order[typeValue] = appendUnique(order[typeValue], sections.Content[j].Value)
			}
		}
	}

	return buildRaw(fc, present(bodyNode), order), nil
}

func buildRaw(fc fileConfig, hasBody bool, order map[string][]string) Raw {
	raw := Raw{
		Types:                fc.Types,
		Scopes:               fc.Scopes,
		AllowCustomScopes:    fc.AllowCustomScopes,
		AllowBreakingChanges: fc.AllowBreakingChanges,
		Messages:             fc.Messages,
		Issue:                fc.Issue,
	}
	if !hasBody {
		return raw
	}

	raw.Body = make(map[string][]Section, len(fc.Body))
	for typeValue, sections := range fc.Body {
		keys := order[typeValue]

		var rest []string
		for key := range sections {
			if !contains(keys, key) {
				rest = append(rest, key)
			}
		}
		sort.Strings(rest)
		keys = append(append([]string{}, keys...), rest...)

		template := make([]Section, 0, len(keys))
		for _, key := range keys {
			s, ok := sections[key]
			if !ok {
				continue
			}
			s.Key = key
			template = append(template, s)
		}
		raw.Body[typeValue] = template
	}
	return raw
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// present reports whether a key was given a value. A bare `key:` is null and
// counts as missing.
func present(node *yaml.Node) bool {
	if node == nil {
		return false
	}
	return !(node.Kind == yaml.ScalarNode && node.Tag == "!!null")
}

func appendUnique(list []string, v string) []string {
	if contains(list, v) {
		return list
	}
	return append(list, v)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
