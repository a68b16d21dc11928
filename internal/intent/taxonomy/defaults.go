package taxonomy

import (
	_ "embed"
	"errors"
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"

	"intent-engine/internal/intent"
	"intent-engine/pkg/textnorm"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type defaultsDoc struct {
	Greetings []string            `yaml:"greetings"`
	Coarse    map[string][]string `yaml:"coarse"`
	Tasks     []taskDoc           `yaml:"tasks"`
}

type taskDoc struct {
	Task    string      `yaml:"task"`
	Intents []intentDoc `yaml:"intents"`
}

type intentDoc struct {
	Intent      string   `yaml:"intent"`
	Description string   `yaml:"description"`
	Pattern     string   `yaml:"pattern"`
	Parameters  []string `yaml:"parameters"`
	Keywords    []string `yaml:"keywords"`
}

// Defaults is the immutable built-in taxonomy.
type Defaults struct {
	Greetings []string
	Coarse    []CoarseEntry
	Tasks     []TaskDefaults
}

// TaskDefaults holds the built-in intents of one task in declaration order.
type TaskDefaults struct {
	Task    intent.TaskType
	Intents []IntentDefaults
}

// IntentDefaults is one built-in intent definition.
type IntentDefaults struct {
	Pair        intent.Pair
	Description string
	Pattern     *regexp.Regexp
	Parameters  []string
	Keywords    []string
}

// CoarseEntry is one row of the single-level task keyword table.
type CoarseEntry struct {
	Task     intent.TaskType
	Keywords []string
}

// LoadDefaults parses the embedded defaults.
func LoadDefaults() (*Defaults, error) {
	return ParseDefaults(defaultsYAML)
}

// ParseDefaults parses a defaults document. Every task must be a known
// TaskType and every pattern must compile.
func ParseDefaults(data []byte) (*Defaults, error) {
	var doc defaultsDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("taxonomy: parse defaults: %w", err)
	}
	if len(doc.Tasks) == 0 {
		return nil, errors.New("taxonomy: defaults declare no tasks")
	}

	d := &Defaults{Greetings: normalizeAll(doc.Greetings)}

	seen := make(map[intent.Pair]struct{})
	for _, td := range doc.Tasks {
		task := intent.TaskType(td.Task)
		if !task.Valid() {
			return nil, fmt.Errorf("taxonomy: unknown task type %q", td.Task)
		}
		tdef := TaskDefaults{Task: task}
		for _, id := range td.Intents {
			pair := intent.Pair{Task: task, Intent: intent.IntentType(id.Intent)}
			if _, dup := seen[pair]; dup {
				return nil, fmt.Errorf("taxonomy: duplicate intent %s", pair)
			}
			seen[pair] = struct{}{}

			idef := IntentDefaults{
				Pair:        pair,
				Description: id.Description,
				Parameters:  append([]string(nil), id.Parameters...),
				Keywords:    dedupe(normalizeAll(id.Keywords)),
			}
			if id.Pattern != "" {
				re, err := regexp.Compile(id.Pattern)
				if err != nil {
					return nil, fmt.Errorf("taxonomy: pattern of %s: %w", pair, err)
				}
				idef.Pattern = re
			}
			tdef.Intents = append(tdef.Intents, idef)
		}
		d.Tasks = append(d.Tasks, tdef)
	}

	// Coarse rows follow the canonical task order so ties resolve the same way
	// on every run.
	for _, task := range intent.TaskTypes {
		kws, ok := doc.Coarse[string(task)]
		if !ok {
			continue
		}
		d.Coarse = append(d.Coarse, CoarseEntry{Task: task, Keywords: dedupe(normalizeAll(kws))})
	}
	for name := range doc.Coarse {
		if !intent.TaskType(name).Valid() {
			return nil, fmt.Errorf("taxonomy: unknown coarse task type %q", name)
		}
	}

	return d, nil
}

func normalizeAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if n := textnorm.Normalize(s); n != "" {
			out = append(out, n)
		}
	}
	return out
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
