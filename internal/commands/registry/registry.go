package registry

import (
	"fmt"
	"sort"

	"github.com/thomas-vilte/czcustom/internal/config"
	"github.com/thomas-vilte/czcustom/internal/i18n"
	"github.com/urfave/cli/v3"
)

type CommandFactory interface {
	CreateCommand(t *i18n.Translations, settings *config.Settings) *cli.Command
}

type Registry struct {
	factories map[string]CommandFactory
	settings  *config.Settings
	t         *i18n.Translations
}

func NewRegistry(settings *config.Settings, t *i18n.Translations) *Registry {
	return &Registry{
		factories: make(map[string]CommandFactory),
		settings:  settings,
		t:         t,
	}
}

func (r *Registry) Register(name string, factory CommandFactory) error {
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("%s", r.t.GetMessage("factory_already_registered", 0, map[string]interface{}{
			"FactoryName": name,
		}))
	}
	r.factories[name] = factory
	return nil
}

// Create builds the command registered under name.
func (r *Registry) Create(name string) (*cli.Command, bool) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, false
	}
	return factory.CreateCommand(r.t, r.settings), true
}

// CreateCommands builds every registered command, sorted by name.
func (r *Registry) CreateCommands() []*cli.Command {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)

	commands := make([]*cli.Command, 0, len(names))
	for _, name := range names {
		commands = append(commands, r.factories[name].CreateCommand(r.t, r.settings))
	}
	return commands
}
