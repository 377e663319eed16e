package command

import (
	"errors"
	"moviemagnet/internal/core/domain"
	"moviemagnet/internal/core/port"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
)

type Registry struct {
	commands map[domain.CommandKind]port.Command
}

func (r *Registry) Register(handler port.Command) {
	if r.commands == nil {
		r.commands = make(map[domain.CommandKind]port.Command)
	}

	log.Info().Str("handler", string(handler.GetCommand())).Msg("adding command handler to registry")
	r.commands[handler.GetCommand()] = handler
}

func (r *Registry) Get(kind domain.CommandKind) (port.Command, error) {
	log.Debug().Str("command", string(kind)).Msg("fetching command handler from registry")

	if r.commands == nil {
		err := errors.New("can't fetch command, registry not initialized")
		return nil, err
	}

	handler, ok := r.commands[kind]
	if !ok {
		return nil, errors.New("command not found")
	}

	return handler, nil
}

func (r *Registry) ListCommands() []domain.CommandKind {
	keys := make([]domain.CommandKind, len(r.commands))

	i := 0
	for k := range r.commands {
		keys[i] = k
		i++
	}

	return keys
}

// Parse classifies message text into a Command. The second return value is false for text that is not one of
// the known commands, including /genre without a genre.
func Parse(text string) (domain.Command, bool) {
	name, args := splitCommand(text)

	switch domain.CommandKind(name) {
	case domain.CommandStart, domain.CommandAbout, domain.CommandHelp,
		domain.CommandRandomMovie, domain.CommandDisplayGenres:
		return domain.Command{Kind: domain.CommandKind(name)}, true
	case domain.CommandGenre:
		if args == "" {
			return domain.Command{}, false
		}
		return domain.Command{Kind: domain.CommandGenre, Arg: strings.ToLower(args)}, true
	default:
		return domain.Command{}, false
	}
}

// ParseCommand returns the lowercased command word without a trailing @botname.
func ParseCommand(text string) string {
	name, _ := splitCommand(text)
	return name
}

// ParseCommandArgs returns everything after the command word, trimmed.
func ParseCommandArgs(text string) string {
	_, args := splitCommand(text)
	return args
}

func splitCommand(text string) (string, string) {
	text = strings.TrimSpace(text)

	name, args := text, ""
	if i := strings.IndexFunc(text, unicode.IsSpace); i >= 0 {
		name, args = text[:i], strings.TrimSpace(text[i:])
	}

	name, _, _ = strings.Cut(name, "@")

	return strings.ToLower(name), args
}
