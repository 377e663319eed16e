package domain

// CommandKind identifies one of the commands the bot understands.
type CommandKind string

const (
	CommandNone          CommandKind = ""
	CommandStart         CommandKind = "/start"
	CommandAbout         CommandKind = "/about"
	CommandHelp          CommandKind = "/help"
	CommandRandomMovie   CommandKind = "/randommovie"
	CommandDisplayGenres CommandKind = "/displaygenres"
	CommandGenre         CommandKind = "/genre"
)

// Command is a classified inbound message. Arg is only set for CommandGenre
// and holds the lowercased genre.
type Command struct {
	Kind CommandKind
	Arg  string
}
