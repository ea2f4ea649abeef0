// Package command provides the command registry, parser, and built-in verb
// definitions for the adventure engine.
package command

// Categories for organizing commands.
const (
	CategoryWorld    = "world"
	CategoryMovement = "movement"
	CategorySystem   = "system"
)

// Handler identifiers mapping verbs to engine handlers.
const (
	HandlerExamine   = "examine"
	HandlerOpen      = "open"
	HandlerTake      = "take"
	HandlerUse       = "use"
	HandlerLook      = "look"
	HandlerMove      = "move"
	HandlerInventory = "inventory"
	HandlerCommands  = "commands"
	HandlerQuit      = "quit"
)

// Command defines a player-invocable verb.
type Command struct {
	// Name is the canonical verb, matched case-sensitively.
	Name string
	// Aliases are alternate names for this verb.
	Aliases []string
	// Help is the short help text shown by the commands verb.
	Help string
	// Category groups the verb (world, movement, system).
	Category string
	// Handler names the engine handler for this verb.
	Handler string
}

// BuiltinCommands returns all built-in verbs.
func BuiltinCommands() []Command {
	return []Command{
		// World verbs
		{Name: "examine", Aliases: []string{"ex"}, Help: "Examine an object in the room", Category: CategoryWorld, Handler: HandlerExamine},
		{Name: "open", Aliases: nil, Help: "Open a drawer or other container", Category: CategoryWorld, Handler: HandlerOpen},
		{Name: "take", Aliases: []string{"get"}, Help: "Pick up an item", Category: CategoryWorld, Handler: HandlerTake},
		{Name: "use", Aliases: nil, Help: "Use an item", Category: CategoryWorld, Handler: HandlerUse},
		{Name: "look", Aliases: []string{"l"}, Help: "Look around the current room", Category: CategoryWorld, Handler: HandlerLook},
		{Name: "inventory", Aliases: []string{"inv", "i"}, Help: "List carried items", Category: CategoryWorld, Handler: HandlerInventory},

		// Movement verbs
		{Name: "go", Aliases: nil, Help: "Go through an exit (go north)", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "north", Aliases: []string{"n"}, Help: "Go north", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "south", Aliases: []string{"s"}, Help: "Go south", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "east", Aliases: []string{"e"}, Help: "Go east", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "west", Aliases: []string{"w"}, Help: "Go west", Category: CategoryMovement, Handler: HandlerMove},

		// System verbs
		{Name: "commands", Aliases: []string{"help", "?"}, Help: "List available commands", Category: CategorySystem, Handler: HandlerCommands},
		{Name: "quit", Aliases: []string{"exit"}, Help: "End the session", Category: CategorySystem, Handler: HandlerQuit},
	}
}

// IsDirection reports whether the verb is a bare movement direction.
func IsDirection(name string) bool {
	switch name {
	case "north", "south", "east", "west":
		return true
	default:
		return false
	}
}
