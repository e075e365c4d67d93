package interpreter

// HelpCommands is the fixed help payload: one example per supported command.
var HelpCommands = []string{
	"schedule meeting tomorrow 15:00 for 60 minutes priority 2 name Weekly plan",
	"edit 3 to today 16:00",
	"delete 2",
	"pending",
	"conflicts",
	"help",
}
