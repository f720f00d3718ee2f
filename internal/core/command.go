package core

type CommandKind int

const (
	// CmdFreeform saves the whole message as a note.
	CmdFreeform CommandKind = iota
	CmdStart
	CmdList
	CmdClear
	CmdAdd
	CmdSearch
)

// Command is one parsed inbound instruction. Arg carries the note text for
// CmdAdd and CmdFreeform and the query for CmdSearch; it is empty otherwise.
type Command struct {
	Kind CommandKind
	Arg  string
}
