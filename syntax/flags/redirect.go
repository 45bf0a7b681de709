package flags

// RedirectionFlags describe the runtime state of an active redirection.
type RedirectionFlags uint8

const (
	RedirActive         RedirectionFlags = 0x01
	RedirUndoable       RedirectionFlags = 0x02
	RedirCloseOnExecOn  RedirectionFlags = 0x04
	RedirInternal       RedirectionFlags = 0x08
	RedirUser           RedirectionFlags = 0x10
	RedirCloseOnExecOff RedirectionFlags = 0x20
	RedirSaveFd         RedirectionFlags = 0x40
	RedirVarAssign      RedirectionFlags = 0x80
)

var redirectionFlagNames = []named[RedirectionFlags]{
	{RedirActive, "Active"},
	{RedirUndoable, "Undoable"},
	{RedirCloseOnExecOn, "CloseOnExecOn"},
	{RedirInternal, "Internal"},
	{RedirUser, "User"},
	{RedirCloseOnExecOff, "CloseOnExecOff"},
	{RedirSaveFd, "SaveFd"},
	{RedirVarAssign, "VarAssign"},
}

func (f RedirectionFlags) Has(g RedirectionFlags) bool { return f&g == g }
func (f RedirectionFlags) Union(g RedirectionFlags) RedirectionFlags {
	return f | g
}
func (f RedirectionFlags) Intersect(g RedirectionFlags) RedirectionFlags {
	return f & g
}
func (f RedirectionFlags) Without(g RedirectionFlags) RedirectionFlags {
	return f &^ g
}
func (f RedirectionFlags) String() string { return format(f, redirectionFlagNames) }

func ParseRedirectionFlags(s string) (RedirectionFlags, error) {
	return parse("RedirectionFlags", s, redirectionFlagNames)
}

func RedirectionFlagsFromUint(raw uint64) (RedirectionFlags, error) {
	return fromUint("RedirectionFlags", raw, redirectionFlagNames)
}
