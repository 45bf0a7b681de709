package flags

// CommandFlags modify how a command is executed.
type CommandFlags uint16

const (
	CmdWantSubshell     CommandFlags = 0x01 // ( command )
	CmdForceSubshell    CommandFlags = 0x02 // shell needs to force a subshell
	CmdInvertReturn     CommandFlags = 0x04
	CmdIgnoreReturn     CommandFlags = 0x08 // ignore the exit value for set -e
	CmdNoFunctions      CommandFlags = 0x10 // ignore functions during lookup
	CmdInhibitExpansion CommandFlags = 0x20
	CmdNoFork           CommandFlags = 0x40 // just call execve
	CmdTimePipeline     CommandFlags = 0x80
	CmdTimePosix        CommandFlags = 0x100 // time -p
	CmdAmpersand        CommandFlags = 0x200 // command &
	CmdStdinRedir       CommandFlags = 0x400 // async command needs implicit </dev/null
	CmdCommandBuiltin   CommandFlags = 0x800 // run by the command builtin
	CmdCoprocSubshell   CommandFlags = 0x1000
	CmdLastPipe         CommandFlags = 0x2000
	CmdStdPath          CommandFlags = 0x4000 // standard path for command lookup
)

var commandFlagNames = []named[CommandFlags]{
	{CmdWantSubshell, "WantSubshell"},
	{CmdForceSubshell, "ForceSubshell"},
	{CmdInvertReturn, "InvertReturn"},
	{CmdIgnoreReturn, "IgnoreReturn"},
	{CmdNoFunctions, "NoFunctions"},
	{CmdInhibitExpansion, "InhibitExpansion"},
	{CmdNoFork, "NoFork"},
	{CmdTimePipeline, "TimePipeline"},
	{CmdTimePosix, "TimePosix"},
	{CmdAmpersand, "Ampersand"},
	{CmdStdinRedir, "StdinRedir"},
	{CmdCommandBuiltin, "CommandBuiltin"},
	{CmdCoprocSubshell, "CoprocSubshell"},
	{CmdLastPipe, "LastPipe"},
	{CmdStdPath, "StdPath"},
}

func (f CommandFlags) Has(g CommandFlags) bool               { return f&g == g }
func (f CommandFlags) Union(g CommandFlags) CommandFlags     { return f | g }
func (f CommandFlags) Intersect(g CommandFlags) CommandFlags { return f & g }
func (f CommandFlags) Without(g CommandFlags) CommandFlags   { return f &^ g }
func (f CommandFlags) String() string                        { return format(f, commandFlagNames) }

func ParseCommandFlags(s string) (CommandFlags, error) {
	return parse("CommandFlags", s, commandFlagNames)
}

func CommandFlagsFromUint(raw uint64) (CommandFlags, error) {
	return fromUint("CommandFlags", raw, commandFlagNames)
}

// SubshellFlags record why a subshell was created. More than one cause may
// apply.
type SubshellFlags uint8

const (
	SubshellAsync     SubshellFlags = 0x01 // command &
	SubshellParen     SubshellFlags = 0x02 // ( ... )
	SubshellComSub    SubshellFlags = 0x04 // `command` or $(command)
	SubshellFork      SubshellFlags = 0x08 // executing a disk command
	SubshellPipe      SubshellFlags = 0x10
	SubshellProcSub   SubshellFlags = 0x20 // <(command) or >(command)
	SubshellCoproc    SubshellFlags = 0x40
	SubshellResetTrap SubshellFlags = 0x80 // reset trap strings on first call to trap
)

var subshellFlagNames = []named[SubshellFlags]{
	{SubshellAsync, "Async"},
	{SubshellParen, "Paren"},
	{SubshellComSub, "ComSub"},
	{SubshellFork, "Fork"},
	{SubshellPipe, "Pipe"},
	{SubshellProcSub, "ProcSub"},
	{SubshellCoproc, "Coproc"},
	{SubshellResetTrap, "ResetTrap"},
}

func (f SubshellFlags) Has(g SubshellFlags) bool                { return f&g == g }
func (f SubshellFlags) Union(g SubshellFlags) SubshellFlags     { return f | g }
func (f SubshellFlags) Intersect(g SubshellFlags) SubshellFlags { return f & g }
func (f SubshellFlags) Without(g SubshellFlags) SubshellFlags   { return f &^ g }
func (f SubshellFlags) String() string                          { return format(f, subshellFlagNames) }

func ParseSubshellFlags(s string) (SubshellFlags, error) {
	return parse("SubshellFlags", s, subshellFlagNames)
}

func SubshellFlagsFromUint(raw uint64) (SubshellFlags, error) {
	return fromUint("SubshellFlags", raw, subshellFlagNames)
}
