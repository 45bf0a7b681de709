package flags

// WordFlags are the lexical and expansion annotations carried by a word.
type WordFlags uint32

const (
	WordHasDollar     WordFlags = 0x000001 // dollar sign present
	WordQuoted        WordFlags = 0x000002 // some form of quote character is present
	WordAssignment    WordFlags = 0x000004 // variable assignment
	WordSplitSpace    WordFlags = 0x000008 // split on " " regardless of $IFS
	WordNoSplit       WordFlags = 0x000010 // no word splitting, $IFS is empty
	WordNoGlob        WordFlags = 0x000020
	WordNoSplit2      WordFlags = 0x000040 // no splitting except for $@, because of context
	WordTildeExp      WordFlags = 0x000080 // tilde expand this assignment word
	WordDollarAt      WordFlags = 0x000100
	WordDollarStar    WordFlags = 0x000200
	WordNoComSub      WordFlags = 0x000400
	WordAssignRhs     WordFlags = 0x000800 // rhs of an assignment statement
	WordNoTilde       WordFlags = 0x001000
	WordITilde        WordFlags = 0x002000 // internal to word expansion
	WordNoExpand      WordFlags = 0x004000 // quote removal only
	WordCompAssign    WordFlags = 0x008000 // compound assignment
	WordAssnBltin     WordFlags = 0x010000 // builtin that takes assignments
	WordAssignArg     WordFlags = 0x020000 // assignment argument to a command
	WordHasQuotedNull WordFlags = 0x040000
	WordDQuote        WordFlags = 0x080000 // treat as if double quoted
	WordNoProcSub     WordFlags = 0x100000
	WordHasCtlEsc     WordFlags = 0x200000 // contains literal CTLESC characters
	WordAssignAssoc   WordFlags = 0x400000 // looks like an assoc array assignment
	WordAssignArray   WordFlags = 0x800000 // looks like an indexed array assignment
	WordArrayInd      WordFlags = 0x1000000
	WordAssnGlobal    WordFlags = 0x2000000 // global assignment to declare
	WordNoBrace       WordFlags = 0x4000000
	WordComplete      WordFlags = 0x8000000 // expanded for completion
)

var wordFlagNames = []named[WordFlags]{
	{WordHasDollar, "HasDollar"},
	{WordQuoted, "Quoted"},
	{WordAssignment, "Assignment"},
	{WordSplitSpace, "SplitSpace"},
	{WordNoSplit, "NoSplit"},
	{WordNoGlob, "NoGlob"},
	{WordNoSplit2, "NoSplit2"},
	{WordTildeExp, "TildeExp"},
	{WordDollarAt, "DollarAt"},
	{WordDollarStar, "DollarStar"},
	{WordNoComSub, "NoComSub"},
	{WordAssignRhs, "AssignRhs"},
	{WordNoTilde, "NoTilde"},
	{WordITilde, "ITilde"},
	{WordNoExpand, "NoExpand"},
	{WordCompAssign, "CompAssign"},
	{WordAssnBltin, "AssnBltin"},
	{WordAssignArg, "AssignArg"},
	{WordHasQuotedNull, "HasQuotedNull"},
	{WordDQuote, "DQuote"},
	{WordNoProcSub, "NoProcSub"},
	{WordHasCtlEsc, "HasCtlEsc"},
	{WordAssignAssoc, "AssignAssoc"},
	{WordAssignArray, "AssignArray"},
	{WordArrayInd, "ArrayInd"},
	{WordAssnGlobal, "AssnGlobal"},
	{WordNoBrace, "NoBrace"},
	{WordComplete, "Complete"},
}

// Pairs that contradict each other. Set keeps whichever side is set last.
var wordFlagConflicts = map[WordFlags]WordFlags{
	WordSplitSpace:  WordNoSplit,
	WordNoSplit:     WordSplitSpace,
	WordTildeExp:    WordNoTilde,
	WordNoTilde:     WordTildeExp,
	WordAssignAssoc: WordAssignArray,
	WordAssignArray: WordAssignAssoc,
}

func (f WordFlags) Has(g WordFlags) bool            { return f&g == g }
func (f WordFlags) Union(g WordFlags) WordFlags     { return f | g }
func (f WordFlags) Intersect(g WordFlags) WordFlags { return f & g }
func (f WordFlags) Without(g WordFlags) WordFlags   { return f &^ g }
func (f WordFlags) String() string                  { return format(f, wordFlagNames) }

// Set adds g to f. Where g contains one side of a contradictory pair
// (SplitSpace/NoSplit, TildeExp/NoTilde, AssignAssoc/AssignArray) the
// other side is cleared from f first.
func (f WordFlags) Set(g WordFlags) WordFlags {
	for bit, other := range wordFlagConflicts {
		if g&bit != 0 && g&other == 0 {
			f &^= other
		}
	}
	return f | g
}

// Param projects the bits that parameter expansion understands.
func (f WordFlags) Param() ParamFlags {
	var p ParamFlags
	for _, m := range paramMirror {
		if f.Has(m.word) {
			p |= m.param
		}
	}
	return p
}

func ParseWordFlags(s string) (WordFlags, error) {
	return parse("WordFlags", s, wordFlagNames)
}

func WordFlagsFromUint(raw uint64) (WordFlags, error) {
	return fromUint("WordFlags", raw, wordFlagNames)
}

// ParamFlags narrow WordFlags to parameter expansion.
type ParamFlags uint8

const (
	ParamNoComSub   ParamFlags = 0x01
	ParamIgnUnbound ParamFlags = 0x02 // ignore unbound vars even if -u is set
	ParamNoSplit2   ParamFlags = 0x04
	ParamAssignRhs  ParamFlags = 0x08
	ParamComplete   ParamFlags = 0x10
)

var paramFlagNames = []named[ParamFlags]{
	{ParamNoComSub, "NoComSub"},
	{ParamIgnUnbound, "IgnUnbound"},
	{ParamNoSplit2, "NoSplit2"},
	{ParamAssignRhs, "AssignRhs"},
	{ParamComplete, "Complete"},
}

var paramMirror = []struct {
	word  WordFlags
	param ParamFlags
}{
	{WordNoComSub, ParamNoComSub},
	{WordNoSplit2, ParamNoSplit2},
	{WordAssignRhs, ParamAssignRhs},
	{WordComplete, ParamComplete},
}

func (f ParamFlags) Has(g ParamFlags) bool             { return f&g == g }
func (f ParamFlags) Union(g ParamFlags) ParamFlags     { return f | g }
func (f ParamFlags) Intersect(g ParamFlags) ParamFlags { return f & g }
func (f ParamFlags) Without(g ParamFlags) ParamFlags   { return f &^ g }
func (f ParamFlags) String() string                    { return format(f, paramFlagNames) }

func ParseParamFlags(s string) (ParamFlags, error) {
	return parse("ParamFlags", s, paramFlagNames)
}

func ParamFlagsFromUint(raw uint64) (ParamFlags, error) {
	return fromUint("ParamFlags", raw, paramFlagNames)
}
