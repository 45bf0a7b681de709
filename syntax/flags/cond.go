package flags

// Conditional tags the role of a node inside [[ ... ]].
type Conditional uint8

const (
	CondAnd Conditional = 1 << iota
	CondOr
	CondUnary
	CondBinary
	CondTerm
	CondExpr
)

var conditionalNames = []named[Conditional]{
	{CondAnd, "And"},
	{CondOr, "Or"},
	{CondUnary, "Unary"},
	{CondBinary, "Binary"},
	{CondTerm, "Term"},
	{CondExpr, "Expr"},
}

func (f Conditional) Has(g Conditional) bool              { return f&g == g }
func (f Conditional) Union(g Conditional) Conditional     { return f | g }
func (f Conditional) Intersect(g Conditional) Conditional { return f & g }
func (f Conditional) Without(g Conditional) Conditional   { return f &^ g }
func (f Conditional) String() string                      { return format(f, conditionalNames) }

func ParseConditional(s string) (Conditional, error) {
	return parse("Conditional", s, conditionalNames)
}

func ConditionalFromUint(raw uint64) (Conditional, error) {
	return fromUint("Conditional", raw, conditionalNames)
}

// CasePatternFlag controls what happens after a case clause's action runs.
// Zero is the plain ";;" terminator.
type CasePatternFlag uint8

const (
	CaseFallThrough CasePatternFlag = 0x01 // ;&
	CaseTestNext    CasePatternFlag = 0x02 // ;;&
)

var casePatternFlagNames = []named[CasePatternFlag]{
	{CaseFallThrough, "FallThrough"},
	{CaseTestNext, "TestNext"},
}

func (f CasePatternFlag) Has(g CasePatternFlag) bool                  { return f&g == g }
func (f CasePatternFlag) Union(g CasePatternFlag) CasePatternFlag     { return f | g }
func (f CasePatternFlag) Intersect(g CasePatternFlag) CasePatternFlag { return f & g }
func (f CasePatternFlag) Without(g CasePatternFlag) CasePatternFlag   { return f &^ g }
func (f CasePatternFlag) String() string                              { return format(f, casePatternFlagNames) }

func ParseCasePatternFlag(s string) (CasePatternFlag, error) {
	return parse("CasePatternFlag", s, casePatternFlagNames)
}

func CasePatternFlagFromUint(raw uint64) (CasePatternFlag, error) {
	return fromUint("CasePatternFlag", raw, casePatternFlagNames)
}
