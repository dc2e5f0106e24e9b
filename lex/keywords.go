package lex

import "sort"

// ReservedClass is the 4-way keyword classification of spec.md §3.3: a
// keyword word may always be used as an identifier (Unreserved), may be
// used as an identifier only in certain grammar positions (PartialReserved),
// may never be used as an identifier today (CurrentReserved), or is not a
// keyword today but reserved against future grammar growth (FutureReserved).
type ReservedClass uint8

const (
	Unreserved ReservedClass = iota
	PartialReserved
	CurrentReserved
	FutureReserved
)

func (c ReservedClass) String() string {
	switch c {
	case Unreserved:
		return "unreserved"
	case PartialReserved:
		return "partial reserved"
	case CurrentReserved:
		return "current reserved"
	case FutureReserved:
		return "future reserved"
	default:
		return "unknown"
	}
}

type keywordEntry struct {
	word  string
	kind  Kind
	class ReservedClass
}

// keywordKindNames is the master keyword table (spec.md §3.3). It is kept
// as a flat slice, sorted once at init time; the lexer's lookupKeyword
// searches it with sort.Search, while ClassifyKeyword reads the
// keywordByWord map built from it at init.
var keywordKindNames = []keywordEntry{
	{"select", KindSelect, CurrentReserved},
	{"insert", KindInsert, CurrentReserved},
	{"update", KindUpdate, CurrentReserved},
	{"delete", KindDelete, CurrentReserved},
	{"for", KindFor, CurrentReserved},
	{"in", KindIn, CurrentReserved},
	{"union", KindUnion, CurrentReserved},
	{"intersect", KindIntersect, CurrentReserved},
	{"except", KindExcept, CurrentReserved},
	{"group", KindGroup, CurrentReserved},
	{"using", KindUsing, CurrentReserved},
	{"by", KindBy, UnreservedKeywordClassBY},
	{"into", KindInto, CurrentReserved},
	{"filter", KindFilter, PartialReserved},
	{"order", KindOrder, CurrentReserved},
	{"offset", KindOffset, CurrentReserved},
	{"limit", KindLimit, CurrentReserved},
	{"set", KindSet, CurrentReserved},
	{"type", KindType, PartialReserved},
	{"scalar", KindScalar, Unreserved},
	{"abstract", KindAbstract, Unreserved},
	{"function", KindFunction, Unreserved},
	{"create", KindCreate, CurrentReserved},
	{"alter", KindAlter, CurrentReserved},
	{"drop", KindDrop, CurrentReserved},
	{"extending", KindExtending, Unreserved},
	{"with", KindWith, CurrentReserved},
	{"module", KindModule, PartialReserved},
	{"if", KindIf, CurrentReserved},
	{"else", KindElse, CurrentReserved},
	{"true", KindTrue, CurrentReserved},
	{"false", KindFalse, CurrentReserved},
	{"not", KindNot, PartialReserved},
	{"and", KindAnd, CurrentReserved},
	{"or", KindOr, CurrentReserved},
	{"exists", KindExists, CurrentReserved},
	{"distinct", KindDistinct, CurrentReserved},
	{"is", KindIs, CurrentReserved},
	{"like", KindLike, PartialReserved},
	{"ilike", KindIlike, PartialReserved},
	{"named", KindNamed, Unreserved},
	{"only", KindOnly, PartialReserved},
	{"extension", KindExtension, Unreserved},
	{"package", KindPackage, Unreserved},
	{"start", KindStart, Unreserved},
	{"commit", KindCommit, Unreserved},
	{"rollback", KindRollback, Unreserved},
	{"declare", KindDeclare, Unreserved},
	{"savepoint", KindSavepoint, Unreserved},
	{"to", KindTo, PartialReserved},
	{"analyze", KindAnalyze, Unreserved},
	{"explain", KindExplain, Unreserved},
	{"describe", KindDescribe, Unreserved},
	{"administer", KindAdminister, Unreserved},
	{"configure", KindConfigure, Unreserved},
	{"migration", KindMigration, Unreserved},
	{"schema", KindSchema, Unreserved},
	{"link", KindLink, Unreserved},
	{"property", KindProperty, Unreserved},
	{"constraint", KindConstraint, Unreserved},
	{"index", KindIndex, Unreserved},
	{"required", KindRequired, PartialReserved},
	{"multi", KindMultiCardinality, Unreserved},
	{"single", KindSingleCardinality, Unreserved},
	{"on", KindOn, PartialReserved},
	{"of", KindOf, PartialReserved},
	{"as", KindAs, PartialReserved},
	{"optional", KindOptional, PartialReserved},
	{"tuple", KindTuple, Unreserved},
	{"array", KindArray, Unreserved},
	{"global", KindGlobal, Unreserved},
	{"alias", KindAlias, Unreserved},
	{"database", KindDatabase, Unreserved},
	{"role", KindRole, Unreserved},
	{"cast", KindCast, Unreserved},
	{"operator", KindOperator, Unreserved},
	{"rename", KindRename, Unreserved},
	{"reset", KindReset, Unreserved},
	{"session", KindSession, Unreserved},
	{"transaction", KindTransaction, Unreserved},
	{"isolation", KindIsolation, Unreserved},
	{"read", KindRead, Unreserved},
	{"write", KindWrite, Unreserved},
	{"deferrable", KindDeferrable, Unreserved},
	{"variadic", KindVariadic, FutureReserved},
	{"raise", KindRaise, FutureReserved},
	{"assignment", KindAssignment, FutureReserved},
	{"populate", KindPopulate, Unreserved},
	{"json", KindJson, Unreserved},
	{"empty", KindEmpty, PartialReserved},
}

// UnreservedKeywordClassBY exists only so the "by" entry above reads as a
// deliberate choice rather than a typo: BY is classified unreserved because
// it only ever follows GROUP or ORDER and is never ambiguous with an
// identifier position in the grammar subset built in grammar/build.go.
const UnreservedKeywordClassBY = Unreserved

var keywordByWord map[string]keywordEntry

func init() {
	sort.Slice(keywordKindNames, func(i, j int) bool {
		return keywordKindNames[i].word < keywordKindNames[j].word
	})
	keywordByWord = make(map[string]keywordEntry, len(keywordKindNames))
	for _, kw := range keywordKindNames {
		keywordByWord[kw.word] = kw
	}
}

// lookupKeyword returns the keyword entry for a lowercase word and whether
// one was found, using binary search over the sorted table (spec.md §9).
func lookupKeyword(lowerWord string) (keywordEntry, bool) {
	idx := sort.Search(len(keywordKindNames), func(i int) bool {
		return keywordKindNames[i].word >= lowerWord
	})
	if idx < len(keywordKindNames) && keywordKindNames[idx].word == lowerWord {
		return keywordKindNames[idx], true
	}
	return keywordEntry{}, false
}

// ClassifyKeyword returns the ReservedClass of word (case-insensitively)
// and whether it is a keyword at all.
func ClassifyKeyword(word string) (ReservedClass, bool) {
	kw, ok := keywordByWord[toLowerASCII(word)]
	if !ok {
		return Unreserved, false
	}
	return kw.class, true
}

func toLowerASCII(s string) string {
	b := []byte(s)
	changed := false
	for i := 0; i < len(b); i++ {
		if b[i] >= 'A' && b[i] <= 'Z' {
			if !changed {
				nb := make([]byte, len(b))
				copy(nb, b)
				b = nb
				changed = true
			}
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}
