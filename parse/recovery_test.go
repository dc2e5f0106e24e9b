package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/eqlparser/lex"
)

func TestMissingWhat_ArticledForOrdinaryKind(t *testing.T) {
	assert.Equal(t, "an identifier", missingWhat("IDENT"))
}

func TestMissingWhat_BareForKeyword(t *testing.T) {
	assert.Equal(t, "'select'", missingWhat("SELECT"))
}

func TestMissingWhat_BareForPunctuation(t *testing.T) {
	assert.Equal(t, "')'", missingWhat("RPAREN"))
}

func TestTerminalToKind_RoundTrips(t *testing.T) {
	assert.Equal(t, lex.KindIdent, terminalToKind("IDENT"))
	assert.Equal(t, lex.KindSelect, terminalToKind("SELECT"))
}

func TestMissingHint_CommaInShape(t *testing.T) {
	tok := lex.Token{Kind: lex.KindIdent, Text: "last_name"}
	got := missingHint("COMMA", tok)
	assert.Equal(t, "It appears that a ',' is missing in a shape before 'last_name'", got)
}

func TestMissingHint_NoHintForOtherCandidates(t *testing.T) {
	tok := lex.Token{Kind: lex.KindIdent, Text: "x"}
	assert.Empty(t, missingHint("RPAREN", tok))
	assert.Empty(t, missingHint("IDENT", tok))
}
