package warehouse

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Token is one unit of a command string.
type Token string

const (
	North     Token = "N"
	South     Token = "S"
	East      Token = "E"
	West      Token = "W"
	NorthEast Token = "NE"
	NorthWest Token = "NW"
	SouthEast Token = "SE"
	SouthWest Token = "SW"
	Grab      Token = "G"
	Drop      Token = "D"
)

type Commands struct {
	Tokens []string `parser:"@Token*"`
}

var commandLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Token", Pattern: `[^\s]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[Commands](
	participle.Lexer(commandLexer),
	participle.Elide("Whitespace"),
)

// ParseCommands splits input on whitespace and folds adjacent cardinal
// pairs into diagonals.
func ParseCommands(input string) ([]Token, error) {
	cmds, err := parser.ParseString("commands", input)
	if err != nil {
		return nil, err
	}
	toks := make([]Token, len(cmds.Tokens))
	for i, s := range cmds.Tokens {
		toks[i] = Token(s)
	}
	return mergeDiagonals(toks), nil
}

// mergeDiagonals replaces each pair {N,E}, {N,W}, {S,E}, {S,W} (either order)
// with its diagonal. After a merge the scan resumes at the token following
// the new diagonal.
func mergeDiagonals(toks []Token) []Token {
	for i := 0; i+1 < len(toks); i++ {
		d, ok := diagonal(toks[i], toks[i+1])
		if !ok {
			continue
		}
		toks[i] = d
		toks = append(toks[:i+1], toks[i+2:]...)
	}
	return toks
}

func diagonal(a, b Token) (Token, bool) {
	var ns, ew Token
	for _, t := range [2]Token{a, b} {
		switch t {
		case North, South:
			ns = t
		case East, West:
			ew = t
		}
	}
	if ns == "" || ew == "" {
		return "", false
	}
	return ns + ew, true
}
