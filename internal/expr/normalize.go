// Package expr rewrites KEGG MODULE DEFINITION notation into canonical
// boolean expressions. The raw notation is ambiguous: a space either splits
// independent top-level clauses or joins members of a molecular complex,
// depending on parenthesis nesting. Normalize resolves the ambiguity by depth
// and emits explicit & (AND) and | (OR) operators.
package expr

import (
	"errors"
	"regexp"
	"strings"
)

var spaceRunRe = regexp.MustCompile(` {2,}`)

// ErrEmptyDefinition is returned when a definition is empty, or contains
// nothing but whitespace and separator markers once pre-processed.
var ErrEmptyDefinition = errors.New("empty definition")

// Preprocess corrects known transcription inconsistencies in definition
// strings: doubled spaces, stray whitespace around commas, and redundant
// " -- " step separators. The substitutions are order-sensitive: space runs
// collapse first, so the comma and separator rules only ever see single
// spaces. Applying Preprocess to its own output is a no-op.
func Preprocess(def string) string {
	s := spaceRunRe.ReplaceAllString(def, " ")
	s = strings.ReplaceAll(s, " ,", ",")
	s = strings.ReplaceAll(s, ", ", ",")
	for strings.Contains(s, " -- ") {
		s = strings.ReplaceAll(s, " -- ", " ")
	}
	s = strings.TrimPrefix(s, "-- ")
	s = strings.TrimSuffix(s, " --")
	return s
}

// Normalize converts a raw definition into its canonical expression.
//
// Top-level spaces (depth 0) split the definition into independent blocks;
// spaces inside parentheses denote complex composition and become +. Each
// block then loses a redundant outer parenthesis pair, if it has one, and the
// blocks are re-joined with a single space. Finally + becomes & and , becomes
// |. The space between blocks is kept as-is: downstream evaluators treat
// space-joined top-level clauses as implicitly AND-combined.
//
// Unbalanced parentheses surface as a *StructuralError; there is no partial
// output.
func Normalize(def string) (string, error) {
	s := strings.TrimSpace(Preprocess(def))
	if s == "" {
		return "", ErrEmptyDefinition
	}

	profile, err := DepthProfile(s)
	if err != nil {
		return "", err
	}

	blocks := splitBlocks(s, profile)
	for i, block := range blocks {
		// Any space left inside a block sits below depth 0 and joins a
		// complex.
		block = strings.ReplaceAll(block, " ", "+")
		if blocks[i], err = stripOuter(block); err != nil {
			return "", err
		}
	}

	canonical := strings.Join(blocks, " ")
	canonical = strings.ReplaceAll(canonical, "+", "&")
	canonical = strings.ReplaceAll(canonical, ",", "|")
	return canonical, nil
}
