package expr

import "fmt"

// StructuralError reports parentheses that cannot be balanced. Pos is the
// byte offset of the offending close parenthesis, or len(input) when opens
// are left unclosed at the end.
type StructuralError struct {
	Pos int
	Msg string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("unbalanced definition at offset %d: %s", e.Pos, e.Msg)
}

// DepthProfile computes the parenthesis-nesting depth at every byte of s.
// A parenthesis is assigned the depth of its enclosing level, so the
// characters of an outermost pair both read 0, same as a top-level
// identifier. The profile of a well-formed input never goes negative and the
// scan ends back at depth 0; anything else returns a *StructuralError.
func DepthProfile(s string) ([]int, error) {
	profile := make([]int, len(s))
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			profile[i] = depth
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, &StructuralError{Pos: i, Msg: "close parenthesis without matching open"}
			}
			profile[i] = depth
		default:
			profile[i] = depth
		}
	}
	if depth != 0 {
		return nil, &StructuralError{Pos: len(s), Msg: fmt.Sprintf("%d unclosed open parenthesis(es)", depth)}
	}
	return profile, nil
}
