package expr

// splitBlocks cuts s at every depth-0 space. The boundary spaces themselves
// are consumed. A definition with no depth-0 space is a single block.
func splitBlocks(s string, profile []int) []string {
	var blocks []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' && profile[i] == 0 {
			blocks = append(blocks, s[start:i])
			start = i + 1
		}
	}
	return append(blocks, s[start:])
}

// stripOuter removes a block's outer parenthesis pair when that pair wraps
// the whole block. A block can legitimately end with ')' closing only an
// inner group, as in "(A,B)+(C,D)", so the literal first/last check alone is
// not enough: the block's own depth profile must stay above 0 everywhere
// between the first and last character.
func stripOuter(block string) (string, error) {
	if len(block) < 2 || block[0] != '(' || block[len(block)-1] != ')' {
		return block, nil
	}
	profile, err := DepthProfile(block)
	if err != nil {
		return "", err
	}
	for i := 1; i < len(block)-1; i++ {
		if profile[i] == 0 {
			return block, nil
		}
	}
	return block[1 : len(block)-1], nil
}
