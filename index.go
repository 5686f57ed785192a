package nested

// resolveRead resolves tok against a sequence of length n for reads and
// delete navigation.  A negative index counts from the end.  Out of range
// indices are reported with ok == false rather than an error; an error is
// returned only when tok is not an index at all.
func resolveRead(n int, tok Token) (idx int, ok bool, err error) {
	i, err := ParseIndex(tok)
	if err != nil {
		return 0, false, err
	}
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, false, nil
	}
	return i, true, nil
}

// resolveWrite resolves tok against a sequence of length n for writes.
//
// A negative index must name an existing element.  A non-negative index may
// name an existing element or n, which appends.  Anything beyond n is only
// allowed when gapFill is set, and never beyond maxIndex.
func resolveWrite(n int, tok Token, gapFill bool, maxIndex int) (int, error) {
	i, err := ParseIndex(tok)
	if err != nil {
		return 0, err
	}
	if i > maxIndex {
		return 0, newError(CodeInvalidIndex, "index %d exceeds maximum index %d", i, maxIndex)
	}
	if i < 0 {
		r := n + i
		if r < 0 || r >= n {
			return 0, newError(CodeInvalidIndex, "index %d out of bounds for sequence of length %d", i, n)
		}
		return r, nil
	}
	if i > n && !gapFill {
		return 0, newError(CodeInvalidIndex,
			"index %d out of bounds for sequence of length %d (no sparse lists: index must be <= %d)", i, n, n)
	}
	return i, nil
}
