package cmdargs

// Promote moves args[from:from+count] in place so that it starts at index `to`,
// shifting args[to:from] right. Relative order inside both moved groups is kept.
// Nothing happens if from <= to or the range is out of bounds.
func Promote(args []string, from, to, count int) {
	if from <= to || to < 0 || count <= 0 || from+count > len(args) {
		return
	}
	moved := make([]string, count)
	copy(moved, args[from:from+count])
	copy(args[to+count:from+count], args[to:from])
	copy(args[to:], moved)
}

// NextOption returns the index of the first option-shaped arg or terminator
// at or after `from`
func NextOption(args []string, from int) (index int, found bool) {
	for i := from; i < len(args); i++ {
		if token := Classify(args[i]); token.IsOption() || token.Role.Has(RoleTerminator) {
			return i, true
		}
	}
	return -1, false
}
