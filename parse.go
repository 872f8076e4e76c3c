package optparse

// Parse parses all args writing the targets of matched specs. It stops at the first
// failed token and returns it. If a UsageStopParsing spec is matched, its StatusOK token
// is returned. Otherwise, the StatusDone token is returned.
func Parse(specs Specs, args []string, flags Flags) Token {
	parser := NewParser(specs, args, flags)
	for {
		token := parser.Next()
		if token.Status != StatusOK {
			return token
		}
		if token.Spec != nil && token.Spec.Usage.Has(UsageStopParsing) {
			return token
		}
	}
}
