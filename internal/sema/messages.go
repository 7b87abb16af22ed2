package sema

import "fmt"

// Message templates, bit-exact to spec.md §7. Each already carries the
// "***"/"**" marker that the original Decaf compiler bakes into the
// message text itself, ahead of the diagnostic printer's own "*** Error
// line N." wrapper line.
func msgConflictingDecl(name string, earlierLine uint32) string {
	return fmt.Sprintf("*** Declaration of '%s' here conflicts with declaration on line %d", name, earlierLine)
}

func msgUndeclaredType(name, kind string) string {
	return fmt.Sprintf("*** No declaration found for %s '%s'", kind, name)
}

func msgIllegalCycle(name string, line uint32) string {
	return fmt.Sprintf("*** Illegal cyclic class inheritance involving %s on line %d", name, line)
}

func msgTypeSignature(name string) string {
	return fmt.Sprintf("** Method '%s' must match inherited type signature", name)
}

func msgUnimplementedInterface(class, iface string) string {
	return fmt.Sprintf("*** Class '%s' does not implement entire interface '%s'", class, iface)
}

func msgInvalidTest() string {
	return "*** Test expression must have boolean type"
}

func msgIncompatibleReturn(got, want string) string {
	return fmt.Sprintf("*** Incompatible return : %s given, %s expected", got, want)
}

func msgIncompatibleArgument(i int, got string) string {
	return fmt.Sprintf("*** Incompatible argument %d: %s given, int/bool/string expected", i, got)
}

func msgBreakOutsideLoop() string {
	return "*** break is only allowed inside a loop"
}
