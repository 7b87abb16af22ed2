package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto chooses relative or absolute path automatically.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	// Color accents the "*** <Severity>" header the way decafc's --color
	// flag accents version.go's banner, via fatih/color.
	Color     bool
	PathMode  PathMode
	ShowNotes bool
	ShowFixes bool
}
