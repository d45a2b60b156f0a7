package domain

// Request describes one fully resolved invocation of the conversion script.
type Request struct {
	// InputPath is the canonical absolute path to the broker report.
	InputPath string
	// OutputPath is the target workbook path, always a sibling of the input.
	OutputPath string
	// ScriptPath is the absolute path to the external conversion script.
	ScriptPath string
	// EnvDir is the virtual environment directory whose interpreter runs the script.
	EnvDir string
	// IncludeCash mirrors the converter's --include-cash flag.
	IncludeCash bool
	// Debug mirrors the converter's --debug flag.
	Debug bool
	// ExtraArgs are forwarded to the converter verbatim, after the fixed flags.
	ExtraArgs []string
}

// Args assembles the converter's argument vector: fixed flags first, then the
// user-supplied extras in their original order.
func (r *Request) Args() []string {
	args := []string{
		"--input", r.InputPath,
		"--output", r.OutputPath,
	}
	if r.Debug {
		args = append(args, "--debug")
	}
	if r.IncludeCash {
		args = append(args, "--include-cash")
	}
	return append(args, r.ExtraArgs...)
}
