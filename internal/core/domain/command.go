package domain

import "strings"

// Kind identifies what a line of input asks the shell to do.
type Kind uint8

const (
	// KindEmpty is a line with no tokens.
	KindEmpty Kind = iota
	// KindChangeDir is the "cd" built-in.
	KindChangeDir
	// KindExit is the "exit" built-in.
	KindExit
	// KindPrintWorkingDir is the "pwd" built-in.
	KindPrintWorkingDir
	// KindListFiles is the "lf" built-in.
	KindListFiles
	// KindListProcesses is the "lp" built-in.
	KindListProcesses
	// KindExternal is any other program invocation.
	KindExternal
)

var builtinKinds = map[string]Kind{
	"cd":   KindChangeDir,
	"exit": KindExit,
	"pwd":  KindPrintWorkingDir,
	"lf":   KindListFiles,
	"lp":   KindListProcesses,
}

// String returns the name used for the kind in logs and spans.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindChangeDir:
		return "cd"
	case KindExit:
		return "exit"
	case KindPrintWorkingDir:
		return "pwd"
	case KindListFiles:
		return "lf"
	case KindListProcesses:
		return "lp"
	case KindExternal:
		return "external"
	default:
		return "unknown"
	}
}

// IsBuiltin reports whether the kind is handled inside the shell process.
func (k Kind) IsBuiltin() bool {
	return k != KindEmpty && k != KindExternal
}

// Command is a classified line of input.
type Command struct {
	Kind Kind
	// Argv holds every token of the line, Argv[0] being the command word.
	Argv []string
}

// Name returns the command word, or "" for an empty command.
func (c Command) Name() string {
	if len(c.Argv) == 0 {
		return ""
	}
	return c.Argv[0]
}

// Args returns the tokens after the command word.
func (c Command) Args() []string {
	if len(c.Argv) < 2 {
		return nil
	}
	return c.Argv[1:]
}

// Tokenize splits a line on single spaces, dropping the empty fields produced by
// repeated, leading or trailing spaces. No quoting or escaping is honored.
func Tokenize(line string) []string {
	fields := strings.Split(line, " ")
	argv := fields[:0]
	for _, f := range fields {
		if f != "" {
			argv = append(argv, f)
		}
	}
	if len(argv) == 0 {
		return nil
	}
	return argv
}

// Classify maps an argument vector to its command kind by an exact,
// case-sensitive match on the first token.
func Classify(argv []string) Kind {
	if len(argv) == 0 {
		return KindEmpty
	}
	if k, ok := builtinKinds[argv[0]]; ok {
		return k
	}
	return KindExternal
}

// ParseCommand tokenizes and classifies a line whose terminator was already stripped.
func ParseCommand(line string) Command {
	argv := Tokenize(line)
	return Command{Kind: Classify(argv), Argv: argv}
}
