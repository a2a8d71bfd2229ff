package core

import "errors"

// CommandKind identifies a parsed console command.
type CommandKind uint8

const (
	CmdNone CommandKind = iota // blank line
	CmdSave
	CmdSetPoint
)

// Command is the parsed form of one console line.
type Command struct {
	Kind  CommandKind
	Index int
	In    float32 // Hz
	Out   float32 // Hz
}

// Parse error kinds. ParseLine is a pure function returning one of these,
// so the grammar is testable without touching the calibration table.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadIndex       = errors.New("point index must be 1..3")
	ErrBadNumber      = errors.New("malformed number")
	ErrMissingField   = errors.New("missing field")
	ErrTrailingInput  = errors.New("trailing input after command")
)

// ParseLine parses one console line. Grammar, one command per line:
//
//	SAVE
//	<index> <inFreqMilliHz> <outFreqMilliHz>
//
// Frequencies are sent as integer milli-Hz and stored as Hz.
func ParseLine(line string) (Command, error) {
	fields := splitFields(line)
	if len(fields) == 0 {
		return Command{Kind: CmdNone}, nil
	}

	if fields[0] == "SAVE" {
		if len(fields) > 1 {
			return Command{}, ErrTrailingInput
		}
		return Command{Kind: CmdSave}, nil
	}

	idx, ok := parseUint(fields[0])
	if !ok {
		return Command{}, ErrUnknownCommand
	}
	if idx < 1 || idx > 3 {
		return Command{}, ErrBadIndex
	}
	if len(fields) < 3 {
		return Command{}, ErrMissingField
	}
	if len(fields) > 3 {
		return Command{}, ErrTrailingInput
	}

	in, ok := parseUint(fields[1])
	if !ok {
		return Command{}, ErrBadNumber
	}
	out, ok := parseUint(fields[2])
	if !ok {
		return Command{}, ErrBadNumber
	}

	return Command{
		Kind:  CmdSetPoint,
		Index: int(idx),
		In:    float32(in) / 1000,
		Out:   float32(out) / 1000,
	}, nil
}

// Interpreter applies parsed console commands to the corrector's
// calibration table. Parsing and mutation are deliberately separate steps;
// a rejected line leaves the table untouched.
type Interpreter struct {
	corr  *Corrector
	store StorageDriver
}

func NewInterpreter(corr *Corrector, store StorageDriver) *Interpreter {
	return &Interpreter{corr: corr, store: store}
}

// Execute runs one console line and returns a one-line reply, or "" for a
// blank line.
func (it *Interpreter) Execute(line string) string {
	cmd, err := ParseLine(line)
	if err != nil {
		return "error: " + err.Error()
	}

	switch cmd.Kind {
	case CmdSave:
		if err := SaveTable(it.store, &it.corr.Table); err != nil {
			return "error: " + err.Error()
		}
		return "saved"
	case CmdSetPoint:
		if err := it.corr.Table.SetPoint(cmd.Index, cmd.In, cmd.Out); err != nil {
			return "error: " + err.Error()
		}
		return "point " + itoa(cmd.Index) + " updated"
	default:
		return ""
	}
}
