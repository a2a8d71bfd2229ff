package core

import "testing"

func TestParseLineSetPoint(t *testing.T) {
	cmd, err := ParseLine("2 72000 75000")
	if err != nil {
		t.Fatalf("ParseLine failed: %v", err)
	}
	if cmd.Kind != CmdSetPoint {
		t.Fatalf("Expected CmdSetPoint, got %d", cmd.Kind)
	}
	if cmd.Index != 2 {
		t.Errorf("Expected index 2, got %d", cmd.Index)
	}
	if cmd.In != 72 || cmd.Out != 75 {
		t.Errorf("Expected 72/75 Hz from milli-Hz fields, got %v/%v", cmd.In, cmd.Out)
	}
}

func TestParseLineSave(t *testing.T) {
	cmd, err := ParseLine("SAVE")
	if err != nil {
		t.Fatalf("ParseLine failed: %v", err)
	}
	if cmd.Kind != CmdSave {
		t.Errorf("Expected CmdSave, got %d", cmd.Kind)
	}
}

func TestParseLineErrors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"5 1 1", ErrBadIndex},
		{"0 1000 1000", ErrBadIndex},
		{"1 abc 2000", ErrBadNumber},
		{"1 2000 xyz", ErrBadNumber},
		{"1 2000", ErrMissingField},
		{"2", ErrMissingField},
		{"1 2000 3000 4000", ErrTrailingInput},
		{"SAVE now", ErrTrailingInput},
		{"save", ErrUnknownCommand},
		{"RESET", ErrUnknownCommand},
		{"-1 1000 1000", ErrUnknownCommand},
	}

	for _, test := range tests {
		_, err := ParseLine(test.input)
		if err != test.want {
			t.Errorf("ParseLine(%q): expected %v, got %v", test.input, test.want, err)
		}
	}
}

func TestParseLineBlank(t *testing.T) {
	for _, input := range []string{"", "   ", "\t"} {
		cmd, err := ParseLine(input)
		if err != nil {
			t.Errorf("ParseLine(%q): blank line should not error: %v", input, err)
		}
		if cmd.Kind != CmdNone {
			t.Errorf("ParseLine(%q): expected CmdNone, got %d", input, cmd.Kind)
		}
	}
}

func TestParseLineWhitespaceTolerant(t *testing.T) {
	cmd, err := ParseLine("  3\t90000   85000 ")
	if err != nil {
		t.Fatalf("ParseLine failed: %v", err)
	}
	if cmd.Index != 3 || cmd.In != 90 || cmd.Out != 85 {
		t.Errorf("Expected (3, 90, 85), got (%d, %v, %v)", cmd.Index, cmd.In, cmd.Out)
	}
}

func newTestInterpreter() (*Interpreter, *Corrector, *testStore) {
	corr := NewCorrector(NewSimTimer(), NewSimGPIO(), testOutPin)
	store := newTestStore()
	return NewInterpreter(corr, store), corr, store
}

func TestInterpreterSetPoint(t *testing.T) {
	it, corr, _ := newTestInterpreter()

	reply := it.Execute("2 72000 75000")
	if reply != "point 2 updated" {
		t.Errorf("Unexpected reply: %q", reply)
	}
	if corr.Table[2].In != 72 || corr.Table[2].Out != 75 {
		t.Errorf("Expected table[2] = (72, 75), got (%v, %v)",
			corr.Table[2].In, corr.Table[2].Out)
	}
}

func TestInterpreterRejectsWithoutPartialUpdate(t *testing.T) {
	tests := []string{
		"5 1 1",       // index out of range
		"1 abc 2000",  // malformed number
		"2 1000 1000", // would break curve ordering
	}

	for _, input := range tests {
		it, corr, _ := newTestInterpreter()
		reply := it.Execute(input)
		if len(reply) < 6 || reply[:6] != "error:" {
			t.Errorf("Execute(%q): expected error reply, got %q", input, reply)
		}
		if corr.Table != DefaultTable() {
			t.Errorf("Execute(%q): table changed by rejected command", input)
		}
	}
}

func TestInterpreterSaveRoundTrip(t *testing.T) {
	it, corr, store := newTestInterpreter()

	it.Execute("2 72000 75000")
	reply := it.Execute("SAVE")
	if reply != "saved" {
		t.Errorf("Unexpected reply: %q", reply)
	}

	loaded := DefaultTable()
	if err := LoadTable(store, &loaded); err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}
	if loaded != corr.Table {
		t.Errorf("Persisted table mismatch: %v != %v", loaded, corr.Table)
	}
}

func TestInterpreterBlankLineSilent(t *testing.T) {
	it, _, _ := newTestInterpreter()

	if reply := it.Execute(""); reply != "" {
		t.Errorf("Expected silence for blank line, got %q", reply)
	}
}
