package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grindlemire/go-flex/internal/layout"
)

const rowFixture = `
width = 100
height = 20

[root]
id = "root"
flex_direction = "row"

[[root.children]]
id = "a"
width = 30

[[root.children]]
id = "b"
flex_grow = 1.0
`

const columnFixture = `
root:
  id: col
  width: 10
  height: 10
`

func writeFixture(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func noTerminal(t *testing.T) {
	t.Helper()
	orig := terminalSize
	terminalSize = func() (int, int, bool) { return 0, 0, false }
	t.Cleanup(func() { terminalSize = orig })
}

func TestRun(t *testing.T) {
	type tc struct {
		command string
		want    string
		wantErr bool
	}

	tests := map[string]tc{
		"version": {command: "version", want: "flex version " + version + "\n"},
		"help":    {command: "help", want: usage},
		"unknown": {command: "frobnicate", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(tt.command, nil, &out)
			if (err != nil) != tt.wantErr {
				t.Fatalf("run(%q) error = %v, wantErr %v", tt.command, err, tt.wantErr)
			}
			if !tt.wantErr && out.String() != tt.want {
				t.Errorf("run(%q) output = %q, want %q", tt.command, out.String(), tt.want)
			}
		})
	}
}

func TestRunRound(t *testing.T) {
	type tc struct {
		args    []string
		want    string
		wantErr bool
	}

	tests := map[string]tc{
		"nearest": {args: []string{"10.3", "10.6"}, want: "10\n11\n"},
		"scale 2": {args: []string{"-scale", "2", "10.3", "10.8"}, want: "10.5\n11\n"},
		"ceil":    {args: []string{"-ceil", "10.1"}, want: "11\n"},
		"floor":   {args: []string{"-floor", "10.9"}, want: "10\n"},
		"no args": {args: nil, wantErr: true},
		"bad num": {args: []string{"ten"}, wantErr: true},
		"scale 0 disables rounding": {args: []string{"-scale", "0", "10.3"}, want: "10.3\n"},
		"scale NaN":                 {args: []string{"-scale", "NaN", "1"}, wantErr: true},
		"negative scale":            {args: []string{"-scale", "-1", "1"}, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			err := runRound(tt.args, &out)
			if (err != nil) != tt.wantErr {
				t.Fatalf("runRound(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if !tt.wantErr && out.String() != tt.want {
				t.Errorf("runRound(%v) = %q, want %q", tt.args, out.String(), tt.want)
			}
		})
	}
}

func TestRunLayout(t *testing.T) {
	noTerminal(t)
	row := writeFixture(t, "row.toml", rowFixture)
	col := writeFixture(t, "col.yaml", columnFixture)

	type tc struct {
		args    []string
		want    string
		wantErr string
	}

	tests := map[string]tc{
		"text output": {
			args: []string{row},
			want: "root: left=0 top=0 width=100 height=20\n" +
				"  a: left=0 top=0 width=30 height=20\n" +
				"  b: left=30 top=0 width=70 height=20\n",
		},
		"width flag wins": {
			args: []string{"-width", "50", row},
			want: "root: left=0 top=0 width=50 height=20\n" +
				"  a: left=0 top=0 width=30 height=20\n" +
				"  b: left=30 top=0 width=20 height=20\n",
		},
		"rtl": {
			args: []string{"-rtl", row},
			want: "root: left=0 top=0 width=100 height=20\n" +
				"  a: left=70 top=0 width=30 height=20\n" +
				"  b: left=0 top=0 width=70 height=20\n",
		},
		"several files keep argument order": {
			args: []string{col, row},
			want: "# " + col + "\n" +
				"col: left=0 top=0 width=10 height=10\n" +
				"# " + row + "\n" +
				"root: left=0 top=0 width=100 height=20\n" +
				"  a: left=0 top=0 width=30 height=20\n" +
				"  b: left=30 top=0 width=70 height=20\n",
		},
		"no files":       {args: nil, wantErr: "no fixture files"},
		"bad format":     {args: []string{"-format", "json", row}, wantErr: `unknown format "json"`},
		"bad width":      {args: []string{"-width", "wide", row}, wantErr: "invalid -width"},
		"negative width": {args: []string{"-width", "-5", row}, wantErr: "must not be negative"},
		"missing file":   {args: []string{filepath.Join(t.TempDir(), "nope.toml")}, wantErr: "nope.toml"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			err := runLayout(tt.args, &out)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("runLayout(%v) error = %v, want %q", tt.args, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("runLayout(%v) error = %v", tt.args, err)
			}
			if out.String() != tt.want {
				t.Errorf("runLayout(%v) =\n%s\nwant\n%s", tt.args, out.String(), tt.want)
			}
		})
	}
}

func TestRunLayoutTOMLAndStats(t *testing.T) {
	noTerminal(t)
	row := writeFixture(t, "row.toml", rowFixture)

	var out bytes.Buffer
	if err := runLayout([]string{"-format", "toml", "-stats", row}, &out); err != nil {
		t.Fatalf("runLayout error = %v", err)
	}
	got := out.String()
	for _, want := range []string{"[[children]]", "stats: layouts="} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRunLayoutDebugLog(t *testing.T) {
	noTerminal(t)
	row := writeFixture(t, "row.toml", rowFixture)
	logPath := filepath.Join(t.TempDir(), "debug.log")

	var out bytes.Buffer
	if err := runLayout([]string{"-debug", logPath, row}, &out); err != nil {
		t.Fatalf("runLayout error = %v", err)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading debug log: %v", err)
	}
	if !strings.Contains(string(data), "laid out at 100x20") {
		t.Errorf("debug log missing summary line:\n%s", data)
	}
}

func TestPickSize(t *testing.T) {
	nan := layout.Undefined

	type tc struct {
		flag, file, term float32
		want             float32
	}

	tests := map[string]tc{
		"flag":     {flag: 5, file: 6, term: 7, want: 5},
		"file":     {flag: nan, file: 6, term: 7, want: 6},
		"terminal": {flag: nan, file: nan, term: 7, want: 7},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := pickSize(tt.flag, tt.file, tt.term); got != tt.want {
				t.Errorf("pickSize = %v, want %v", got, tt.want)
			}
		})
	}
}
