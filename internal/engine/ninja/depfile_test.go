package ninja

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordingLogger captures warnings for assertions.
type recordingLogger struct {
	infos    []string
	warnings []string
	errs     []error
}

func (l *recordingLogger) Info(msg string) { l.infos = append(l.infos, msg) }
func (l *recordingLogger) Warn(msg string) { l.warnings = append(l.warnings, msg) }
func (l *recordingLogger) Error(err error) { l.errs = append(l.errs, err) }

func TestFindFlagArg(t *testing.T) {
	tests := []struct {
		name string
		cmd  string
		flag string
		want string
	}{
		{name: "simple", cmd: "gcc -MF foo.d -c foo.c", flag: " -MF", want: "foo.d"},
		{name: "extra whitespace", cmd: "gcc -MF \t foo.d", flag: " -MF", want: "foo.d"},
		{name: "repeated flag takes last", cmd: "gcc -MF a.d -MF b.d foo.c", flag: " -MF", want: "b.d"},
		{name: "value at end of line", cmd: "gcc -c foo.c -o out/foo.o", flag: " -o", want: "out/foo.o"},
		{name: "missing", cmd: "gcc -c foo.c", flag: " -MF", want: ""},
		{name: "flag at position zero ignored", cmd: " -MF foo.d", flag: " -MF", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, findFlagArg(tt.cmd, tt.flag))
		})
	}
}

func TestDependencyFile(t *testing.T) {
	tests := []struct {
		name        string
		cmd         string
		wantCmd     string
		wantDepfile string
		wantOK      bool
		wantWarning bool
	}{
		{
			name:   "no dependency flag",
			cmd:    "gcc -c -o out/foo.o foo.c",
			wantOK: false,
		},
		{
			name:   "dependency flag without compile flag",
			cmd:    "gcc -MD -E foo.c",
			wantOK: false,
		},
		{
			name:        "explicit MF argument",
			cmd:         "gcc -c -MD -MF out/foo.d -o out/foo.o foo.c",
			wantCmd:     "gcc -c -MD -MF out/foo.d -o out/foo.o foo.c && cp out/foo.d out/foo.d.tmp",
			wantDepfile: "out/foo.d.tmp",
			wantOK:      true,
		},
		{
			name:        "derived from output flag",
			cmd:         "gcc -MD -c foo.c -o out/foo.o",
			wantCmd:     "gcc -MD -c foo.c -o out/foo.o && cp out/foo.d out/foo.d.tmp",
			wantDepfile: "out/foo.d.tmp",
			wantOK:      true,
		},
		{
			name:        "MMD also counts",
			cmd:         "gcc -MMD -c foo.c -o out/foo.o",
			wantCmd:     "gcc -MMD -c foo.c -o out/foo.o && cp out/foo.d out/foo.d.tmp",
			wantDepfile: "out/foo.d.tmp",
			wantOK:      true,
		},
		{
			name:        "missing output path warns",
			cmd:         "gcc -MD -c foo.c",
			wantOK:      false,
			wantWarning: true,
		},
		{
			name:   "resource compiler never has a depfile",
			cmd:    "prebuilts/sdk/bin/llvm-rs-cc -MD -c -o out/foo.o foo.rs",
			wantOK: false,
		},
		{
			name:        "P convention removes the rm fragment",
			cmd:         "gcc -MD -c foo.c -o out/foo.o && cp out/foo.d out/foo.P; rm -f out/foo.d",
			wantCmd:     "gcc -MD -c foo.c -o out/foo.o && cp out/foo.d out/foo.P",
			wantDepfile: "out/foo.d",
			wantOK:      true,
		},
		{
			name:        "P convention without rm fragment warns",
			cmd:         "gcc -MD -c foo.c -o out/foo.o && cp out/foo.d out/foo.P",
			wantOK:      false,
			wantWarning: true,
		},
		{
			name:   "assembly input has no depfile",
			cmd:    "gcc -MD -c src/foo.s -o out/foo.o",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &recordingLogger{}
			gotCmd, gotDepfile, ok := dependencyFile(tt.cmd, logger)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantCmd, gotCmd)
				assert.Equal(t, tt.wantDepfile, gotDepfile)
			} else {
				assert.Equal(t, tt.cmd, gotCmd, "failed detection must leave the command alone")
			}
			if tt.wantWarning {
				assert.NotEmpty(t, logger.warnings)
			} else {
				assert.Empty(t, logger.warnings)
			}
		})
	}
}
