package ninja

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateCommand(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "gcc -c foo.c", want: "gcc -c foo.c"},
		{name: "comment at start", in: "# just a comment", want: ""},
		{name: "comment after space", in: "gcc foo.c # build it", want: "gcc foo.c"},
		{name: "hash without preceding space kept", in: "echo a#b", want: "echo a#b"},
		{name: "hash inside single quotes kept", in: "echo 'a # b'", want: "echo 'a # b'"},
		{name: "hash inside double quotes kept", in: `echo "a # b"`, want: `echo "a # b"`},
		{name: "hash inside backticks kept", in: "echo `cmd # arg`", want: "echo `cmd # arg`"},
		{name: "dollar doubled", in: "echo $HOME", want: "echo $$HOME"},
		{name: "dollar inside quotes doubled", in: "echo '$x'", want: "echo '$$x'"},
		{name: "line continuation spliced", in: "gcc \\\n -c foo.c", want: "gcc  -c foo.c"},
		{name: "bare newline becomes space", in: "echo a\necho b", want: "echo a echo b"},
		{name: "escaped quote does not open region", in: `echo \" # comment`, want: `echo \"`},
		{name: "mismatched quote kinds", in: `echo "a 'b" c`, want: `echo "a 'b" c`},
		{name: "trailing semicolons stripped", in: "echo a ;; ", want: "echo a"},
		{name: "trailing whitespace stripped", in: "echo a  \t", want: "echo a"},
		{name: "only comment yields empty", in: "#", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, translateCommand(tt.in))
		})
	}
}

func TestDescriptionFromCommand(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{name: "plain echo", in: "echo Building foo", want: "Building foo", wantOK: true},
		{name: "quoted echo strips quotes", in: `echo "Building foo"`, want: "Building foo", wantOK: true},
		{name: "single quoted", in: "echo 'a b'", want: "a b", wantOK: true},
		{name: "not an echo", in: "gcc -c foo.c", wantOK: false},
		{name: "echo without space", in: "echofoo", wantOK: false},
		{name: "redirect rejected", in: "echo foo > bar", wantOK: false},
		{name: "pipe rejected", in: "echo foo | cat", wantOK: false},
		{name: "semicolon rejected", in: "echo foo; rm bar", wantOK: false},
		{name: "ampersand rejected", in: "echo foo && echo bar", wantOK: false},
		{name: "redirect inside quotes allowed", in: `echo "a > b"`, want: "a > b", wantOK: true},
		{name: "escaped char kept with backslash", in: `echo a\>b`, want: `a\>b`, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := descriptionFromCommand(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
