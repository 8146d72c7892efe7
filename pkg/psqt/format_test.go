package psqt_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251207-go-pkg-psqtfmt/pkg/psqt"
)

func TestFormat_FullTable(t *testing.T) {
	src := table("const int pawn", 64)

	got, err := psqt.Format(src)
	require.NoError(t, err)

	prefix := "const int pawn[64]={ "
	require.True(t, strings.HasPrefix(got, prefix), "got %q", got)

	body, closing, found := strings.Cut(strings.TrimPrefix(got, prefix), "\t")
	require.True(t, found)
	assert.Equal(t, "}", closing)

	rows := strings.Split(strings.TrimSuffix(body, "\n"), "\n")
	require.Len(t, rows, 8)
	for i, row := range rows {
		assert.Equal(t, 8, strings.Count(row, "%d"), "row %d", i)
		if i < 7 {
			assert.True(t, strings.HasSuffix(row, "%d, "), "row %d: %q", i, row)
		}
	}
	assert.Equal(t, "57+%d, 58+%d, 59+%d, 60+%d, 61+%d, 62+%d, 63+%d, 64+%d", rows[7])
	assert.NotContains(t, got, "64+%d,")
}

func TestFormat_Golden(t *testing.T) {
	tests := []struct {
		name string
		opts []psqt.Option
		src  string
		want string
	}{
		{
			name: "pass through outside arrays",
			src:  "#define PAWN 100",
			want: "#define PAWN 100 ",
		},
		{
			name: "comma separated table",
			opts: []psqt.Option{psqt.WithRowWidth(4), psqt.WithTableSize(8)},
			src:  "int t[8] = { 1, 2, 3, 4+1, -5, 6, 7, 8 };",
			want: "int t[8] = { 1+%d,  2+%d,  3+%d,  5+%d, \n -5+%d,  6+%d,  7+%d,  8+%d\n\t};",
		},
		{
			name: "custom placeholder without operator",
			opts: []psqt.Option{psqt.WithPlaceholder("{}"), psqt.WithOperator(""), psqt.WithRowWidth(2), psqt.WithTableSize(2)},
			src:  "a[2] 1 2 }",
			want: "a[2] 1{}, 2{}\n\t}",
		},
		{
			name: "counter resets between tables",
			opts: []psqt.Option{psqt.WithRowWidth(2), psqt.WithTableSize(2)},
			src:  "a[2] 1 2 } b[2] 3 4 }",
			want: "a[2] 1+%d, 2+%d\n\t}b[2] 3+%d, 4+%d\n\t}",
		},
		{
			name: "table closed early",
			src:  "x[64]={ 1 2 3 }",
			want: "x[64]={ 1+%d, 2+%d, 3+%d, \t}",
		},
		{
			name: "elements past table size keep counting",
			opts: []psqt.Option{psqt.WithRowWidth(2), psqt.WithTableSize(2)},
			src:  "a[2] 1 2 3 4 }",
			want: "a[2] 1+%d, 2+%d\n3+%d, 4+%d, \n\t}",
		},
		{
			name: "numbers outside arrays are not evaluated",
			src:  "x 1+1 y[1] 1+1 }",
			want: "x 1+1 y[1] 2+%d, \t}",
		},
		{
			name: "declaration inside array is ordinary text",
			src:  "a[1] b[1] 1 }",
			want: "a[1] b[1] 1+%d, \t}",
		},
		{
			name: "unbalanced brackets do not open an array",
			src:  "a[ 1 2 }",
			want: "a[ 1 2 } ",
		},
		{
			name: "non positive sizes fall back to defaults",
			opts: []psqt.Option{psqt.WithRowWidth(0), psqt.WithTableSize(-1)},
			src:  "a[1] 1 }",
			want: "a[1] 1+%d, \t}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := psqt.NewFormatter(tt.opts...).Format(tt.src)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFormat_Reformat(t *testing.T) {
	f := psqt.NewFormatter(psqt.WithRowWidth(2), psqt.WithTableSize(4))

	tmpl, err := f.Format("a[4] 1 2 3 4 }")
	require.NoError(t, err)

	filled := psqt.FillDisplacements(tmpl, f.Placeholder(), []int{10, 20, 30, 40})
	again, err := f.Format(filled)
	require.NoError(t, err)

	// "1+10," 被切分为 "1+10" 与空 token，再次化简为 11。
	assert.Contains(t, again, "11+%d, ")
	assert.Contains(t, again, "22+%d, ")
	// 换行不是分隔符，行首元素随换行一起透传。
	assert.Contains(t, again, "\n3+30 ")
}

func TestFormat_Errors(t *testing.T) {
	tests := []struct {
		name        string
		src         string
		unsupported bool
	}{
		{name: "double sign", src: "t[2] = { 1 --5 }", unsupported: true},
		{name: "subtraction", src: "t[2] = { 4-2 }", unsupported: true},
		{name: "dangling plus", src: "t[2] = { 4+ }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := psqt.Format(tt.src)
			require.ErrorIs(t, err, psqt.ErrMalformedExpression)
			assert.Empty(t, got)
			assert.Contains(t, err.Error(), "token ")
			if tt.unsupported {
				assert.ErrorIs(t, err, psqt.ErrUnsupportedOperator)
			}
		})
	}
}

func TestFormat_ErrorsOutsideArrayIgnored(t *testing.T) {
	got, err := psqt.Format("--5 4-2")
	require.NoError(t, err)
	assert.Equal(t, "--5 4-2 ", got)
}
