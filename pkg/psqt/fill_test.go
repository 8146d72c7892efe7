package psqt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lwmacct/251207-go-pkg-psqtfmt/pkg/psqt"
)

func TestFillDisplacements(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		placeholder string
		values      []int
		want        string
	}{
		{name: "no values", text: "a%db%dc", placeholder: "%d", values: nil, want: "a%db%dc"},
		{name: "empty values", text: "a%db%dc", placeholder: "%d", values: []int{}, want: "a%db%dc"},
		{name: "extra values unused", text: "a%db%dc", placeholder: "%d", values: []int{1, 2, 3}, want: "a1b2c"},
		{name: "partial fill", text: "a%db%d", placeholder: "%d", values: []int{5}, want: "a5b%d"},
		{name: "exact fill", text: "%d%d", placeholder: "%d", values: []int{-1, 20}, want: "-120"},
		{name: "no placeholders", text: "abc", placeholder: "%d", values: []int{1}, want: "abc"},
		{name: "custom placeholder", text: "x=@@;y=@@", placeholder: "@@", values: []int{3, 4}, want: "x=3;y=4"},
		{name: "empty placeholder", text: "abc", placeholder: "", values: []int{1}, want: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, psqt.FillDisplacements(tt.text, tt.placeholder, tt.values))
		})
	}
}

func TestFillDisplacements_FormattedTemplate(t *testing.T) {
	tmpl, err := psqt.Format("t[2] = { 10 20+5 }")
	assert.NoError(t, err)
	assert.Equal(t, 2, psqt.CountPlaceholders(tmpl, psqt.DefaultPlaceholder))

	filled := psqt.FillDisplacements(tmpl, psqt.DefaultPlaceholder, []int{1, -2})
	assert.Equal(t, "t[2] = { 10+1, 25+-2, \t}", filled)
	assert.Zero(t, psqt.CountPlaceholders(filled, psqt.DefaultPlaceholder))
}

func TestCountPlaceholders(t *testing.T) {
	assert.Equal(t, 3, psqt.CountPlaceholders("%d %d %d", "%d"))
	assert.Zero(t, psqt.CountPlaceholders("%d", ""))
}
