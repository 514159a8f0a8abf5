package weighted_test

import (
	"testing"

	"promptparser/pkg/weighted"

	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []weighted.Span
	}{
		{
			name: "no spans",
			in:   "plain text (no modifier)",
			want: nil,
		},
		{
			name: "group span keeps the raw term",
			in:   "( big  dog )++ runs",
			want: []weighted.Span{
				{Form: weighted.FormParenthesized, Term: " big  dog ", Modifier: "++", Start: 0, End: 14},
			},
		},
		{
			name: "bare word span",
			in:   "run fast-0.5.",
			want: []weighted.Span{
				{Form: weighted.FormBareWord, Term: "fast", Modifier: "-0.5", Start: 4, End: 12},
			},
		},
		{
			name: "spans do not overlap and resume after the modifier",
			in:   "a+ (b)- c1",
			want: []weighted.Span{
				{Form: weighted.FormBareWord, Term: "a", Modifier: "+", Start: 0, End: 2},
				{Form: weighted.FormParenthesized, Term: "b", Modifier: "-", Start: 3, End: 7},
			},
		},
		{
			name: "escaped groups are skipped",
			in:   `\(x)+ \(y z)+`,
			want: nil,
		},
		{
			name: "unterminated group",
			in:   "(open ended+",
			want: []weighted.Span{
				{Form: weighted.FormBareWord, Term: "ended", Modifier: "+", Start: 6, End: 12},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, weighted.Find(tt.in))
		})
	}
}

func TestForm_String(t *testing.T) {
	require.Equal(t, "parenthesized", weighted.FormParenthesized.String())
	require.Equal(t, "bare-word", weighted.FormBareWord.String())
	require.Equal(t, "unknown", weighted.Form(0).String())
}
