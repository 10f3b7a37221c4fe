package restrictions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCode(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		want      Code
		wantSpans int
	}{
		{
			name:      "compound",
			text:      "claiming price $7 500 (c) claiming price",
			want:      Code{Kind: KindCompound, Value: "C"},
			wantSpans: 1,
		},
		{
			name:      "state-bred",
			text:      "maiden fillies 2 year olds (s) ",
			want:      Code{Kind: KindStateBred, Value: "S", StateBred: true},
			wantSpans: 1,
		},
		{
			name:      "state-bred named",
			text:      "claiming price $2 500 (snw2 r 6m) claiming price $2 500",
			want:      Code{Kind: KindNamed, Value: "NW2 R 6M", StateBred: true},
			wantSpans: 1,
		},
		{
			name:      "named",
			text:      "preferred) (nw1$ x)",
			want:      Code{Kind: KindNamed, Value: "NW1$ X"},
			wantSpans: 1,
		},
		{
			name:      "first code wins, other spans still returned",
			text:      "inner turf (upwards to $16 200 nysbfoa) for 3 year olds (allowance horses preferred) (nw2$ x) (c)",
			want:      Code{Kind: KindNamed, Value: "NW2$ X"},
			wantSpans: 4,
		},
		{
			name:      "no code",
			text:      "2 year old fillies (open fillies will run for $35 000 purse) ",
			want:      Code{},
			wantSpans: 1,
		},
		{
			name: "no parentheses",
			text: "3 year olds",
			want: Code{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, spans := ExtractCode(tt.text)
			assert.Equal(t, tt.want, code)
			assert.Len(t, spans, tt.wantSpans)
		})
	}
}

func TestExtractCode_SpansIncludeSurroundingSpace(t *testing.T) {
	_, spans := ExtractCode("for 3 year olds (s) weight")
	require.Len(t, spans, 1)
	assert.Equal(t, " (s) ", spans[0])
}

func TestCode_RecordCode(t *testing.T) {
	assert.Nil(t, Code{}.recordCode())
	assert.Nil(t, Code{Kind: KindStateBred, Value: "S", StateBred: true}.recordCode())
	assert.Equal(t, "C", *Code{Kind: KindCompound, Value: "C"}.recordCode())
	assert.Equal(t, "NW2 L", *Code{Kind: KindNamed, Value: "NW2 L"}.recordCode())
}
