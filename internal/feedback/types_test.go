// internal/feedback/types_test.go

package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWord(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{"lowercase passes through", "crane", "crane", nil},
		{"uppercase folds", "CRANE", "crane", nil},
		{"surrounding space trimmed", "  crane\n", "crane", nil},
		{"too short", "cran", "", ErrWordLength},
		{"too long", "cranes", "", ErrWordLength},
		{"empty", "", "", ErrWordLength},
		{"digits rejected", "cr4ne", "", ErrWordChar},
		{"punctuation rejected", "cra-e", "", ErrWordChar},
		{"non-ascii rejected", "cràne", "", ErrWordLength}, // à is two bytes
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWord(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePattern(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Pattern
		wantErr bool
	}{
		{"lowercase encoding", "gybbr", Pattern{Correct, Misplaced, Absent, Absent, Absent}, false},
		{"uppercase encoding", "GYBBR", Pattern{Correct, Misplaced, Absent, Absent, Absent}, false},
		{"r and b both mean absent", "rbrbr", Pattern{}, false},
		{"all correct", "ggggg", Pattern{Correct, Correct, Correct, Correct, Correct}, false},
		{"too short", "gyb", Pattern{}, true},
		{"too long", "gybbrg", Pattern{}, true},
		{"stray character", "gyxbr", Pattern{}, true},
		{"empty", "", Pattern{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePattern(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrPatternEncoding)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPatternString(t *testing.T) {
	p := Pattern{Correct, Misplaced, Absent, Misplaced, Correct}
	assert.Equal(t, "gybyg", p.String())

	// round trip: String output reparses to the same pattern
	rt, err := ParsePattern(p.String())
	assert.NoError(t, err)
	assert.Equal(t, p, rt)
}

func TestAllCorrect(t *testing.T) {
	assert.True(t, Pattern{Correct, Correct, Correct, Correct, Correct}.AllCorrect())
	assert.False(t, Pattern{Correct, Correct, Correct, Correct, Misplaced}.AllCorrect())
	assert.False(t, Pattern{}.AllCorrect())
}
