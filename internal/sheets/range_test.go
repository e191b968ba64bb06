package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnLetter(t *testing.T) {
	tests := map[int]string{
		0:   "",
		1:   "A",
		2:   "B",
		26:  "Z",
		27:  "AA",
		52:  "AZ",
		53:  "BA",
		702: "ZZ",
		703: "AAA",
	}
	for col, want := range tests {
		assert.Equal(t, want, ColumnLetter(col), "col=%d", col)
	}
}

func TestRangeA1(t *testing.T) {
	tests := []struct {
		name string
		rng  Range
		want string
	}{
		{name: "cell", rng: Cell("Players", 1, 1), want: "'Players'!A1"},
		{name: "row", rng: Row("25-01-02#10-00-00", 6, 2, 4), want: "'25-01-02#10-00-00'!B6:D6"},
		{name: "column", rng: Column("Players", 1), want: "'Players'!A1:A"},
		{name: "block", rng: Block("users", 2, 1, 10, 2), want: "'users'!A2:B10"},
		{name: "whole", rng: Whole("users"), want: "'users'"},
		{name: "quote", rng: Cell("Bob's", 1, 1), want: "'Bob''s'!A1"},
		{name: "first worksheet", rng: Cell("", 3, 2), want: "B3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rng.A1())
		})
	}
}
