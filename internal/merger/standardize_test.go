package merger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardizeColumnName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Name", "name"},
		{"  First Name  ", "first_name"},
		{"Price ($)", "price"},
		{"Unnamed: 0", "unnamed_0"},
		{"order__id", "order_id"},
		{"Total   Amount\t(EUR)", "total_amount_eur"},
		{"", "unnamed_column"},
		{"   ", "unnamed_column"},
		{"###", "unnamed_column"},
		{"__already_trimmed__", "already_trimmed"},
		{"ABC123", "abc123"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, standardizeColumnName(tc.in), "input %q", tc.in)
	}
}

func TestStandardizeColumnNameIdempotent(t *testing.T) {
	inputs := []string{"Name", "Price ($)", "Unnamed: 0", "", "a b c", "x__y"}
	for _, in := range inputs {
		once := standardizeColumnName(in)
		assert.Equal(t, once, standardizeColumnName(once), "input %q", in)
	}
}

func TestResolveCollisions(t *testing.T) {
	got := resolveCollisions([]string{"name", "name", "name"})
	assert.Equal(t, []string{"name", "name_1", "name_2"}, got)
}

func TestResolveCollisionsWithLiteralSuffix(t *testing.T) {
	// A later literal "a_1" must not collide with the suffix assigned to the
	// second "a".
	got := resolveCollisions([]string{"a", "a", "a_1"})
	assert.Equal(t, []string{"a", "a_1", "a_1_1"}, got)
}

func TestResolveCollisionsKeepsProvenance(t *testing.T) {
	got := resolveCollisions([]string{"name", SourceFileColumn, "name"})
	assert.Equal(t, []string{"name", SourceFileColumn, "name_1"}, got)
}

func TestResolveCollisionsUniqueForAnyMultiset(t *testing.T) {
	inputs := [][]string{
		{"a", "a", "a", "a_1", "a_2", "a"},
		{"x", "x_1", "x", "x_1_1", "x"},
		{"unnamed_column", "unnamed_column", "unnamed_column"},
	}
	for _, in := range inputs {
		out := resolveCollisions(in)
		seen := make(map[string]struct{}, len(out))
		for _, name := range out {
			_, dup := seen[name]
			assert.False(t, dup, "duplicate %q in %v", name, out)
			seen[name] = struct{}{}
		}
	}
}
