package repository

import (
	"regexp"
	"strings"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock
}

// sqlPattern matches consecutive SQL lines regardless of the whitespace
// between them.
func sqlPattern(lines ...string) string {
	quoted := make([]string, len(lines))
	for i, l := range lines {
		quoted[i] = regexp.QuoteMeta(l)
	}
	return strings.Join(quoted, `\s+`)
}

func nopLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

func TestStatement_BindNumbersFromArgumentCount(t *testing.T) {
	q := newStatement("SELECT 1")

	require.Equal(t, "$1", q.bind("a"))
	q.add("GROUP BY 1")
	q.addBound("LIMIT %s", 3)

	require.Equal(t, "SELECT 1\nGROUP BY 1\nLIMIT $2", q.String())
	require.Equal(t, []any{"a", 3}, q.args)
}
