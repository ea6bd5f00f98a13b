package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuannm99/novarow/internal/record"
)

func TestParse_Insert(t *testing.T) {
	stmt, err := Parse("insert 1 user1 person1@example.com")
	require.NoError(t, err)

	s, ok := stmt.(*InsertStmt)
	require.True(t, ok, "want *InsertStmt, got %T", stmt)
	assert.Equal(t, record.Row{ID: 1, Username: "user1", Email: "person1@example.com"}, s.Row)
}

func TestParse_Insert_KeywordCaseAndSpacing(t *testing.T) {
	stmt, err := Parse("  INSERT\t42   bob   bob@example.com  ")
	require.NoError(t, err)

	s, ok := stmt.(*InsertStmt)
	require.True(t, ok, "want *InsertStmt, got %T", stmt)
	assert.Equal(t, uint32(42), s.Row.ID)
	assert.Equal(t, "bob", s.Row.Username)
}

func TestParse_Insert_Syntax(t *testing.T) {
	cases := []string{
		"insert",
		"insert 1",
		"insert 1 user1",
		"insert 1 user1 a@b extra",
		"insert abc user1 a@b",
		"insert 1.5 user1 a@b",
		"insert 4294967296 user1 a@b",
	}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			require.ErrorIs(t, err, ErrSyntax)
		})
	}
}

func TestParse_Insert_IDBounds(t *testing.T) {
	_, err := Parse("insert -1 user1 a@b")
	require.ErrorIs(t, err, ErrNegativeID)

	stmt, err := Parse("insert 0 user1 a@b")
	require.NoError(t, err)
	assert.Equal(t, uint32(0), stmt.(*InsertStmt).Row.ID)

	stmt, err = Parse("insert 4294967295 user1 a@b")
	require.NoError(t, err)
	assert.Equal(t, uint32(4294967295), stmt.(*InsertStmt).Row.ID)
}

func TestParse_Insert_StringLength(t *testing.T) {
	t.Run("max lengths are accepted", func(t *testing.T) {
		_, err := Parse("insert 1 " + strings.Repeat("a", 32) + " " + strings.Repeat("b", 255))
		require.NoError(t, err)
	})

	t.Run("username too long", func(t *testing.T) {
		_, err := Parse("insert 1 " + strings.Repeat("a", 33) + " a@b")
		require.ErrorIs(t, err, ErrStringTooLong)

		_, err = Parse("insert 1 " + strings.Repeat("a", 40) + " a@b")
		require.ErrorIs(t, err, ErrStringTooLong)
	})

	t.Run("email too long", func(t *testing.T) {
		_, err := Parse("insert 1 user1 " + strings.Repeat("b", 256))
		require.ErrorIs(t, err, ErrStringTooLong)
	})
}

func TestParse_Select(t *testing.T) {
	stmt, err := Parse("select")
	require.NoError(t, err)
	_, ok := stmt.(*SelectStmt)
	require.True(t, ok, "want *SelectStmt, got %T", stmt)

	_, err = Parse("SELECT")
	require.NoError(t, err)

	_, err = Parse("select * from users")
	require.ErrorIs(t, err, ErrSyntax)
}

func TestParse_Unrecognized(t *testing.T) {
	for _, in := range []string{"", "   ", "update 1", "delete", "insertx 1 a b", "selectall"} {
		_, err := Parse(in)
		require.ErrorIs(t, err, ErrUnrecognizedStatement, "input %q", in)
	}
}

func TestParse_Insert_RejectsNulByte(t *testing.T) {
	for _, in := range []string{
		"insert 1 ab\x00cd e@x",
		"insert 1 ab e\x00@x",
	} {
		_, err := Parse(in)
		require.ErrorIs(t, err, ErrSyntax, "input %q", in)
		require.ErrorIs(t, err, record.ErrNulByte, "input %q", in)
	}
}
