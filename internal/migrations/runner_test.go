package migrations

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingExecer struct {
	executed []string
	failOn   int
	err      error
}

func (r *recordingExecer) Exec(_ context.Context, sql string) error {
	if r.err != nil && len(r.executed) == r.failOn {
		return r.err
	}
	r.executed = append(r.executed, sql)
	return nil
}

func TestRun_AppliesStatementsInOrder(t *testing.T) {
	ex := &recordingExecer{}

	require.NoError(t, Run(context.Background(), ex, Initial))

	require.Len(t, ex.executed, len(Initial.Statements))
	for i, stmt := range Initial.Statements {
		assert.Equal(t, stmt.SQL, ex.executed[i])
	}
}

func TestRun_StopsAtFirstFailure(t *testing.T) {
	boom := errors.New("syntax error")
	ex := &recordingExecer{failOn: 2, err: boom}

	err := Run(context.Background(), ex, Initial)

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), Initial.Statements[2].Name)
	// earlier statements stay applied, nothing after the failure runs
	assert.Len(t, ex.executed, 2)
}

func TestScripts_AreRerunnable(t *testing.T) {
	for _, script := range All {
		for _, stmt := range script.Statements {
			sql := strings.ToUpper(strings.TrimSpace(stmt.SQL))
			assert.Contains(t, sql, "IF NOT EXISTS", "%s/%s is not guarded", script.Name, stmt.Name)
			assert.NotContains(t, sql, "DROP ", "%s/%s is destructive", script.Name, stmt.Name)
		}
	}
}

func TestScripts_UniqueStatementNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, script := range All {
		for _, stmt := range script.Statements {
			key := script.Name + "/" + stmt.Name
			assert.False(t, seen[key], "duplicate statement %s", key)
			seen[key] = true
		}
	}
}

func TestInitial_DoesNotCreateCommentReactions(t *testing.T) {
	for _, stmt := range Initial.Statements {
		assert.NotContains(t, stmt.SQL, "comment_reactions")
	}
	assert.Contains(t, CommentReactions.Statements[0].SQL, "CREATE TABLE IF NOT EXISTS comment_reactions")
}

func TestSchema_CascadesAndConstraints(t *testing.T) {
	assert.Contains(t, createCommentsTable, "REFERENCES posts(id) ON DELETE CASCADE")
	assert.Contains(t, createReactionsTable, "REFERENCES posts(id) ON DELETE CASCADE")
	assert.Contains(t, createReactionsTable, "UNIQUE (post_id, user_id, type)")
	assert.Contains(t, createCommentReactionsTable, "REFERENCES comments(id) ON DELETE CASCADE")
	assert.Contains(t, createCommentReactionsTable, "UNIQUE (comment_id, user_id, type)")
	assert.Contains(t, createMessagesTable, "sender_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE")
	assert.Contains(t, createMessagesTable, "receiver_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE")
	assert.NotContains(t, createReportsTable, "REFERENCES")
	assert.NotContains(t, createReportsTable, "CHECK")
}
