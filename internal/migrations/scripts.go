package migrations

// Statement is a single DDL statement executed on its own.
type Statement struct {
	Name string
	SQL  string
}

// Script is an ordered, self-contained set of statements. Scripts never share
// a transaction; a failing statement leaves earlier ones applied.
type Script struct {
	Name       string
	Statements []Statement
}

func index(name, table, columns string) Statement {
	return Statement{
		Name: name,
		SQL:  "CREATE INDEX IF NOT EXISTS " + name + " ON " + table + " (" + columns + ")",
	}
}

func addColumn(table, column, definition string) Statement {
	return Statement{
		Name: table + "." + column,
		SQL:  "ALTER TABLE " + table + " ADD COLUMN IF NOT EXISTS " + column + " " + definition,
	}
}

// Initial is the main schema migration.
var Initial = Script{
	Name: "initial",
	Statements: []Statement{
		{Name: "extension pgcrypto", SQL: enablePgcrypto},
		{Name: "table users", SQL: createUsersTable},
		{Name: "table addictions", SQL: createAddictionsTable},
		{Name: "table user_addictions", SQL: createUserAddictionsTable},
		{Name: "table sobriety_logs", SQL: createSobrietyLogsTable},
		{Name: "table craving_logs", SQL: createCravingLogsTable},
		{Name: "table mood_logs", SQL: createMoodLogsTable},
		{Name: "table posts", SQL: createPostsTable},
		{Name: "table comments", SQL: createCommentsTable},
		{Name: "table reactions", SQL: createReactionsTable},
		{Name: "table messages", SQL: createMessagesTable},
		{Name: "table reports", SQL: createReportsTable},
		{Name: "table system_logs", SQL: createSystemLogsTable},
		index("idx_user_addictions_user_id", "user_addictions", "user_id"),
		index("idx_sobriety_logs_user_addiction_date", "sobriety_logs", "user_addiction_id, date"),
		index("idx_craving_logs_user_id", "craving_logs", "user_id"),
		index("idx_craving_logs_logged_at", "craving_logs", "logged_at"),
		index("idx_mood_logs_user_id", "mood_logs", "user_id"),
		index("idx_mood_logs_logged_at", "mood_logs", "logged_at"),
		index("idx_posts_user_id", "posts", "user_id"),
		index("idx_posts_created_at", "posts", "created_at DESC"),
		index("idx_posts_deleted_at", "posts", "deleted_at"),
		index("idx_comments_post_id", "comments", "post_id"),
		index("idx_comments_user_id", "comments", "user_id"),
		index("idx_reactions_post_id", "reactions", "post_id"),
		index("idx_messages_sender_id", "messages", "sender_id"),
		index("idx_messages_receiver_id", "messages", "receiver_id"),
		index("idx_reports_status", "reports", "status"),
		index("idx_reports_created_at", "reports", "created_at DESC"),
		index("idx_system_logs_timestamp", "system_logs", "timestamp"),
		index("idx_system_logs_level", "system_logs", "level"),
	},
}

// ProfileFields adds the profile customisation columns to users.
var ProfileFields = Script{
	Name: "profile_fields",
	Statements: []Statement{
		addColumn("users", "avatar_id", "VARCHAR(50) NOT NULL DEFAULT ''"),
		addColumn("users", "avatar_color", "VARCHAR(20) NOT NULL DEFAULT ''"),
		addColumn("users", "avatar_url", "TEXT NOT NULL DEFAULT ''"),
		addColumn("users", "bio", "TEXT NOT NULL DEFAULT ''"),
		addColumn("users", "catchphrase", "VARCHAR(140) NOT NULL DEFAULT ''"),
		addColumn("users", "country", "VARCHAR(2) NOT NULL DEFAULT ''"),
		addColumn("users", "username_changed_at", "TIMESTAMPTZ"),
		{
			Name: "idx_users_username_active",
			SQL:  "CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username_active ON users (LOWER(username)) WHERE username IS NOT NULL AND deleted_at IS NULL",
		},
	},
}

// CommentReactions is the additive hotfix that introduced comment reactions.
var CommentReactions = Script{
	Name: "comment_reactions",
	Statements: []Statement{
		{Name: "table comment_reactions", SQL: createCommentReactionsTable},
		index("idx_comment_reactions_comment_id", "comment_reactions", "comment_id"),
	},
}

// All lists every script in the order a fresh database needs them.
var All = []Script{Initial, ProfileFields, CommentReactions}
