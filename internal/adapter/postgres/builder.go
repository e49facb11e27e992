package postgres

import "github.com/Masterminds/squirrel"

// Builder is the shared squirrel statement builder with PostgreSQL
// placeholders. Repositories build all their SQL through it.
var Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
