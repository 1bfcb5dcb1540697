package db

import (
	_ "embed"
)

//go:embed sql/create_tables.sql
var CreateTablesSQL string

//go:embed sql/insert_trim.sql
var InsertTrimSQL string

//go:embed sql/select_trims.sql
var SelectTrimsSQL string

//go:embed sql/delete_trims.sql
var DeleteTrimsSQL string
