package sql

import "embed"

// Migrations holds the embedded DDL, applied in filename order.
//
//go:embed migrations/*.sql
var Migrations embed.FS

//go:embed queries/register_run.sql
var RegisterRun string

//go:embed queries/find_run_by_sha.sql
var FindRunBySHA string

//go:embed queries/delete_run.sql
var DeleteRun string

//go:embed queries/finish_run.sql
var FinishRun string

//go:embed queries/activate_run.sql
var ActivateRun string
