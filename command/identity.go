package command

import "github.com/google/uuid"

// CLSIDDiskBenchCommand is the canonical id of the command,
// {33560014-F9AA-43E9-83E3-3F58B9F03810}. It distinguishes this command from
// every other command a host might enumerate.
var CLSIDDiskBenchCommand = uuid.MustParse("33560014-f9aa-43e9-83e3-3f58b9f03810")

// Interface ids recognized by the capability queries.
var (
	IIDUnknown         = uuid.MustParse("00000000-0000-0000-c000-000000000046")
	IIDClassFactory    = uuid.MustParse("00000001-0000-0000-c000-000000000046")
	IIDExplorerCommand = uuid.MustParse("a08ce4d0-fa25-44ab-b57c-c7b1c323e0b9")
)
