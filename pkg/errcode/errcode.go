package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Table errors
	SchemaMissingColumnError
	SchemaDuplicateColumnError
	SchemaMismatchError

	// Input errors
	ReadInputError
	MalformedRowError
	MissingPathError
	DuplicatePathError
	UnknownFormatError
	InvalidPlanError
	CancelledError

	// Output errors
	CreateOutputError
	WriteOutputError

	// BioMart errors
	BioMartRequestError
	BioMartResponseError
	BioMartWriteError
)
