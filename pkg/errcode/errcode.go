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

	// Configuration errors
	MissingConfigError
	UnknownBackendError

	// Service errors
	ServiceConnectionError
	ServiceNotConnectedError
	ServiceProbeError
	ServiceInsertError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBProbeError
	DBInsertError

	// CSV errors
	CSVOpenError
	CSVMissingHeaderError
	CSVReadError

	// Row errors
	RowMissingFieldError
	RowMalformedFieldError
	RowMalformedError

	// Import errors
	ImportCancelledError
)
