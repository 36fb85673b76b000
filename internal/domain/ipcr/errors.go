package ipcr

import "errors"

var (
	ErrFormNotFound    = errors.New("ipcr form not found")
	ErrSectionNotFound = errors.New("section not found")
	ErrRowNotFound     = errors.New("indicator row not found")
	ErrFileNotFound    = errors.New("mov file not found")
	ErrUnknownEditOp   = errors.New("unknown edit operation")
)
