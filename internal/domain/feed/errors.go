package feed

import "errors"

var (
	ErrMessageNotFound    = errors.New("message not found")
	ErrGroupRequired      = errors.New("group is required")
	ErrTitleRequired      = errors.New("title is required")
	ErrTableIDRequired    = errors.New("inscription table id is required")
	ErrUnknownMessageType = errors.New("unknown message type")
)
