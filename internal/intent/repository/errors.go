package repository

import "errors"

var (
	ErrFailedToOpen   = errors.New("failed to open storage")
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToList   = errors.New("failed to list records")
)
