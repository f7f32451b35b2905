package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Node struct {
	ID             int
	UniqueID       uuid.UUID
	NodeObjectType uuid.UUID
	ParentID       int
	Path           string
	Level          int
	SortOrder      int
	Trashed        bool
	Text           sql.NullString
	NodeUser       sql.NullInt32
	CreateDate     time.Time
}
