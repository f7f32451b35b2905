package entity

import "github.com/google/uuid"

// IDReservedEvent is published after an id reservation commits.
type IDReservedEvent struct {
	Key uuid.UUID
	ID  int
}

func NewIDReservedEvent(key uuid.UUID, id int) *IDReservedEvent {
	return &IDReservedEvent{Key: key, ID: id}
}
