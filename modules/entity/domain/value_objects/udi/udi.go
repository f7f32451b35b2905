// Package udi implements the composite identifier that embeds an entity's
// kind next to its key, e.g. umb://document/3a841b0727a14e2ab3c4220ef4a52f29.
package udi

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/kanansalman/Umbraco-CMS/modules/entity/domain/entities/entity"
)

const scheme = "umb://"

var (
	ErrMalformed = errors.New("malformed udi")
)

// Udi is a self-describing external identifier: entity kind plus key.
type Udi struct {
	entityType entity.EntityType
	key        uuid.UUID
}

func New(entityType entity.EntityType, key uuid.UUID) (Udi, error) {
	if _, err := entity.ObjectTypeOf(entityType); err != nil {
		return Udi{}, err
	}
	return Udi{entityType: entityType, key: key}, nil
}

func Parse(raw string) (Udi, error) {
	rest, ok := strings.CutPrefix(raw, scheme)
	if !ok {
		return Udi{}, errors.Wrapf(ErrMalformed, "%q has no %s scheme", raw, scheme)
	}
	entityType, keyPart, ok := strings.Cut(rest, "/")
	if !ok || entityType == "" || keyPart == "" {
		return Udi{}, errors.Wrapf(ErrMalformed, "%q", raw)
	}
	key, err := uuid.Parse(keyPart)
	if err != nil {
		return Udi{}, errors.Wrapf(ErrMalformed, "%q: bad key", raw)
	}
	return New(entity.EntityType(entityType), key)
}

func (u Udi) EntityType() entity.EntityType {
	return u.entityType
}

func (u Udi) Key() uuid.UUID {
	return u.key
}

func (u Udi) String() string {
	return scheme + string(u.entityType) + "/" + strings.ReplaceAll(u.key.String(), "-", "")
}
