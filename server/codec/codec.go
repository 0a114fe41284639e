package codec

import (
	"fmt"

	hashids "github.com/speps/go-hashids/v2"
)

// Hashid is a reversible mapping between internal integer ids and the opaque
// public ids that travel on the wire. The same salted permutation covers
// room and user ids.
type Hashid struct {
	h *hashids.HashID
}

func New(salt string, minLength int) (*Hashid, error) {
	data := hashids.NewData()
	data.Salt = salt
	data.MinLength = minLength
	h, err := hashids.NewWithData(data)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize hashid codec: %w", err)
	}
	return &Hashid{h: h}, nil
}

func (c *Hashid) Encode(id int) (string, error) {
	if id < 0 {
		return "", fmt.Errorf("cannot encode negative id %d", id)
	}
	encoded, err := c.h.Encode([]int{id})
	if err != nil {
		return "", fmt.Errorf("failed to encode id %d: %w", id, err)
	}
	return encoded, nil
}

func (c *Hashid) Decode(publicID string) (int, error) {
	ids, err := c.h.DecodeWithError(publicID)
	if err != nil {
		return 0, fmt.Errorf("failed to decode public id %q: %w", publicID, err)
	}
	if len(ids) != 1 {
		return 0, fmt.Errorf("malformed public id %q", publicID)
	}
	return ids[0], nil
}
