package pagination

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidToken indicates that a page token could not be decoded.
var ErrInvalidToken = errors.New("invalid page token")

// Cursor marks a position in a (created_at DESC, id DESC) ordered result set.
type Cursor struct {
	CreatedAt time.Time
	ID        int64
}

// EncodeToken encodes a cursor as an opaque continuation token.
// The payload is "unixNano:id" in unpadded URL-safe base64; callers must not
// rely on the format.
func EncodeToken(c Cursor) string {
	payload := fmt.Sprintf("%d:%d", c.CreatedAt.UnixNano(), c.ID)
	return base64.RawURLEncoding.EncodeToString([]byte(payload))
}

// DecodeToken decodes a continuation token produced by EncodeToken.
// Returns ErrInvalidToken for anything that was not produced by EncodeToken.
func DecodeToken(token string) (Cursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	parts := strings.SplitN(string(raw), ":", 2)
	if len(parts) != 2 {
		return Cursor{}, ErrInvalidToken
	}

	nanos, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if id < 1 {
		return Cursor{}, ErrInvalidToken
	}

	return Cursor{CreatedAt: time.Unix(0, nanos).UTC(), ID: id}, nil
}
