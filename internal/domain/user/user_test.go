package user

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"preparos/internal/shared/authorization"
)

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "h:" + password, nil }

func (plainHasher) Verify(password, hash string) error {
	if hash != "h:"+password {
		return fmt.Errorf("mismatch")
	}
	return nil
}

func TestNewUser(t *testing.T) {
	u, err := NewUser(" Tesouraria@Example.org ", "s3nha-forte", authorization.RoleAdmin, plainHasher{})
	require.NoError(t, err)

	assert.Equal(t, "tesouraria@example.org", u.Email())
	assert.NotEqual(t, uuid.Nil, u.ID())
	assert.NoError(t, u.VerifyPassword("s3nha-forte", plainHasher{}))
	assert.Error(t, u.VerifyPassword("errada", plainHasher{}))

	_, err = NewUser("not-an-email", "s3nha-forte", authorization.RoleMember, plainHasher{})
	assert.Error(t, err)

	_, err = NewUser("a@b.org", "curta", authorization.RoleMember, plainHasher{})
	assert.Error(t, err)

	_, err = NewUser("a@b.org", "s3nha-forte", "owner", plainHasher{})
	assert.Error(t, err)
}

func TestNewSession(t *testing.T) {
	s, err := NewSession(uuid.New(), authorization.RoleMember, "127.0.0.1", "test", time.Hour)
	require.NoError(t, err)
	assert.Len(t, s.ID, 64)
	assert.False(t, s.IsExpired())

	_, err = NewSession(uuid.Nil, authorization.RoleMember, "", "", time.Hour)
	assert.Error(t, err)
}
