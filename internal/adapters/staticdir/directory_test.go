package staticdir

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusware/campus-admin/internal/domain/auth"
	apperrors "github.com/campusware/campus-admin/internal/errors"
	"github.com/campusware/campus-admin/internal/ports"
)

func TestDirectory_Verify(t *testing.T) {
	dir := New([]User{
		{Username: "amina", Password: "s3cret", DisplayName: "Amina Yusuf", Role: auth.RolePrincipal,
			Overrides: []auth.Permission{auth.PermissionReports}},
	})

	identity, err := dir.Verify(context.Background(), ports.Credentials{Username: "amina", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "amina", identity.ID)
	assert.Equal(t, auth.RolePrincipal, identity.Role)
	assert.Equal(t, []auth.Permission{auth.PermissionReports}, identity.Overrides)
}

func TestDirectory_VerifyFailures(t *testing.T) {
	dir := New([]User{{Username: "amina", Password: "s3cret", Role: auth.RolePrincipal}})

	tests := []struct {
		name string
		user string
		pass string
	}{
		{name: "wrong password", user: "amina", pass: "wrong"},
		{name: "unknown user", user: "nobody", pass: "s3cret"},
		{name: "empty username", user: "", pass: "s3cret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dir.Verify(context.Background(), ports.Credentials{Username: tt.user, Password: tt.pass})
			require.Error(t, err)
			assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidCredentials))
		})
	}
}

func TestNew_SkipsEmptyUsernames(t *testing.T) {
	dir := New([]User{{Username: "", Password: "x"}})

	_, err := dir.Verify(context.Background(), ports.Credentials{Username: "", Password: "x"})
	require.Error(t, err)
}
