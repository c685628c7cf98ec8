package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedhaven/feedhaven/pkg/domain"
)

func TestCredentialRepository(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	cred := &domain.EmailCredential{
		Protocol: "imap",
		Server:   "imap.example.com",
		Port:     993,
		Username: "reader@example.com",
		Password: "secret",
	}

	t.Run("create assigns id", func(t *testing.T) {
		require.NoError(t, repos.Credential.CreateCredential(ctx, cred))
		assert.Positive(t, cred.ID)
	})

	t.Run("get returns stored credentials", func(t *testing.T) {
		creds, err := repos.Credential.GetCredentials(ctx)
		require.NoError(t, err)
		require.Len(t, creds, 1)
		assert.Equal(t, "imap.example.com", creds[0].Server)
		assert.Equal(t, 993, creds[0].Port)
		assert.Equal(t, "imap.example.com:993", creds[0].Addr())
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repos.Credential.DeleteCredential(ctx, cred.ID))
		creds, err := repos.Credential.GetCredentials(ctx)
		require.NoError(t, err)
		assert.Empty(t, creds)
	})

	t.Run("delete missing credential", func(t *testing.T) {
		err := repos.Credential.DeleteCredential(ctx, 999)
		assert.ErrorIs(t, err, domain.ErrCredentialNotFound)
	})
}
