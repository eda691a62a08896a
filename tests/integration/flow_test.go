//go:build integration
// +build integration

package integration_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"clipstream/internal/config"
	"clipstream/internal/domain"
	"clipstream/internal/repository"
	"clipstream/internal/service/mediahost"
	"clipstream/internal/service/video"
)

// Full lifecycle against real stores: create, scoped listing, a rejected
// foreign delete, then an owner delete that also reaches the media host.
func TestVideoLifecycle_Flow(t *testing.T) {
	env := SetupTestEnv(t)
	defer env.Teardown()

	ctx := context.Background()
	require.NoError(t, repository.EnsureIndexes(ctx, env.DB))

	var hostDeletes []string
	hostServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hostDeletes = append(hostDeletes, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer hostServer.Close()

	mediaHost := mediahost.NewService(&config.Config{
		ImageKitPrivateKey: "private_key",
		ImageKitPublicKey:  "public_key",
		ImageKitAPIBase:    hostServer.URL,
	})

	repo := repository.NewVideoRepository(env.DB)
	svc := video.NewService(repo, mediaHost)

	u1 := primitive.NewObjectID()
	u2 := primitive.NewObjectID()

	created, err := svc.Create(ctx, u1, domain.CreateVideoInput{
		Title:        "A",
		Description:  "d",
		VideoURL:     "https://ik.example.com/a.mp4",
		ThumbnailURL: "https://ik.example.com/a.jpg",
		FileID:       "file-a",
	})
	require.NoError(t, err)
	assert.Equal(t, u1, created.UserID)

	mine, err := svc.ListByOwner(ctx, u1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, created.ID, mine[0].ID)

	theirs, err := svc.ListByOwner(ctx, u2)
	require.NoError(t, err)
	assert.Empty(t, theirs)

	err = svc.Delete(ctx, created.ID, u2)
	assert.ErrorIs(t, err, video.ErrForbidden)

	still, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, still.ID)

	require.NoError(t, svc.Delete(ctx, created.ID, u1))
	assert.Equal(t, []string{"/v1/files/file-a"}, hostDeletes)

	empty, err := svc.ListByOwner(ctx, u1)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, video.ErrNotFound)
}
