package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/dashboard/internal/entity"
	"github.com/samandr77/microservices/dashboard/internal/repository"
	"github.com/samandr77/microservices/dashboard/pkg/postgres"
)

type slotStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

func testSlotStore(t *testing.T, store slotStore) {
	t.Helper()

	ctx := context.Background()
	key := "slot-" + uuid.Must(uuid.NewV4()).String()

	_, err := store.Get(ctx, key)
	require.ErrorIs(t, err, entity.ErrNotFound)

	require.NoError(t, store.Set(ctx, key, "first"))
	require.NoError(t, store.Set(ctx, key, "second"))

	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	require.Equal(t, "second", got)

	require.NoError(t, store.Delete(ctx, key))
	require.NoError(t, store.Delete(ctx, key))

	_, err = store.Get(ctx, key)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestMemorySlots(t *testing.T) {
	t.Parallel()

	testSlotStore(t, repository.NewMemorySlots())
}

func TestSlotRepository(t *testing.T) {
	t.Parallel()

	testSlotStore(t, repository.New(dbPool(t)))
}

func TestUserRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := repository.NewUserRepository()

	u, err := repo.UserByEmail(ctx, "indah.sari@university.ac.id")
	require.NoError(t, err)
	require.Equal(t, entity.RoleWakilDekan2, u.Role)

	_, err = repo.UserByEmail(ctx, "INDAH.SARI@university.ac.id")
	require.ErrorIs(t, err, entity.ErrNotFound)

	u, err = repo.UserByRole(ctx, entity.RoleTendik)
	require.NoError(t, err)
	require.Equal(t, "Siti Nurhaliza, S.Kom.", u.Name)

	users := repo.Users(ctx)
	require.Len(t, users, len(entity.Roles))

	emails := map[string]bool{}
	for _, u := range users {
		require.False(t, emails[u.Email])
		emails[u.Email] = true
	}

	users[0].Permissions[0].Actions[0] = entity.PermissionDelete
	again, err := repo.UserByEmail(ctx, users[0].Email)
	require.NoError(t, err)
	require.Equal(t, entity.PermissionRead, again.Permissions[0].Actions[0])
}

func TestFileRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := repository.NewFileRepository(repository.SeedFiles()...)

	dosen := repo.ListFiles(ctx, entity.RoleDosen)
	require.Len(t, dosen, 2)
	require.Equal(t, "Laporan Penelitian Q1 2024.pdf", dosen[0].Name)

	require.Empty(t, repo.ListFiles(ctx, entity.RoleWakilDekan2))

	rec := entity.FileRecord{
		ID:         uuid.Must(uuid.NewV4()),
		Name:       "Proposal.docx",
		Type:       "docx",
		Size:       42,
		UploadedAt: time.Now(),
		Role:       entity.RoleDosen,
		FolderID:   "penelitian",
	}

	require.NoError(t, repo.Insert(ctx, rec))

	dosen = repo.ListFiles(ctx, entity.RoleDosen)
	require.Len(t, dosen, 3)
	require.Equal(t, rec, dosen[2])

	got, err := repo.FileByID(ctx, rec.ID)
	require.NoError(t, err)
	require.Equal(t, rec, got)

	removed, err := repo.Remove(ctx, rec.ID)
	require.NoError(t, err)
	require.Equal(t, rec, removed)

	_, err = repo.Remove(ctx, rec.ID)
	require.ErrorIs(t, err, entity.ErrFileNotFound)

	_, err = repo.FileByID(ctx, rec.ID)
	require.ErrorIs(t, err, entity.ErrNotFound)
	require.Len(t, repo.ListFiles(ctx, entity.RoleDosen), 2)
}

func TestBlobRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := repository.NewBlobRepository()
	now := time.Now()

	old := entity.Blob{FileID: uuid.Must(uuid.NewV4()), Name: "old.pdf", Data: []byte("a"), CreatedAt: now.Add(-time.Hour)}
	fresh := entity.Blob{FileID: uuid.Must(uuid.NewV4()), Name: "fresh.pdf", Data: []byte("b"), CreatedAt: now}

	require.NoError(t, repo.SaveBlob(ctx, old))
	require.NoError(t, repo.SaveBlob(ctx, fresh))

	n, err := repo.DeleteBlobsOlderThan(ctx, now.Add(-time.Minute))
	require.NoError(t, err)
	require.Equal(t, 1, n)

	_, err = repo.BlobByFileID(ctx, old.FileID)
	require.ErrorIs(t, err, entity.ErrBlobNotFound)

	got, err := repo.BlobByFileID(ctx, fresh.FileID)
	require.NoError(t, err)
	require.Equal(t, fresh, got)

	require.NoError(t, repo.DeleteBlob(ctx, fresh.FileID))

	_, err = repo.BlobByFileID(ctx, fresh.FileID)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func dbPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	require.NoError(t, postgres.UpMigrations(context.Background(), dsn))

	pool, err := postgres.Connect(context.Background(), dsn, 10)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}
