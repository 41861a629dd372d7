package contacts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/saracafe/saracafe-backend/pkg/db/models"
)

func setupContactsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file:contactsrepo?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, conn.Migrator().DropTable(&models.Contact{}))
	require.NoError(t, conn.AutoMigrate(&models.Contact{}))
	return conn
}

func TestRepositoryMarkRead(t *testing.T) {
	conn := setupContactsTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	first := &models.Contact{Name: "A", Email: "a@example.com", Message: "hi"}
	second := &models.Contact{Name: "B", Email: "b@example.com", Message: "hi"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	unread, err := repo.CountUnread(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, unread)

	require.NoError(t, repo.MarkRead(ctx, []int64{first.ID}))

	unread, err = repo.CountUnread(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, unread)

	loaded, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	require.True(t, loaded.IsRead)
}

func TestRepositoryMarkReadEmptyIsNoop(t *testing.T) {
	conn := setupContactsTestDB(t)
	repo := NewRepository(conn)

	require.NoError(t, repo.MarkRead(context.Background(), nil))
}

func TestRepositoryListNewestFirst(t *testing.T) {
	conn := setupContactsTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, &models.Contact{
			Name: name, Email: name + "@example.com", Message: "hi",
		}))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "third", list[0].Name)
	require.Equal(t, "first", list[2].Name)
}
