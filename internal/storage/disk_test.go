package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advocacia-backend/internal/model"
)

func newTestDiskStore(t *testing.T) *DiskStore {
	t.Helper()
	store := NewDiskStore(t.TempDir())
	require.NoError(t, store.Init())
	return store
}

func TestDiskStorePetitionsNewestFirst(t *testing.T) {
	store := newTestDiskStore(t)

	first, err := store.AddPetition("Primeira", "conteúdo 1")
	require.NoError(t, err)
	second, err := store.AddPetition("Segunda", "conteúdo 2")
	require.NoError(t, err)

	records, err := store.GetAllPetitions()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, second.ID, records[0].ID)
	assert.Equal(t, first.ID, records[1].ID)
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.SavedAt.IsZero())
}

func TestDiskStoreUpdatePetitionPartialFields(t *testing.T) {
	store := newTestDiskStore(t)

	rec, err := store.AddPetition("Título", "conteúdo")
	require.NoError(t, err)

	newTitle := "Título revisado"
	require.NoError(t, store.UpdatePetition(rec.ID, &newTitle, nil))

	records, err := store.GetAllPetitions()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Título revisado", records[0].Title)
	assert.Equal(t, "conteúdo", records[0].Content)
}

func TestDiskStoreUpdateMissingIDIsNoOp(t *testing.T) {
	store := newTestDiskStore(t)

	_, err := store.AddPetition("Título", "conteúdo")
	require.NoError(t, err)

	newTitle := "outro"
	require.NoError(t, store.UpdatePetition("inexistente", &newTitle, nil))

	records, err := store.GetAllPetitions()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Título", records[0].Title)
}

func TestDiskStoreDeleteRemovesExactlyOne(t *testing.T) {
	store := newTestDiskStore(t)

	a, err := store.AddQuery("A", "a")
	require.NoError(t, err)
	b, err := store.AddQuery("B", "b")
	require.NoError(t, err)
	c, err := store.AddQuery("C", "c")
	require.NoError(t, err)

	require.NoError(t, store.DeleteQuery(b.ID))

	records, err := store.GetAllQueries()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, c.ID, records[0].ID)
	assert.Equal(t, a.ID, records[1].ID)
}

func TestDiskStoreDeleteMissingIDKeepsAll(t *testing.T) {
	store := newTestDiskStore(t)

	_, err := store.AddQuery("A", "a")
	require.NoError(t, err)

	require.NoError(t, store.DeleteQuery("inexistente"))

	records, err := store.GetAllQueries()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestDiskStoreCorruptedFileTreatedAsEmpty(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStore(dir)
	require.NoError(t, store.Init())

	require.NoError(t, os.WriteFile(filepath.Join(dir, petitionsFile), []byte("{broken"), 0644))

	records, err := store.GetAllPetitions()
	require.NoError(t, err)
	assert.Empty(t, records)

	// Writing on top of a corrupted file recovers the collection.
	_, err = store.AddPetition("Nova", "conteúdo")
	require.NoError(t, err)
	records, err = store.GetAllPetitions()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestDiskStorePostsRoundTrip(t *testing.T) {
	store := newTestDiskStore(t)

	post := model.PostResult{
		PostContent: model.PostContent{
			Title:       "Aviso prévio",
			Subtitle:    "Direitos na demissão",
			Copy:        "O aviso prévio é proporcional ao tempo de serviço.",
			Hashtags:    []string{"#trabalhista"},
			SEOKeywords: []string{"aviso prévio"},
		},
		ImageURLWithText:    "data:image/png;base64,AAAA",
		ImageURLWithoutText: "data:image/png;base64,BBBB",
	}

	rec, err := store.AddPost(post)
	require.NoError(t, err)

	records, err := store.GetAllPosts()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, rec.ID, records[0].ID)
	assert.Equal(t, post, records[0].Post)

	updated := post
	updated.PostContent.Title = "Aviso prévio indenizado"
	require.NoError(t, store.UpdatePost(rec.ID, &updated))

	records, err = store.GetAllPosts()
	require.NoError(t, err)
	assert.Equal(t, "Aviso prévio indenizado", records[0].Post.PostContent.Title)
}

func TestDiskStorePersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	store := NewDiskStore(dir)
	require.NoError(t, store.Init())
	_, err := store.AddPetition("Persistente", "conteúdo")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened := NewDiskStore(dir)
	require.NoError(t, reopened.Init())
	records, err := reopened.GetAllPetitions()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Persistente", records[0].Title)
}
