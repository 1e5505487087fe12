package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalStore_SaveAndDelete(t *testing.T) {
	root := t.TempDir()
	store := NewLocalStore(root, "/media/")
	ctx := context.Background()

	err := store.Save(ctx, "resumes/abc.pdf", strings.NewReader("resume body"), "application/pdf")
	assert.NoError(t, err)

	b, err := os.ReadFile(filepath.Join(root, "resumes", "abc.pdf"))
	assert.NoError(t, err)
	assert.Equal(t, "resume body", string(b))

	assert.Equal(t, "/media/resumes/abc.pdf", store.URL("resumes/abc.pdf"))

	assert.NoError(t, store.Delete(ctx, "resumes/abc.pdf"))
	_, err = os.Stat(filepath.Join(root, "resumes", "abc.pdf"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStore_DeleteMissingKeyIsNoop(t *testing.T) {
	store := NewLocalStore(t.TempDir(), "/media")
	assert.NoError(t, store.Delete(context.Background(), "resumes/never-stored.pdf"))
}
