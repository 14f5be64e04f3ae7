package models_test

import (
	"errors"
	"io/fs"
	"testing"

	"attachmentCrawler/domain/models"

	"github.com/stretchr/testify/assert"
)

func TestAttemptError(t *testing.T) {
	t.Run("matches its kind and cause", func(t *testing.T) {
		err := models.NewAttemptError(models.ErrWrite, "http://x.test/a.csv", fs.ErrPermission)

		assert.ErrorIs(t, err, models.ErrWrite)
		assert.ErrorIs(t, err, fs.ErrPermission)
		assert.NotErrorIs(t, err, models.ErrFetch)
		assert.Equal(t, "http://x.test/a.csv: write failed: permission denied", err.Error())
	})
	t.Run("without a cause", func(t *testing.T) {
		var err error = models.NewAttemptError(models.ErrHeaderMissing, "http://x.test/b", nil)

		var attemptErr *models.AttemptError
		assert.True(t, errors.As(err, &attemptErr))
		assert.Equal(t, "http://x.test/b", attemptErr.URL)
		assert.ErrorIs(t, err, models.ErrHeaderMissing)
		assert.Equal(t, "http://x.test/b: no content-disposition header", err.Error())
	})
}

func TestLinkList_Links(t *testing.T) {
	links := models.LinkList{"http://x.test/a.csv", "/rel"}.Links()

	assert.Equal(t, []models.Link{
		{Position: 0, Href: "http://x.test/a.csv"},
		{Position: 1, Href: "/rel"},
	}, links)
}
