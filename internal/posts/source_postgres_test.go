package posts

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresSource_Fetch(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(selectDocument)).
		WithArgs("posts").
		WillReturnRows(sqlmock.NewRows([]string{"body"}).AddRow([]byte(postsBody)))

	got, err := NewPostgresSource(db, "posts").Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Rust Intro", got[1].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSource_Fetch_NoDocument(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(selectDocument)).
		WithArgs("posts").
		WillReturnRows(sqlmock.NewRows([]string{"body"}))

	_, err = NewPostgresSource(db, "posts").Fetch(context.Background())
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 404, le.StatusCode)
	assert.Equal(t, "postgres", le.Source)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSource_Fetch_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("connection reset")
	mock.ExpectQuery(regexp.QuoteMeta(selectDocument)).WithArgs("posts").WillReturnError(boom)

	_, err = NewPostgresSource(db, "posts").Fetch(context.Background())
	require.Error(t, err)
	assert.True(t, IsLoadError(err))
	assert.ErrorIs(t, err, boom)
}

func TestPostgresSource_Fetch_InvalidBody(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(selectDocument)).
		WithArgs("posts").
		WillReturnRows(sqlmock.NewRows([]string{"body"}).AddRow([]byte(`{"posts": []}`)))

	_, err = NewPostgresSource(db, "posts").Fetch(context.Background())
	assert.True(t, IsLoadError(err))
}

func TestPostgresSource_Ping(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing()
	assert.NoError(t, Ping(context.Background(), NewPostgresSource(db, "posts")))
	assert.NoError(t, mock.ExpectationsWereMet())
}
