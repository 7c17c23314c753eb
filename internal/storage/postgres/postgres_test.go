package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maheshmeenabalot/chat-app-backend/internal/models"
	"github.com/maheshmeenabalot/chat-app-backend/internal/storage"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestConversationStoreCreateSortsPair(t *testing.T) {
	db, mock := newMock(t)
	s := NewConversationStore(db)

	now := time.Now()
	// "zoe" and "adam" must be inserted in sorted order regardless of the
	// argument order.
	mock.ExpectQuery(`INSERT INTO conversations`).
		WithArgs("adam", "zoe").
		WillReturnRows(sqlmock.NewRows([]string{"id", "participant1_id", "participant2_id", "created_at"}).
			AddRow("c1", "adam", "zoe", now))

	conv, err := s.Create(context.Background(), "zoe", "adam")
	require.NoError(t, err)
	assert.Equal(t, "c1", conv.ID)
	assert.Equal(t, [2]string{"adam", "zoe"}, conv.Members)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationStoreGetBetween(t *testing.T) {
	db, mock := newMock(t)
	s := NewConversationStore(db)

	mock.ExpectQuery(`SELECT id, participant1_id, participant2_id, created_at`).
		WithArgs("u1", "u2").
		WillReturnRows(sqlmock.NewRows([]string{"id", "participant1_id", "participant2_id", "created_at"}).
			AddRow("c1", "u1", "u2", time.Now()))

	conv, err := s.GetBetween(context.Background(), "u2", "u1")
	require.NoError(t, err)
	assert.Equal(t, "c1", conv.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationStoreGetByIDNotFound(t *testing.T) {
	db, mock := newMock(t)
	s := NewConversationStore(db)

	mock.ExpectQuery(`SELECT id, participant1_id, participant2_id, created_at`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := s.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrConversationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationStoreListForUser(t *testing.T) {
	db, mock := newMock(t)
	s := NewConversationStore(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT id, participant1_id, participant2_id, created_at`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "participant1_id", "participant2_id", "created_at"}).
			AddRow("c1", "u1", "u2", now).
			AddRow("c2", "u1", "u3", now))

	convs, err := s.ListForUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, convs, 2)
	assert.Equal(t, "c1", convs[0].ID)
	assert.Equal(t, "c2", convs[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageStoreAppend(t *testing.T) {
	db, mock := newMock(t)
	s := NewMessageStore(db)

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO messages`).
		WithArgs("c1", "u1", "hello").
		WillReturnRows(sqlmock.NewRows([]string{"id", "conversation_id", "sender_id", "content", "created_at"}).
			AddRow("m1", "c1", "u1", "hello", now))

	msg, err := s.Append(context.Background(), "c1", "u1", "hello")
	require.NoError(t, err)
	assert.Equal(t, "m1", msg.ID)
	assert.Equal(t, "c1", msg.ConversationID)
	assert.Equal(t, "hello", msg.Text)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageStoreListByConversation(t *testing.T) {
	db, mock := newMock(t)
	s := NewMessageStore(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT id, conversation_id, sender_id, content, created_at`).
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "conversation_id", "sender_id", "content", "created_at"}).
			AddRow("m1", "c1", "u1", "first", now).
			AddRow("m2", "c1", "u2", "second", now.Add(time.Second)))

	msgs, err := s.ListByConversation(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "first", msgs[0].Text)
	assert.Equal(t, "second", msgs[1].Text)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserStoreGetByEmailNotFound(t *testing.T) {
	db, mock := newMock(t)
	s := NewUserStore(db)

	mock.ExpectQuery(`SELECT id, full_name, email, password, session_token`).
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := s.GetByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserStoreCreate(t *testing.T) {
	db, mock := newMock(t)
	s := NewUserStore(db)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Ada Lovelace", "ada@example.com", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("u1"))

	u := &models.User{FullName: "Ada Lovelace", Email: "ada@example.com", Password: "hash"}
	require.NoError(t, s.Create(context.Background(), u))
	assert.Equal(t, "u1", u.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserStoreSetSessionTokenNotFound(t *testing.T) {
	db, mock := newMock(t)
	s := NewUserStore(db)

	mock.ExpectExec(`UPDATE users SET session_token`).
		WithArgs("missing", "tok").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.SetSessionToken(context.Background(), "missing", "tok")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
