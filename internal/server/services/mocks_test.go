package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dmitrijs2005/taskhub/internal/dbx"
	"github.com/dmitrijs2005/taskhub/internal/server/models"
	chatsrepo "github.com/dmitrijs2005/taskhub/internal/server/repositories/chats"
	tasksrepo "github.com/dmitrijs2005/taskhub/internal/server/repositories/tasks"
	usersrepo "github.com/dmitrijs2005/taskhub/internal/server/repositories/users"
)

// --- helpers shared by service tests ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	getOut *models.User
	getErr error

	created *models.User
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.created = u
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	u.ID = 1
	return u, nil
}

func (f *fakeUsersRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeTasksRepo struct {
	createErr error
	listOut   []*models.Task
	listErr   error
	getOut    *models.Task
	getErr    error
	updateErr error
	deleteErr error

	created   *models.Task
	updated   *models.Task
	deletedID int64
}

func (f *fakeTasksRepo) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	f.created = task
	if f.createErr != nil {
		return nil, f.createErr
	}
	task.ID = 1
	return task, nil
}

func (f *fakeTasksRepo) ListByOwner(ctx context.Context, userID int64) ([]*models.Task, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeTasksRepo) GetByIDForUpdate(ctx context.Context, id int64) (*models.Task, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeTasksRepo) Update(ctx context.Context, task *models.Task) (*models.Task, error) {
	f.updated = task
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return task, nil
}

func (f *fakeTasksRepo) Delete(ctx context.Context, id int64) error {
	f.deletedID = id
	return f.deleteErr
}

type fakeChatsRepo struct {
	conv    *models.Conversation
	convErr error
	addErr  error

	messages []*models.Message
}

func (f *fakeChatsRepo) GetOrCreateConversation(ctx context.Context, userID int64) (*models.Conversation, error) {
	if f.convErr != nil {
		return nil, f.convErr
	}
	return f.conv, nil
}

func (f *fakeChatsRepo) AddMessage(ctx context.Context, msg *models.Message) (*models.Message, error) {
	if f.addErr != nil {
		return nil, f.addErr
	}
	f.messages = append(f.messages, msg)
	return msg, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	t *fakeTasksRepo
	c *fakeChatsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository      { return m.u }
func (m *fakeRepoManager) Tasks(db dbx.DBTX) tasksrepo.Repository      { return m.t }
func (m *fakeRepoManager) Chats(db dbx.DBTX) chatsrepo.Repository      { return m.c }
