package project

import (
	"context"
	"sync"

	"taskhub/internal/domain"
)

var (
	_ projectRepo = &projectRepoMock{}
	_ memberRepo  = &memberRepoMock{}
	_ taskRepo    = &taskRepoMock{}
	_ ledger      = &ledgerMock{}
	_ notifier    = &notifierMock{}
	_ txManager   = &txManagerMock{}
)

type projectRepoMock struct {
	CreateFunc      func(ctx context.Context, p *domain.Project) (*domain.Project, error)
	GetByIDFunc     func(ctx context.Context, id string) (*domain.Project, error)
	ListAllFunc     func(ctx context.Context) ([]domain.Project, error)
	ListForUserFunc func(ctx context.Context, userID int64, name, email string) ([]domain.Project, error)
	DeleteFunc      func(ctx context.Context, id string) error

	calls struct {
		Create      []struct{ P *domain.Project }
		GetByID     []struct{ ID string }
		ListAll     []struct{}
		ListForUser []struct {
			UserID int64
			Name   string
			Email  string
		}
		Delete []struct{ ID string }
	}
	lock sync.RWMutex
}

func (mock *projectRepoMock) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	if mock.CreateFunc == nil {
		panic("projectRepoMock.CreateFunc: method is nil but projectRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ P *domain.Project }{P: p})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *projectRepoMock) CreateCalls() []struct{ P *domain.Project } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *projectRepoMock) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	if mock.GetByIDFunc == nil {
		panic("projectRepoMock.GetByIDFunc: method is nil but projectRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID string }{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *projectRepoMock) GetByIDCalls() []struct{ ID string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *projectRepoMock) ListAll(ctx context.Context) ([]domain.Project, error) {
	if mock.ListAllFunc == nil {
		panic("projectRepoMock.ListAllFunc: method is nil but projectRepo.ListAll was just called")
	}
	mock.lock.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, struct{}{})
	mock.lock.Unlock()
	return mock.ListAllFunc(ctx)
}

func (mock *projectRepoMock) ListAllCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListAll
}

func (mock *projectRepoMock) ListForUser(ctx context.Context, userID int64, name, email string) ([]domain.Project, error) {
	if mock.ListForUserFunc == nil {
		panic("projectRepoMock.ListForUserFunc: method is nil but projectRepo.ListForUser was just called")
	}
	mock.lock.Lock()
	mock.calls.ListForUser = append(mock.calls.ListForUser, struct {
		UserID int64
		Name   string
		Email  string
	}{UserID: userID, Name: name, Email: email})
	mock.lock.Unlock()
	return mock.ListForUserFunc(ctx, userID, name, email)
}

func (mock *projectRepoMock) ListForUserCalls() []struct {
	UserID int64
	Name   string
	Email  string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListForUser
}

func (mock *projectRepoMock) Delete(ctx context.Context, id string) error {
	if mock.DeleteFunc == nil {
		panic("projectRepoMock.DeleteFunc: method is nil but projectRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID string }{ID: id})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *projectRepoMock) DeleteCalls() []struct{ ID string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

type memberRepoMock struct {
	AddFunc             func(ctx context.Context, m *domain.ProjectMember) (*domain.ProjectMember, error)
	EnsureFunc          func(ctx context.Context, m *domain.ProjectMember) error
	ListByProjectFunc   func(ctx context.Context, projectID string) ([]domain.ProjectMemberInfo, error)
	RemoveFunc          func(ctx context.Context, projectID string, userID int64) error
	RemoveByProjectFunc func(ctx context.Context, projectID string) error

	calls struct {
		Add           []struct{ M *domain.ProjectMember }
		Ensure        []struct{ M *domain.ProjectMember }
		ListByProject []struct{ ProjectID string }
		Remove        []struct {
			ProjectID string
			UserID    int64
		}
		RemoveByProject []struct{ ProjectID string }
	}
	lock sync.RWMutex
}

func (mock *memberRepoMock) Add(ctx context.Context, m *domain.ProjectMember) (*domain.ProjectMember, error) {
	if mock.AddFunc == nil {
		panic("memberRepoMock.AddFunc: method is nil but memberRepo.Add was just called")
	}
	mock.lock.Lock()
	mock.calls.Add = append(mock.calls.Add, struct{ M *domain.ProjectMember }{M: m})
	mock.lock.Unlock()
	return mock.AddFunc(ctx, m)
}

func (mock *memberRepoMock) AddCalls() []struct{ M *domain.ProjectMember } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Add
}

func (mock *memberRepoMock) Ensure(ctx context.Context, m *domain.ProjectMember) error {
	if mock.EnsureFunc == nil {
		panic("memberRepoMock.EnsureFunc: method is nil but memberRepo.Ensure was just called")
	}
	mock.lock.Lock()
	mock.calls.Ensure = append(mock.calls.Ensure, struct{ M *domain.ProjectMember }{M: m})
	mock.lock.Unlock()
	return mock.EnsureFunc(ctx, m)
}

func (mock *memberRepoMock) EnsureCalls() []struct{ M *domain.ProjectMember } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Ensure
}

func (mock *memberRepoMock) ListByProject(ctx context.Context, projectID string) ([]domain.ProjectMemberInfo, error) {
	if mock.ListByProjectFunc == nil {
		panic("memberRepoMock.ListByProjectFunc: method is nil but memberRepo.ListByProject was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByProject = append(mock.calls.ListByProject, struct{ ProjectID string }{ProjectID: projectID})
	mock.lock.Unlock()
	return mock.ListByProjectFunc(ctx, projectID)
}

func (mock *memberRepoMock) ListByProjectCalls() []struct{ ProjectID string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListByProject
}

func (mock *memberRepoMock) Remove(ctx context.Context, projectID string, userID int64) error {
	if mock.RemoveFunc == nil {
		panic("memberRepoMock.RemoveFunc: method is nil but memberRepo.Remove was just called")
	}
	mock.lock.Lock()
	mock.calls.Remove = append(mock.calls.Remove, struct {
		ProjectID string
		UserID    int64
	}{ProjectID: projectID, UserID: userID})
	mock.lock.Unlock()
	return mock.RemoveFunc(ctx, projectID, userID)
}

func (mock *memberRepoMock) RemoveCalls() []struct {
	ProjectID string
	UserID    int64
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Remove
}

func (mock *memberRepoMock) RemoveByProject(ctx context.Context, projectID string) error {
	if mock.RemoveByProjectFunc == nil {
		panic("memberRepoMock.RemoveByProjectFunc: method is nil but memberRepo.RemoveByProject was just called")
	}
	mock.lock.Lock()
	mock.calls.RemoveByProject = append(mock.calls.RemoveByProject, struct{ ProjectID string }{ProjectID: projectID})
	mock.lock.Unlock()
	return mock.RemoveByProjectFunc(ctx, projectID)
}

func (mock *memberRepoMock) RemoveByProjectCalls() []struct{ ProjectID string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RemoveByProject
}

type taskRepoMock struct {
	DeleteByProjectFunc func(ctx context.Context, projectID string) error

	calls struct {
		DeleteByProject []struct{ ProjectID string }
	}
	lock sync.RWMutex
}

func (mock *taskRepoMock) DeleteByProject(ctx context.Context, projectID string) error {
	if mock.DeleteByProjectFunc == nil {
		panic("taskRepoMock.DeleteByProjectFunc: method is nil but taskRepo.DeleteByProject was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteByProject = append(mock.calls.DeleteByProject, struct{ ProjectID string }{ProjectID: projectID})
	mock.lock.Unlock()
	return mock.DeleteByProjectFunc(ctx, projectID)
}

func (mock *taskRepoMock) DeleteByProjectCalls() []struct{ ProjectID string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DeleteByProject
}

type ledgerMock struct {
	InsertFunc func(ctx context.Context, e *domain.ActivityLog) error

	calls struct {
		Insert []struct{ E *domain.ActivityLog }
	}
	lock sync.RWMutex
}

func (mock *ledgerMock) Insert(ctx context.Context, e *domain.ActivityLog) error {
	if mock.InsertFunc == nil {
		panic("ledgerMock.InsertFunc: method is nil but ledger.Insert was just called")
	}
	mock.lock.Lock()
	mock.calls.Insert = append(mock.calls.Insert, struct{ E *domain.ActivityLog }{E: e})
	mock.lock.Unlock()
	return mock.InsertFunc(ctx, e)
}

func (mock *ledgerMock) InsertCalls() []struct{ E *domain.ActivityLog } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Insert
}

type notifierMock struct {
	PublishFunc func(projectID string, sig domain.Signal)

	calls struct {
		Publish []struct {
			ProjectID string
			Sig       domain.Signal
		}
	}
	lock sync.RWMutex
}

func (mock *notifierMock) Publish(projectID string, sig domain.Signal) {
	mock.lock.Lock()
	mock.calls.Publish = append(mock.calls.Publish, struct {
		ProjectID string
		Sig       domain.Signal
	}{ProjectID: projectID, Sig: sig})
	mock.lock.Unlock()
	if mock.PublishFunc != nil {
		mock.PublishFunc(projectID, sig)
	}
}

func (mock *notifierMock) PublishCalls() []struct {
	ProjectID string
	Sig       domain.Signal
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Publish
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lock sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lock.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lock.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RunInTx
}
