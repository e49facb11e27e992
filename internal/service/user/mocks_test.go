package user

import (
	"context"
	"sync"
	"time"

	"taskhub/internal/domain"
)

var (
	_ userRepo   = &userRepoMock{}
	_ memberRepo = &memberRepoMock{}
	_ taskRepo   = &taskRepoMock{}
	_ txManager  = &txManagerMock{}
)

type userRepoMock struct {
	CreateFunc     func(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	GetByIDFunc    func(ctx context.Context, id int64) (*domain.User, error)
	CountFunc      func(ctx context.Context) (int, error)
	ListFunc       func(ctx context.Context) ([]domain.User, error)
	UpdateNameFunc func(ctx context.Context, id int64, name string, now time.Time) (*domain.User, error)
	UpdateRoleFunc func(ctx context.Context, id int64, role domain.Role, now time.Time) (*domain.User, error)
	DeleteFunc     func(ctx context.Context, id int64) error

	calls struct {
		Create     []struct{ U *domain.User }
		GetByEmail []struct{ Email string }
		GetByID    []struct{ ID int64 }
		Count      []struct{}
		List       []struct{}
		UpdateName []struct {
			ID   int64
			Name string
		}
		UpdateRole []struct {
			ID   int64
			Role domain.Role
		}
		Delete []struct{ ID int64 }
	}
	lock sync.RWMutex
}

func (mock *userRepoMock) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ U *domain.User }{U: u})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, u)
}

func (mock *userRepoMock) CreateCalls() []struct{ U *domain.User } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, struct{ Email string }{Email: email})
	mock.lock.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByEmailCalls() []struct{ Email string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByEmail
}

func (mock *userRepoMock) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID int64 }{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct{ ID int64 } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *userRepoMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("userRepoMock.CountFunc: method is nil but userRepo.Count was just called")
	}
	mock.lock.Lock()
	mock.calls.Count = append(mock.calls.Count, struct{}{})
	mock.lock.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *userRepoMock) CountCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Count
}

func (mock *userRepoMock) List(ctx context.Context) ([]domain.User, error) {
	if mock.ListFunc == nil {
		panic("userRepoMock.ListFunc: method is nil but userRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct{}{})
	mock.lock.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *userRepoMock) ListCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *userRepoMock) UpdateName(ctx context.Context, id int64, name string, now time.Time) (*domain.User, error) {
	if mock.UpdateNameFunc == nil {
		panic("userRepoMock.UpdateNameFunc: method is nil but userRepo.UpdateName was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateName = append(mock.calls.UpdateName, struct {
		ID   int64
		Name string
	}{ID: id, Name: name})
	mock.lock.Unlock()
	return mock.UpdateNameFunc(ctx, id, name, now)
}

func (mock *userRepoMock) UpdateNameCalls() []struct {
	ID   int64
	Name string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateName
}

func (mock *userRepoMock) UpdateRole(ctx context.Context, id int64, role domain.Role, now time.Time) (*domain.User, error) {
	if mock.UpdateRoleFunc == nil {
		panic("userRepoMock.UpdateRoleFunc: method is nil but userRepo.UpdateRole was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateRole = append(mock.calls.UpdateRole, struct {
		ID   int64
		Role domain.Role
	}{ID: id, Role: role})
	mock.lock.Unlock()
	return mock.UpdateRoleFunc(ctx, id, role, now)
}

func (mock *userRepoMock) UpdateRoleCalls() []struct {
	ID   int64
	Role domain.Role
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateRole
}

func (mock *userRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("userRepoMock.DeleteFunc: method is nil but userRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID int64 }{ID: id})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *userRepoMock) DeleteCalls() []struct{ ID int64 } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

type memberRepoMock struct {
	RemoveByUserFunc func(ctx context.Context, userID int64) error

	calls struct {
		RemoveByUser []struct{ UserID int64 }
	}
	lock sync.RWMutex
}

func (mock *memberRepoMock) RemoveByUser(ctx context.Context, userID int64) error {
	if mock.RemoveByUserFunc == nil {
		panic("memberRepoMock.RemoveByUserFunc: method is nil but memberRepo.RemoveByUser was just called")
	}
	mock.lock.Lock()
	mock.calls.RemoveByUser = append(mock.calls.RemoveByUser, struct{ UserID int64 }{UserID: userID})
	mock.lock.Unlock()
	return mock.RemoveByUserFunc(ctx, userID)
}

func (mock *memberRepoMock) RemoveByUserCalls() []struct{ UserID int64 } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RemoveByUser
}

type taskRepoMock struct {
	UnassignFunc func(ctx context.Context, names []string) error

	calls struct {
		Unassign []struct{ Names []string }
	}
	lock sync.RWMutex
}

func (mock *taskRepoMock) Unassign(ctx context.Context, names []string) error {
	if mock.UnassignFunc == nil {
		panic("taskRepoMock.UnassignFunc: method is nil but taskRepo.Unassign was just called")
	}
	mock.lock.Lock()
	mock.calls.Unassign = append(mock.calls.Unassign, struct{ Names []string }{Names: names})
	mock.lock.Unlock()
	return mock.UnassignFunc(ctx, names)
}

func (mock *taskRepoMock) UnassignCalls() []struct{ Names []string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Unassign
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
