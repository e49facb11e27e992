package task

import (
	"context"
	"sync"

	"taskhub/internal/domain"
)

var _ taskRepo = &taskRepoMock{}

type taskRepoMock struct {
	CreateFunc              func(ctx context.Context, t *domain.Task) (*domain.Task, error)
	GetByIDFunc             func(ctx context.Context, id string) (*domain.Task, error)
	ListFunc                func(ctx context.Context, projectID *string) ([]domain.Task, error)
	CompareAndSetStatusFunc func(ctx context.Context, id string, expected, next domain.TaskStatus) error
	SetAssigneeFunc         func(ctx context.Context, id string, assignee *string) (*domain.Task, error)
	DeleteFunc              func(ctx context.Context, id string) error

	calls struct {
		Create []struct {
			T *domain.Task
		}
		GetByID []struct {
			ID string
		}
		List []struct {
			ProjectID *string
		}
		CompareAndSetStatus []struct {
			ID       string
			Expected domain.TaskStatus
			Next     domain.TaskStatus
		}
		SetAssignee []struct {
			ID       string
			Assignee *string
		}
		Delete []struct {
			ID string
		}
	}
	lock sync.RWMutex
}

func (mock *taskRepoMock) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	if mock.CreateFunc == nil {
		panic("taskRepoMock.CreateFunc: method is nil but taskRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ T *domain.Task }{T: t})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *taskRepoMock) CreateCalls() []struct{ T *domain.Task } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *taskRepoMock) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	if mock.GetByIDFunc == nil {
		panic("taskRepoMock.GetByIDFunc: method is nil but taskRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID string }{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *taskRepoMock) GetByIDCalls() []struct{ ID string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *taskRepoMock) List(ctx context.Context, projectID *string) ([]domain.Task, error) {
	if mock.ListFunc == nil {
		panic("taskRepoMock.ListFunc: method is nil but taskRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct{ ProjectID *string }{ProjectID: projectID})
	mock.lock.Unlock()
	return mock.ListFunc(ctx, projectID)
}

func (mock *taskRepoMock) ListCalls() []struct{ ProjectID *string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *taskRepoMock) CompareAndSetStatus(ctx context.Context, id string, expected, next domain.TaskStatus) error {
	if mock.CompareAndSetStatusFunc == nil {
		panic("taskRepoMock.CompareAndSetStatusFunc: method is nil but taskRepo.CompareAndSetStatus was just called")
	}
	mock.lock.Lock()
	mock.calls.CompareAndSetStatus = append(mock.calls.CompareAndSetStatus, struct {
		ID       string
		Expected domain.TaskStatus
		Next     domain.TaskStatus
	}{ID: id, Expected: expected, Next: next})
	mock.lock.Unlock()
	return mock.CompareAndSetStatusFunc(ctx, id, expected, next)
}

func (mock *taskRepoMock) CompareAndSetStatusCalls() []struct {
	ID       string
	Expected domain.TaskStatus
	Next     domain.TaskStatus
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CompareAndSetStatus
}

func (mock *taskRepoMock) SetAssignee(ctx context.Context, id string, assignee *string) (*domain.Task, error) {
	if mock.SetAssigneeFunc == nil {
		panic("taskRepoMock.SetAssigneeFunc: method is nil but taskRepo.SetAssignee was just called")
	}
	mock.lock.Lock()
	mock.calls.SetAssignee = append(mock.calls.SetAssignee, struct {
		ID       string
		Assignee *string
	}{ID: id, Assignee: assignee})
	mock.lock.Unlock()
	return mock.SetAssigneeFunc(ctx, id, assignee)
}

func (mock *taskRepoMock) SetAssigneeCalls() []struct {
	ID       string
	Assignee *string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.SetAssignee
}

func (mock *taskRepoMock) Delete(ctx context.Context, id string) error {
	if mock.DeleteFunc == nil {
		panic("taskRepoMock.DeleteFunc: method is nil but taskRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID string }{ID: id})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *taskRepoMock) DeleteCalls() []struct{ ID string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}
