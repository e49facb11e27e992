package task

import (
	"context"
	"sync"

	"taskhub/internal/domain"
)

var (
	_ commentRepo = &commentRepoMock{}
	_ ledger      = &ledgerMock{}
	_ notifier    = &notifierMock{}
	_ txManager   = &txManagerMock{}
)

type commentRepoMock struct {
	DeleteByTaskFunc func(ctx context.Context, taskID string) error

	calls struct {
		DeleteByTask []struct {
			TaskID string
		}
	}
	lock sync.RWMutex
}

func (mock *commentRepoMock) DeleteByTask(ctx context.Context, taskID string) error {
	if mock.DeleteByTaskFunc == nil {
		panic("commentRepoMock.DeleteByTaskFunc: method is nil but commentRepo.DeleteByTask was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteByTask = append(mock.calls.DeleteByTask, struct{ TaskID string }{TaskID: taskID})
	mock.lock.Unlock()
	return mock.DeleteByTaskFunc(ctx, taskID)
}

func (mock *commentRepoMock) DeleteByTaskCalls() []struct{ TaskID string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DeleteByTask
}

type ledgerMock struct {
	InsertFunc func(ctx context.Context, e *domain.ActivityLog) error

	calls struct {
		Insert []struct {
			E *domain.ActivityLog
		}
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
	if mock.PublishFunc == nil {
		mock.PublishFunc = func(string, domain.Signal) {}
	}
	mock.lock.Lock()
	mock.calls.Publish = append(mock.calls.Publish, struct {
		ProjectID string
		Sig       domain.Signal
	}{ProjectID: projectID, Sig: sig})
	mock.lock.Unlock()
	mock.PublishFunc(projectID, sig)
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
