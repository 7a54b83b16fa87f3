package notification

import (
	"context"
	"fmt"
	"sync"
)

type FakeNotifier struct {
	Status         PermissionStatus
	StatusError    error
	GrantOnRequest bool
	RequestError   error
	RequestCalls   int
	ScheduleError  error
	Scheduled      []Request
	lock           sync.Mutex
}

func NewFakeNotifier(status PermissionStatus) *FakeNotifier {
	return &FakeNotifier{Status: status}
}

func (n *FakeNotifier) GetPermissionStatus(ctx context.Context) (PermissionStatus, error) {
	if n.StatusError != nil {
		return PermissionUndetermined, n.StatusError
	}
	n.lock.Lock()
	defer n.lock.Unlock()
	return n.Status, nil
}

func (n *FakeNotifier) RequestPermission(ctx context.Context) (PermissionStatus, error) {
	n.lock.Lock()
	defer n.lock.Unlock()
	n.RequestCalls++
	if n.RequestError != nil {
		return PermissionUndetermined, n.RequestError
	}
	if n.GrantOnRequest {
		n.Status = PermissionGranted
	} else {
		n.Status = PermissionDenied
	}
	return n.Status, nil
}

func (n *FakeNotifier) ScheduleOneShot(ctx context.Context, r Request) (Handle, error) {
	if n.ScheduleError != nil {
		return "", n.ScheduleError
	}
	n.lock.Lock()
	defer n.lock.Unlock()
	n.Scheduled = append(n.Scheduled, r)
	return Handle(fmt.Sprintf("handle-%d", len(n.Scheduled))), nil
}

type FakeDeliverer struct {
	Error     error
	Delivered []Notification
	lock      sync.Mutex
}

func NewFakeDeliverer() *FakeDeliverer {
	return &FakeDeliverer{}
}

func (d *FakeDeliverer) Deliver(ctx context.Context, n Notification) error {
	if d.Error != nil {
		return d.Error
	}
	d.lock.Lock()
	defer d.lock.Unlock()
	d.Delivered = append(d.Delivered, n)
	return nil
}

func (d *FakeDeliverer) DeliveredCount() int {
	d.lock.Lock()
	defer d.lock.Unlock()
	return len(d.Delivered)
}
