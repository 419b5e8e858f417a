// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package listview

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/danielhkuo/survey-portal/csvexport"
	"github.com/danielhkuo/survey-portal/models"
	"github.com/danielhkuo/survey-portal/notify"
)

type Status string

const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

// LoadFailedMessage is shown instead of the underlying fetch error.
const LoadFailedMessage = "Failed to load responses. Please try again."

var ErrNothingToExport = csvexport.ErrEmpty

// Source is what a view needs from the repository.
type Source interface {
	FetchAll(ctx context.Context) ([]models.Response, error)
	SubscribeToInserts(onInsert func()) notify.Subscription
}

// State is a snapshot of a view. Responses is the sorted projection.
type State struct {
	Status        Status
	Error         string
	SortField     SortField
	SortDirection SortDirection
	Responses     []models.Response
}

func (s State) Empty() bool {
	return len(s.Responses) == 0
}

// View is a surveyor's live list of responses. The stored sequence is a
// disposable cache of the database; every notification triggers a full
// refetch rather than merging pushed rows.
type View struct {
	src      Source
	loc      *time.Location
	onChange func(State)

	mu        sync.Mutex
	status    Status
	errMsg    string
	responses []models.Response
	sortField SortField
	sortDir   SortDirection
	mounted   bool
	closed    bool
	ctx       context.Context
	cancel    context.CancelFunc
	sub       notify.Subscription
	version   uint64

	fetchSeq   uint64
	appliedSeq uint64

	// serialises onChange calls and keeps them in version order
	emitMu      sync.Mutex
	lastEmitted uint64
}

type Option func(*View)

// WithOnChange registers a callback for every state transition. It runs
// outside the view's lock but must not call Unmount.
func WithOnChange(fn func(State)) Option {
	return func(v *View) { v.onChange = fn }
}

// WithLocation sets the time zone used for exported timestamps
func WithLocation(loc *time.Location) Option {
	return func(v *View) { v.loc = loc }
}

// WithSort overrides the default created_at/desc ordering
func WithSort(field SortField, dir SortDirection) Option {
	return func(v *View) {
		v.sortField = field
		v.sortDir = dir
	}
}

func New(src Source, opts ...Option) *View {
	v := &View{
		src:       src,
		loc:       time.Local,
		status:    StatusLoading,
		responses: []models.Response{},
		sortField: DefaultSortField,
		sortDir:   DefaultSortDirection,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Mount subscribes to inserts and performs the initial fetch. It returns
// once that fetch has resolved. Calling it again, or after Unmount, does nothing.
func (v *View) Mount(ctx context.Context) {
	v.mu.Lock()
	if v.mounted {
		v.mu.Unlock()
		return
	}
	v.mounted = true
	v.ctx, v.cancel = context.WithCancel(ctx)
	v.mu.Unlock()

	sub := v.src.SubscribeToInserts(v.handleInsert)

	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		sub.Unsubscribe()
		return
	}
	v.sub = sub
	v.mu.Unlock()

	v.load()
}

// Refresh refetches synchronously and returns the resulting state.
func (v *View) Refresh() State {
	v.load()
	return v.State()
}

// Unmount closes the subscription and cancels in-flight fetches. No state
// transition or callback happens after it returns.
func (v *View) Unmount() {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.closed = true
	v.mounted = true
	sub, cancel := v.sub, v.cancel
	v.sub = nil
	v.mu.Unlock()

	if sub != nil {
		sub.Unsubscribe()
	}
	if cancel != nil {
		cancel()
	}

	// wait out a callback that is already running
	v.emitMu.Lock()
	v.emitMu.Unlock()
}

// ToggleSort makes field the sort field in ascending order, or flips the
// direction if it already is.
func (v *View) ToggleSort(field SortField) State {
	v.mu.Lock()
	if v.closed {
		st := v.snapshotLocked()
		v.mu.Unlock()
		return st
	}

	if v.sortField == field {
		v.sortDir = v.sortDir.Toggle()
	} else {
		v.sortField = field
		v.sortDir = Asc
	}
	st, ver := v.commitLocked()
	v.mu.Unlock()

	v.emit(st, ver)
	return st
}

func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshotLocked()
}

// Export renders the current projection as CSV.
func (v *View) Export() ([]byte, error) {
	st := v.State()
	if st.Empty() {
		return nil, ErrNothingToExport
	}
	return csvexport.Render(st.Responses, v.loc)
}

func (v *View) handleInsert() {
	go v.load()
}

func (v *View) load() {
	v.mu.Lock()
	if !v.mounted || v.closed {
		v.mu.Unlock()
		return
	}
	ctx := v.ctx
	v.fetchSeq++
	seq := v.fetchSeq
	v.status = StatusLoading
	v.errMsg = ""
	st, ver := v.commitLocked()
	v.mu.Unlock()
	v.emit(st, ver)

	rs, err := v.src.FetchAll(ctx)

	v.mu.Lock()
	// a fetch that started later has already landed
	if v.closed || seq < v.appliedSeq {
		v.mu.Unlock()
		return
	}
	v.appliedSeq = seq
	if err != nil {
		slog.Error("failed to load responses", "error", err)
		// keep the previous data visible under the error
		v.status = StatusFailed
		v.errMsg = LoadFailedMessage
	} else {
		if rs == nil {
			rs = []models.Response{}
		}
		v.responses = rs
		v.status = StatusReady
		v.errMsg = ""
	}
	st, ver = v.commitLocked()
	v.mu.Unlock()
	v.emit(st, ver)
}

func (v *View) commitLocked() (State, uint64) {
	v.version++
	return v.snapshotLocked(), v.version
}

func (v *View) snapshotLocked() State {
	return State{
		Status:        v.status,
		Error:         v.errMsg,
		SortField:     v.sortField,
		SortDirection: v.sortDir,
		Responses:     Sort(v.responses, v.sortField, v.sortDir),
	}
}

func (v *View) emit(st State, ver uint64) {
	if v.onChange == nil {
		return
	}

	v.emitMu.Lock()
	defer v.emitMu.Unlock()

	v.mu.Lock()
	closed := v.closed
	v.mu.Unlock()
	if closed || ver <= v.lastEmitted {
		return
	}
	v.lastEmitted = ver
	v.onChange(st)
}
