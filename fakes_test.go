package sysctld

import (
	"context"
	"errors"

	"github.com/ochinchina/sysctld/platform"
	"github.com/ochinchina/sysctld/types"
)

type fakeOperator struct {
	platform platform.Platform
	calls    []string
	err      error
	pid      int
}

func (f *fakeOperator) record(call string) error {
	f.calls = append(f.calls, call)
	return f.err
}

func (f *fakeOperator) Platform() platform.Platform { return f.platform }

func (f *fakeOperator) Launch(name string, args []string) (int, error) {
	if err := f.record("launch " + name); err != nil {
		return 0, err
	}
	return f.pid, nil
}

func (f *fakeOperator) Close(ctx context.Context, name string) error {
	return f.record("close " + name)
}

func (f *fakeOperator) Screenshot(ctx context.Context, path string) error {
	return f.record("screenshot " + path)
}

func (f *fakeOperator) Lock(ctx context.Context) error {
	return f.record("lock")
}

func (f *fakeOperator) Power(ctx context.Context, kind platform.PowerKind) error {
	return f.record("power " + string(kind))
}

func (f *fakeOperator) DropCaches(ctx context.Context) error {
	return f.record("drop caches")
}

func (f *fakeOperator) ShowDesktop(ctx context.Context) error {
	return f.record("show desktop")
}

type fakeSource struct {
	snapshots  types.ProcessSnapshots
	err        error
	terminated []int32
	killErr    error
}

func (f *fakeSource) Snapshots() (types.ProcessSnapshots, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append(types.ProcessSnapshots(nil), f.snapshots...), nil
}

func (f *fakeSource) Terminate(pid int32) error {
	f.terminated = append(f.terminated, pid)
	return f.killErr
}

type fakeHost struct {
	system  types.SystemInfo
	network types.NetworkInfo
	err     error
}

func (f *fakeHost) SystemInfo() (types.SystemInfo, error)   { return f.system, f.err }
func (f *fakeHost) NetworkInfo() (types.NetworkInfo, error) { return f.network, f.err }

// recordingPerformer records the actions it is asked to perform
type recordingPerformer struct {
	actions []Action
}

func (p *recordingPerformer) Perform(a Action) types.Result {
	p.actions = append(p.actions, a)
	return types.Result{Success: true, Message: a.String(), Verb: a.Verb.String()}
}

var errBoom = errors.New("boom")
