package transport

import (
	"fmt"
	"sync"
)

// NewRegistry returns an in-process Registry. Addresses are resolved by
// string key only (no real sockets); it exists so a Worker and a bus
// controller (or test harness) can agree on "inproc://..." URLs the way the
// source material's ZeroMQ inproc transport did, adapted to the idiom
// core/queue/memory_storage.go uses for its in-memory reference
// implementation: a mutex-guarded map plus buffered channels standing in
// for high-water-marks.
func NewRegistry() Registry {
	return &inProcRegistry{
		ctrl: make(map[string]*controlChannel),
		data: make(map[string]*dataChannel),
	}
}

// inProcRegistry is the in-process Registry implementation.
type inProcRegistry struct {
	mu   sync.Mutex
	ctrl map[string]*controlChannel
	data map[string]*dataChannel
}

type controlRequest struct {
	frame   string
	replyCh chan [][]byte
}

type controlChannel struct {
	reqCh chan controlRequest
	bound bool
}

type dataChannel struct {
	ch       chan []byte
	identity []byte
	bound    bool
}

func (r *inProcRegistry) controlFor(url string, hwm int) *controlChannel {
	r.mu.Lock()
	defer r.mu.Unlock()
	cc, ok := r.ctrl[url]
	if !ok {
		if hwm <= 0 {
			hwm = 1
		}
		cc = &controlChannel{reqCh: make(chan controlRequest, hwm)}
		r.ctrl[url] = cc
	}
	return cc
}

func (r *inProcRegistry) dataFor(url string, hwm int) *dataChannel {
	r.mu.Lock()
	defer r.mu.Unlock()
	dc, ok := r.data[url]
	if !ok {
		if hwm <= 0 {
			hwm = 1
		}
		dc = &dataChannel{ch: make(chan []byte, hwm)}
		r.data[url] = dc
	}
	return dc
}

// BindControl implements Registry (the exported interface in transport.go).
func (r *inProcRegistry) BindControl(url string, hwm int) (ControlBinding, error) {
	cc := r.controlFor(url, hwm)
	r.mu.Lock()
	defer r.mu.Unlock()
	if cc.bound {
		return nil, fmt.Errorf("transport: control endpoint %q already bound", url)
	}
	cc.bound = true
	return &controlBinding{cc: cc}, nil
}

// BindData implements Registry.
func (r *inProcRegistry) BindData(url string, identity []byte, hwm int) (DataBinding, error) {
	dc := r.dataFor(url, hwm)
	r.mu.Lock()
	defer r.mu.Unlock()
	if dc.bound {
		return nil, fmt.Errorf("transport: data endpoint %q already bound", url)
	}
	dc.bound = true
	dc.identity = identity
	return &dataBinding{dc: dc}, nil
}

// DialControl implements Registry.
func (r *inProcRegistry) DialControl(url string) (ControlDial, error) {
	cc := r.controlFor(url, 1000)
	return &controlDial{cc: cc}, nil
}

// DialData implements Registry.
func (r *inProcRegistry) DialData(url string) (DataDial, error) {
	dc := r.dataFor(url, 1000)
	return &dataDial{dc: dc}, nil
}

// --- worker-side bindings ---

type controlBinding struct {
	cc      *controlChannel
	mu      sync.Mutex
	closed  bool
	pending chan [][]byte // reply channel for the request currently awaiting a reply
}

func (b *controlBinding) RecvRequest() (string, error) {
	req, ok := <-b.cc.reqCh
	if !ok {
		return "", ErrClosed
	}
	b.mu.Lock()
	b.pending = req.replyCh
	b.mu.Unlock()
	return req.frame, nil
}

func (b *controlBinding) RecvCommand() (string, error) {
	select {
	case req, ok := <-b.cc.reqCh:
		if !ok {
			return "", ErrClosed
		}
		b.mu.Lock()
		b.pending = req.replyCh
		b.mu.Unlock()
		return req.frame, nil
	default:
		return "", ErrWouldBlock
	}
}

func (b *controlBinding) Reply(frames ...[]byte) error {
	b.mu.Lock()
	pending := b.pending
	b.pending = nil
	b.mu.Unlock()
	if pending == nil {
		return fmt.Errorf("transport: reply without a pending request (REP alternation violated)")
	}
	pending <- frames
	return nil
}

func (b *controlBinding) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	return nil
}

type dataBinding struct {
	dc     *dataChannel
	mu     sync.Mutex
	closed bool
}

func (b *dataBinding) Recv() ([]byte, error) {
	select {
	case payload, ok := <-b.dc.ch:
		if !ok {
			return nil, ErrClosed
		}
		return payload, nil
	default:
		return nil, ErrWouldBlock
	}
}

func (b *dataBinding) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	return nil
}

// --- client-side dialers ---

type controlDial struct {
	cc      *controlChannel
	mu      sync.Mutex
	pending chan [][]byte
}

func (d *controlDial) Send(frame string) error {
	replyCh := make(chan [][]byte, 1)
	d.mu.Lock()
	d.pending = replyCh
	d.mu.Unlock()
	d.cc.reqCh <- controlRequest{frame: frame, replyCh: replyCh}
	return nil
}

func (d *controlDial) Recv() ([][]byte, error) {
	d.mu.Lock()
	pending := d.pending
	d.mu.Unlock()
	if pending == nil {
		return nil, fmt.Errorf("transport: recv without a prior send")
	}
	frames := <-pending
	return frames, nil
}

func (d *controlDial) Close() error { return nil }

type dataDial struct {
	dc *dataChannel
}

func (d *dataDial) Send(payload []byte) error {
	select {
	case d.dc.ch <- payload:
		return nil
	default:
		return ErrHWM
	}
}

func (d *dataDial) Close() error { return nil }
