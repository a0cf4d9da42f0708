// Package bufpool manages reusable scratch buffers for callers that sort
// repeatedly and want to keep the sort path allocation free. Buffers are
// grouped into power-of-two size classes.
package bufpool

import (
	"github.com/golang/glog"

	"github.com/sbezverk/baseutils/bitfield"
)

type poolOp uint8

const (
	getBuffer poolOp = iota + 1
	putBuffer
	countBuffers
)

type poolReply struct {
	buf   []byte
	count int
}

type poolMsg struct {
	op      poolOp
	n       int
	buf     []byte
	replyCh chan poolReply
}

// Manager defines methods to borrow and return scratch buffers.
type Manager interface {
	// Get returns a buffer of at least n bytes, reused when the pool has
	// one of the matching size class, freshly allocated otherwise.
	Get(n int) []byte
	// Put returns a buffer to the pool for reuse.
	Put(buf []byte)
	// Len returns the number of buffers currently held by the pool.
	Len() int
	Stop()
}

var _ Manager = &bufferPool{}

type bufferPool struct {
	stopCh chan struct{}
	opCh   chan poolMsg
}

func (p *bufferPool) stopped() bool {
	select {
	case <-p.stopCh:
		return true
	default:
		return false
	}
}

func (p *bufferPool) Get(n int) []byte {
	// Once stopped the pool degrades to plain allocation.
	if p.stopped() {
		return make([]byte, sizeClass(n))
	}
	repl := make(chan poolReply)
	select {
	case p.opCh <- poolMsg{op: getBuffer, n: n, replyCh: repl}:
		r := <-repl
		return r.buf
	case <-p.stopCh:
		return make([]byte, sizeClass(n))
	}
}

func (p *bufferPool) Put(buf []byte) {
	if p.stopped() {
		return
	}
	repl := make(chan poolReply)
	select {
	case p.opCh <- poolMsg{op: putBuffer, buf: buf, replyCh: repl}:
		<-repl
	case <-p.stopCh:
	}
}

func (p *bufferPool) Len() int {
	if p.stopped() {
		return 0
	}
	repl := make(chan poolReply)
	select {
	case p.opCh <- poolMsg{op: countBuffers, replyCh: repl}:
		r := <-repl
		return r.count
	case <-p.stopCh:
		return 0
	}
}

func (p *bufferPool) Stop() {
	close(p.stopCh)
}

// sizeClass rounds n up to the nearest power of two. Zero and negative
// requests map to the empty class.
func sizeClass(n int) int {
	if n <= 0 {
		return 0
	}
	c := bitfield.Msb64(uint64(n))
	if c < uint64(n) {
		c <<= 1
	}
	return int(c)
}

func (p *bufferPool) manager() {
	classes := make(map[int][][]byte)
	for {
		select {
		case <-p.stopCh:
			return
		case msg := <-p.opCh:
			switch msg.op {
			case getBuffer:
				class := sizeClass(msg.n)
				bufs := classes[class]
				if len(bufs) == 0 {
					glog.V(6).Infof("Allocating a new %d byte buffer", class)
					msg.replyCh <- poolReply{buf: make([]byte, class)}
					continue
				}
				glog.V(6).Infof("Reusing a %d byte buffer", class)
				classes[class] = bufs[:len(bufs)-1]
				msg.replyCh <- poolReply{buf: bufs[len(bufs)-1]}
			case putBuffer:
				// Returned buffers are filed under the largest
				// power-of-two capacity they can fully back, so a
				// later Get of that class never comes up short.
				class := int(bitfield.Msb64(uint64(cap(msg.buf))))
				if class > 0 {
					glog.V(6).Infof("Returning a buffer to the %d byte class", class)
					classes[class] = append(classes[class], msg.buf[:class])
				}
				msg.replyCh <- poolReply{}
			case countBuffers:
				count := 0
				for _, bufs := range classes {
					count += len(bufs)
				}
				msg.replyCh <- poolReply{count: count}
			}
		}
	}
}

// NewPool returns a new instance of a scratch buffer pool.
func NewPool() Manager {
	p := &bufferPool{
		stopCh: make(chan struct{}),
		opCh:   make(chan poolMsg),
	}
	// Starting pool manager
	go p.manager()

	return p
}
