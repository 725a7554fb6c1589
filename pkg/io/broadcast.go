package io

import (
	"errors"
	"sync/atomic"
	"time"
)

const (
	maskReading                = 1 << 63
	defaultBroadcasterRingSize = 32
	// Readers waiting on a frame poll at roughly 30 fps.
	defaultBroadcasterRingPollDuration = time.Millisecond * 33
)

var errEmptySource = errors.New("source can't be nil")

type broadcasterData[T any] struct {
	data  T
	count uint32
	err   error
}

type broadcasterRing[T any] struct {
	// reading (1 bit) + reserved (31 bits) + data count (32 bits)
	state        atomic.Uint64
	buffer       []atomic.Pointer[broadcasterData[T]]
	pollDuration time.Duration
}

func newBroadcasterRing[T any](size uint, pollDuration time.Duration) *broadcasterRing[T] {
	return &broadcasterRing[T]{
		buffer:       make([]atomic.Pointer[broadcasterData[T]], size),
		pollDuration: pollDuration,
	}
}

func (ring *broadcasterRing[T]) index(count uint32) int {
	return int(count % uint32(len(ring.buffer)))
}

// acquire lets exactly one reader pull count from the source. The returned
// push publishes the result to everyone else; nil means another reader won.
func (ring *broadcasterRing[T]) acquire(count uint32) func(*broadcasterData[T]) {
	state := uint64(count)
	if ring.state.CompareAndSwap(state, state|maskReading) {
		return func(data *broadcasterData[T]) {
			ring.buffer[ring.index(count)].Store(data)
			ring.state.Store(uint64(count + 1))
		}
	}

	return nil
}

func (ring *broadcasterRing[T]) get(count uint32) *broadcasterData[T] {
	for {
		reading := uint64(count) | maskReading
		for ring.state.Load() == reading {
			time.Sleep(ring.pollDuration)
		}

		data := ring.buffer[ring.index(count)].Load()
		if data != nil && data.count == count {
			return data
		}

		count++
	}
}

func (ring *broadcasterRing[T]) lastCount() uint32 {
	// state holds the next count
	return uint32(ring.state.Load()) - 1
}

// Broadcaster is a generic pull-based broadcaster. Readers can come and go at
// anytime, and readers don't need to close or notify broadcaster.
type Broadcaster[T any] struct {
	source atomic.Pointer[Reader[T]]
	buffer *broadcasterRing[T]
}

// BroadcasterConfig is a config to control broadcaster behaviour
type BroadcasterConfig struct {
	// BufferSize configures the underlying ring buffer size that's being used
	// to avoid data lost for late readers. The default value is 32.
	BufferSize uint
	// PollDuration configures the sleep duration in waiting for new data to come.
	// The default value is 33 ms.
	PollDuration time.Duration
}

// NewBroadcaster creates a new broadcaster. Source is expected to drop frames
// when any of the readers is slower than the source.
func NewBroadcaster[T any](source Reader[T], config *BroadcasterConfig) (*Broadcaster[T], error) {
	pollDuration := defaultBroadcasterRingPollDuration
	var bufferSize uint = defaultBroadcasterRingSize
	if config != nil {
		if config.PollDuration != 0 {
			pollDuration = config.PollDuration
		}

		if config.BufferSize != 0 {
			bufferSize = config.BufferSize
		}
	}

	broadcaster := &Broadcaster[T]{buffer: newBroadcasterRing[T](bufferSize, pollDuration)}
	if err := broadcaster.ReplaceSource(source); err != nil {
		return nil, err
	}

	return broadcaster, nil
}

// NewReader creates a new reader. Each reader will retrieve the same data from the source.
// copyFn is used to copy the data from the source to individual readers. Broadcaster uses a small ring
// buffer, this means that slow readers might miss some data if they're really late and the data is no longer
// in the ring buffer.
func (broadcaster *Broadcaster[T]) NewReader(copyFn func(T) T) Reader[T] {
	currentCount := broadcaster.buffer.lastCount()

	return ReaderFunc[T](func() (data T, release func(), err error) {
		currentCount++
		if push := broadcaster.buffer.acquire(currentCount); push != nil {
			// Other readers share data, so the source's release is never called.
			data, _, err = broadcaster.Source().Read()
			push(&broadcasterData[T]{
				data:  data,
				err:   err,
				count: currentCount,
			})
		} else {
			ringData := broadcaster.buffer.get(currentCount)
			data, err, currentCount = ringData.data, ringData.err, ringData.count
		}

		if err == nil {
			data = copyFn(data)
		}
		return data, func() {}, err
	})
}

// ReplaceSource replaces the underlying source. This operation is thread safe.
func (broadcaster *Broadcaster[T]) ReplaceSource(source Reader[T]) error {
	if source == nil {
		return errEmptySource
	}

	broadcaster.source.Store(&source)
	return nil
}

// Source retrieves the underlying source. This operation is thread safe.
func (broadcaster *Broadcaster[T]) Source() Reader[T] {
	return *broadcaster.source.Load()
}
