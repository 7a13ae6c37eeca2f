// Package stream turns a sequence of wire stream chunks into growing-text
// snapshots.
//
// The chunk source is finite and non-restartable; the sequences returned
// here are lazy and share those properties. The accumulator holds no
// resources of its own: cancelling a stream is simply the caller ceasing to
// consume, and the underlying source iterator stays caller-owned. Each call
// owns its own accumulation state, so no locking is needed anywhere in this
// package.
package stream

import (
	"context"
	"iter"
	"strings"

	"github.com/digitalocean/gradientai-go/model"
	"github.com/digitalocean/gradientai-go/wire"
)

// Accumulate yields one (accumulatedText, delta) pair per chunk carrying
// non-empty delta text. Chunks with an empty or absent delta still advance
// the source but emit nothing, and a malformed chunk counts as an empty
// delta rather than an error. Accumulation is concatenation only, so the
// accumulated text never shrinks between snapshots.
func Accumulate(chunks iter.Seq[[]byte]) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		var acc strings.Builder
		for chunk := range chunks {
			delta := wire.DecodeChunkDelta(chunk)
			if delta == "" {
				continue
			}
			acc.WriteString(delta)
			if !yield(acc.String(), delta) {
				return
			}
		}
	}
}

// Messages is the message-shaped variant of Accumulate: each snapshot is a
// full assistant message whose content is the accumulated text so far.
func Messages(chunks iter.Seq[[]byte]) iter.Seq[model.ChatResponse] {
	return func(yield func(model.ChatResponse) bool) {
		for text, delta := range Accumulate(chunks) {
			resp := model.ChatResponse{
				Message: model.NewTextMessage(model.RoleAssistant, text),
				Delta:   delta,
			}
			if !yield(resp) {
				return
			}
		}
	}
}

// Completions is the completion-shaped variant of Accumulate, for callers on
// the prompt-in, text-out surface.
func Completions(chunks iter.Seq[[]byte]) iter.Seq[model.CompletionResponse] {
	return func(yield func(model.CompletionResponse) bool) {
		for text, delta := range Accumulate(chunks) {
			if !yield(model.CompletionResponse{Text: text, Delta: delta}) {
				return
			}
		}
	}
}

// Apply runs a pure shaper over the data half of a fallible chunk sequence.
// Shaped values arrive with a nil error; when the source ends with a read
// error, that error is yielded last, after every value shaped from the
// chunks that preceded it. A consumer that stops early never sees the
// error. Decode failures never reach this path: a malformed chunk is an
// empty delta, and only transport-level read failures terminate a source.
func Apply[T any](chunks iter.Seq2[[]byte, error], shape func(iter.Seq[[]byte]) iter.Seq[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var terminal error
		data := func(yieldData func([]byte) bool) {
			for chunk, err := range chunks {
				if err != nil {
					terminal = err
					return
				}
				if !yieldData(chunk) {
					return
				}
			}
		}
		for v := range shape(data) {
			if !yield(v, nil) {
				return
			}
		}
		if terminal != nil {
			var zero T
			yield(zero, terminal)
		}
	}
}

// FromChannel adapts a channel-fed chunk source, as produced by a concurrent
// transport, into a chunk sequence. The sequence ends when the channel
// closes or the context is cancelled, whichever comes first.
func FromChannel(ctx context.Context, ch <-chan []byte) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for {
			select {
			case <-ctx.Done():
				return
			case chunk, ok := <-ch:
				if !ok {
					return
				}
				if !yield(chunk) {
					return
				}
			}
		}
	}
}
