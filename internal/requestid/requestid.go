// Package requestid issues short, URL-safe request identifiers.
package requestid

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/sqids/sqids-go"
)

type Generator struct {
	sqids   *sqids.Sqids
	epoch   uint64
	counter atomic.Uint64
}

func New() (*Generator, error) {
	s, err := sqids.New(sqids.Options{
		MinLength: 8,
	})
	if err != nil {
		return nil, err
	}
	return &Generator{sqids: s, epoch: uint64(time.Now().Unix())}, nil
}

// Next encodes the process start time and a sequence number, so ids are unique
// per process and across restarts.
func (g *Generator) Next() string {
	seq := g.counter.Add(1)
	id, err := g.sqids.Encode([]uint64{g.epoch, seq})
	if err != nil {
		return strconv.FormatUint(g.epoch, 36) + "-" + strconv.FormatUint(seq, 36)
	}
	return id
}
