package core

import (
	"sync"
	"time"

	"github.com/philipp01105/fanlog/color"
)

// Record is one log line before rendering
type Record struct {
	Time      time.Time
	Namespace Namespace
	Label     string
	Style     color.Style
	Message   string
	Fields    []Field
}

// recordPool is a pool of Record objects to reduce allocations
var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{
			Fields: make([]Field, 0, 4),
		}
	},
}

// GetRecord retrieves a Record from the pool
func GetRecord() *Record {
	r := recordPool.Get().(*Record)
	r.Time = time.Now()
	r.Fields = r.Fields[:0]
	return r
}

// PutRecord returns a Record to the pool
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	r.Namespace = ""
	r.Label = ""
	r.Style = nil
	r.Message = ""
	r.Fields = r.Fields[:0]
	recordPool.Put(r)
}
