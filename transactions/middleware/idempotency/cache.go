package idempotency

import (
	"encoding/json"
	"time"

	"encore.dev/storage/cache"
)

const replayWindow = 15 * time.Minute

type state string

const (
	statePending state = "pending"
	stateDone    state = "done"
)

// Key identifies one idempotent call of an endpoint.
type Key struct {
	Endpoint string
	Key      string
}

// Entry is what is remembered about a call while it runs and after it succeeds.
type Entry struct {
	State     state           `json:"state"`
	Response  json.RawMessage `json:"response,omitempty"`
	StartedAt time.Time       `json:"started_at"`
	DoneAt    time.Time       `json:"done_at"`
}

var Cluster = cache.NewCluster("transactions-idempotency", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

var Responses = cache.NewStructKeyspace[Key, Entry](Cluster, cache.KeyspaceConfig{
	KeyPattern:    "idempotency/:Endpoint/:Key",
	DefaultExpiry: cache.ExpireIn(replayWindow),
})
