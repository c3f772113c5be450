// Package idempotency replays the response of a tagged endpoint when a caller
// repeats a request with the same X-Idempotency-Key header.
package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"
)

const Header = "X-Idempotency-Key"

// Requests without the header pass through untouched.
//
//encore:middleware target=tag:idempotency
func Middleware(req middleware.Request, next middleware.Next) middleware.Response {
	key := requestKey(req.Data().Headers.Get(Header))
	if key == "" {
		return next(req)
	}

	ctx := req.Context()
	ck := Key{Endpoint: req.Data().Endpoint, Key: key}
	logger := rlog.With("endpoint", ck.Endpoint, "key", key)

	entry, err := Responses.Get(ctx, ck)
	switch {
	case errors.Is(err, cache.Miss):
		return claimAndRun(ctx, req, next, ck)
	case err != nil:
		logger.Warn("idempotency lookup failed, serving request directly", "error", err)
		return next(req)
	}

	switch entry.State {
	case statePending:
		logger.Info("duplicate request while first is in flight")
		return inFlight()
	case stateDone:
		if payload, ok := replay(responseType(req), entry.Response); ok {
			logger.Info("replaying stored response")
			return middleware.Response{Payload: payload}
		}
		logger.Warn("stored response unusable, serving request again")
	}

	return next(req)
}

func claimAndRun(ctx context.Context, req middleware.Request, next middleware.Next, ck Key) middleware.Response {
	err := Responses.SetIfNotExists(ctx, ck, Entry{State: statePending, StartedAt: time.Now()})
	if errors.Is(err, cache.KeyExists) {
		return inFlight()
	}
	if err != nil {
		rlog.Warn("failed to claim idempotency key", "error", err, "key", ck.Key)
		return next(req)
	}

	resp := next(req)
	if resp.Err != nil {
		if _, err := Responses.Delete(ctx, ck); err != nil {
			rlog.Error("failed to release idempotency key", "error", err, "key", ck.Key)
		}
		return resp
	}

	done := Entry{State: stateDone, DoneAt: time.Now()}
	if resp.Payload != nil {
		raw, err := json.Marshal(resp.Payload)
		if err != nil {
			rlog.Error("failed to encode response for replay", "error", err, "key", ck.Key)
			return resp
		}
		done.Response = raw
	}
	if err := Responses.Set(ctx, ck, done); err != nil {
		rlog.Error("failed to store response for replay", "error", err, "key", ck.Key)
	}

	return resp
}

func requestKey(header string) string {
	return strings.TrimSpace(header)
}

func inFlight() middleware.Response {
	return middleware.Response{
		Err: &errs.Error{Code: errs.Aborted, Message: "request is already being processed"},
	}
}

func responseType(req middleware.Request) reflect.Type {
	if api := req.Data().API; api != nil {
		return api.ResponseType
	}
	return nil
}

// replay decodes a stored JSON response into a fresh value of the endpoint's
// pointer response type.
func replay(typ reflect.Type, raw json.RawMessage) (any, bool) {
	if typ == nil || typ.Kind() != reflect.Pointer || len(raw) == 0 {
		return nil, false
	}

	v := reflect.New(typ.Elem()).Interface()
	if err := json.Unmarshal(raw, v); err != nil {
		return nil, false
	}
	return v, true
}
