// Package iorest implements store.Store on top of the REST API of the
// hosted service (PostgREST, as exposed by Supabase under /rest/v1).
// This is an impure I/O package.
package iorest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/supabase-community/postgrest-go"
	"github.com/swimroster/memimport/pkg/config"
	"github.com/swimroster/memimport/pkg/member"
	"github.com/swimroster/memimport/pkg/store"
)

// RestPath is appended to the service URL to reach PostgREST.
const RestPath = "/rest/v1"

// restStore implements store.Store with a postgrest-go client.
type restStore struct {
	client *postgrest.Client
	table  string
}

// New creates a REST store (without connecting).
func New() store.Store {
	return &restStore{}
}

// Connect builds the client. PostgREST is stateless, so no request is
// sent here; Probe is the first round trip.
func (r *restStore) Connect(
	_ context.Context,
	cfg *config.Config,
) error {
	u, err := url.Parse(cfg.Service.URL)
	if err != nil {
		return ConnectionError(cfg.Service.URL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ConnectionError(cfg.Service.URL,
			fmt.Errorf("service URL must be an absolute http(s) URL"))
	}

	headers := map[string]string{
		"apikey":        cfg.Service.Key,
		"Authorization": "Bearer " + cfg.Service.Key,
	}
	client := postgrest.NewClient(
		cfg.Service.URL+RestPath,
		cfg.Service.Schema,
		headers,
	)
	if client.ClientError != nil {
		return ConnectionError(cfg.Service.URL, client.ClientError)
	}

	r.client = client
	r.table = cfg.Import.Table
	return nil
}

// Probe fetches at most one row of the table.
func (r *restStore) Probe(ctx context.Context) (store.ProbeResult, error) {
	res := store.ProbeResult{Table: r.table}
	if r.client == nil {
		return res, NotConnectedError()
	}
	if err := ctx.Err(); err != nil {
		return res, ProbeError(r.table, err)
	}

	body, _, err := r.client.From(r.table).
		Select("*", "", false).
		Limit(1, "").
		Execute()
	if err != nil {
		return res, ProbeError(r.table, err)
	}

	if err = json.Unmarshal(body, &res.Rows); err != nil {
		return res, ProbeError(r.table, err)
	}
	return res, nil
}

// Insert posts one record. The service is asked to return nothing
// (Prefer: return=minimal); only the status is checked.
func (r *restStore) Insert(ctx context.Context, rec member.Record) error {
	if r.client == nil {
		return NotConnectedError()
	}
	if err := ctx.Err(); err != nil {
		return InsertError(r.table, err)
	}

	_, _, err := r.client.From(r.table).
		Insert(rec, false, "", "minimal", "").
		Execute()
	if err != nil {
		return InsertError(r.table, err)
	}
	return nil
}

// Close drops the client. Idle HTTP connections are left to the
// default transport.
func (r *restStore) Close() error {
	r.client = nil
	return nil
}
