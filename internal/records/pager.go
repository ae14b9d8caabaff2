package records

import (
	"context"

	"github.com/petralia/cfdnsctl/internal/domain/entity"
)

// RecordPager streams lookup results one record at a time:
//
//	pager := svc.Resolve(ctx, query)
//	for pager.Next() {
//		rec := pager.Current()
//		...
//	}
//	if err := pager.Err(); err != nil { ... }
//
// Pages are fetched on demand, so a caller that stops early never
// requests the remaining pages. A pager is single-use; resolving again
// restarts the sequence from the first page. Not safe for concurrent
// use.
type RecordPager struct {
	ctx   context.Context
	svc   *Service
	query entity.RecordQuery

	// types to walk in order; a single entry when the query named one.
	// Empty for the by-ID path.
	types   []entity.RecordType
	typeIdx int

	page       int
	totalPages int

	buf []entity.DNSRecord
	idx int

	done bool
	err  error
}

// Next fetches as needed and reports whether Current will return a
// record. Once Next returns false the pager is exhausted or failed;
// check Err to tell which.
func (p *RecordPager) Next() bool {
	if p.err != nil {
		return false
	}
	if p.idx+1 < len(p.buf) {
		p.idx++
		return true
	}
	for !p.done {
		batch, err := p.fetch()
		if err != nil {
			p.err = err
			return false
		}
		if len(batch) > 0 {
			p.buf = batch
			p.idx = 0
			return true
		}
	}
	return false
}

// Current returns the record Next advanced to. Only valid after Next
// has returned true.
func (p *RecordPager) Current() entity.DNSRecord {
	return p.buf[p.idx]
}

// Err returns the first failure encountered, if any. A page failure
// aborts the whole sequence; records from earlier pages already
// consumed stay consumed, nothing further is produced.
func (p *RecordPager) Err() error {
	return p.err
}

// fetch advances the cursor and returns the next batch. An empty batch
// with done unset means the cursor moved past an empty page or type;
// the caller loops.
func (p *RecordPager) fetch() ([]entity.DNSRecord, error) {
	if p.query.RecordID != "" {
		p.done = true
		rec, err := p.svc.getByID(p.ctx, p.query.ZoneID, p.query.RecordID)
		if err != nil {
			return nil, err
		}
		return []entity.DNSRecord{*rec}, nil
	}

	for p.typeIdx < len(p.types) {
		if p.page == 0 || p.page < p.totalPages {
			p.page++
			recs, info, err := p.svc.listPage(p.ctx, p.query, p.types[p.typeIdx], p.page)
			if err != nil {
				return nil, err
			}
			if p.page == 1 {
				// total page count is only known once page 1 echoes it
				p.totalPages = 1
				if info != nil && info.TotalPages > 0 {
					p.totalPages = info.TotalPages
				}
			}
			return recs, nil
		}
		p.typeIdx++
		p.page = 0
		p.totalPages = 0
	}

	p.done = true
	return nil, nil
}
