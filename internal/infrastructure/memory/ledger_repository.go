package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sobrickz-opname/internal/domain"
	"github.com/jhoicas/sobrickz-opname/internal/domain/entity"
	"github.com/jhoicas/sobrickz-opname/internal/domain/ledger"
	"github.com/jhoicas/sobrickz-opname/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo flujos de piso y bodega en memoria.
type LedgerRepo struct {
	s *Store
}

func checkStream(stream entity.Stream) error {
	if !stream.Valid() {
		return fmt.Errorf("%w: flujo desconocido %q", domain.ErrInvalidInput, stream)
	}
	return nil
}

func (r *LedgerRepo) LatestBefore(_ context.Context, stream entity.Stream, itemID int64, before time.Time) (*entity.LedgerEntry, error) {
	if err := checkStream(stream); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var best *entity.LedgerEntry
	for i := range r.s.entries[stream] {
		e := &r.s.entries[stream][i]
		if e.ItemID != itemID || !e.Date.Before(before) {
			continue
		}
		if best == nil || ledger.Newer(e, best) {
			best = e
		}
	}
	if best == nil {
		return nil, nil
	}
	out := *best
	return &out, nil
}

func (r *LedgerRepo) Insert(_ context.Context, e *entity.LedgerEntry) error {
	if err := checkStream(e.Stream); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextEntryID[e.Stream]++
	e.ID = r.s.nextEntryID[e.Stream]
	r.s.entries[e.Stream] = append(r.s.entries[e.Stream], *e)
	return nil
}

func (r *LedgerRepo) ListRows(_ context.Context, stream entity.Stream) ([]entity.ReportRow, error) {
	if err := checkStream(stream); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rows := make([]entity.ReportRow, 0, len(r.s.entries[stream]))
	for _, e := range r.s.entries[stream] {
		it, _ := r.s.itemByID(e.ItemID) // ítem borrado => nombre vacío
		rows = append(rows, entity.ReportRow{
			EntryID:      e.ID,
			Date:         e.Date,
			Shift:        e.Shift,
			ItemName:     it.Name,
			Opening:      e.Opening,
			Inbound:      e.Inbound,
			Outgoing:     e.Outgoing,
			Closing:      e.Closing,
			OperatorName: e.OperatorName,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return ledger.ReportBefore(&rows[i], &rows[j]) })
	return rows, nil
}

func (r *LedgerRepo) Delete(_ context.Context, stream entity.Stream, id int64) error {
	if err := checkStream(stream); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := r.s.entries[stream]
	for i := range list {
		if list[i].ID == id {
			r.s.entries[stream] = append(list[:i:i], list[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *LedgerRepo) Summarize(_ context.Context, stream entity.Stream, from, to time.Time) ([]entity.ItemSummary, error) {
	if err := checkStream(stream); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	type acc struct {
		sum  entity.ItemSummary
		last *entity.LedgerEntry
	}
	byItem := map[int64]*acc{}
	for i := range r.s.entries[stream] {
		e := &r.s.entries[stream][i]
		if e.Date.Before(from) || e.Date.After(to) {
			continue
		}
		a, ok := byItem[e.ItemID]
		if !ok {
			it, _ := r.s.itemByID(e.ItemID)
			a = &acc{sum: entity.ItemSummary{
				ItemID:        e.ItemID,
				ItemName:      it.Name,
				ItemUnit:      it.Unit,
				TotalInbound:  decimal.Zero,
				TotalOutgoing: decimal.Zero,
			}}
			byItem[e.ItemID] = a
		}
		a.sum.EntryCount++
		a.sum.TotalInbound = a.sum.TotalInbound.Add(e.Inbound)
		a.sum.TotalOutgoing = a.sum.TotalOutgoing.Add(e.Outgoing)
		if a.last == nil || ledger.Newer(e, a.last) {
			a.last = e
		}
	}

	list := make([]entity.ItemSummary, 0, len(byItem))
	for _, a := range byItem {
		a.sum.LastClosing = a.last.Closing
		a.sum.LastDate = a.last.Date
		list = append(list, a.sum)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].ItemName != list[j].ItemName {
			return list[i].ItemName < list[j].ItemName
		}
		return list[i].ItemID < list[j].ItemID
	})
	return list, nil
}
