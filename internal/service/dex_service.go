package service

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/baechu-app/gamify/internal/catalog"
	errorvalues "github.com/baechu-app/gamify/internal/error_values"
	"github.com/baechu-app/gamify/internal/repository"
	"github.com/baechu-app/gamify/pkg/entity"
)

// DexService is the collection tracker: per-item status, rating and memo,
// plus aggregate completion against the fixed item catalog.
type DexService struct {
	repo   repository.DexRepositoryI
	badges BadgeServiceI
	stats  StatsServiceI
	locks  *UserLocks
}

func NewDexService(
	dexRepo repository.DexRepositoryI,
	badges BadgeServiceI,
	stats StatsServiceI,
	locks *UserLocks,
) *DexService {
	if dexRepo == nil || badges == nil || stats == nil || locks == nil {
		log.Fatal("on dex service provided nil dependencies")
	}
	return &DexService{
		repo:   dexRepo,
		badges: badges,
		stats:  stats,
		locks:  locks,
	}
}

func (ds *DexService) SetStatus(ctx context.Context, uid uuid.UUID, itemID string, status entity.DexStatus) (*DexMutationResult, error) {
	if _, ok := catalog.ItemByID(itemID); !ok {
		return nil, errorvalues.ErrItemNotFound
	}
	switch status {
	case entity.DexTried, entity.DexMade, entity.DexWant, entity.DexNone:
	default:
		return nil, errors.New("unknown dex status: " + string(status))
	}
	unlock := ds.locks.Lock(uid)
	defer unlock()
	entries, err := ds.repo.Get(ctx, uid)
	if err != nil {
		return nil, errors.New("dex repository error: " + err.Error())
	}
	if status == entity.DexNone {
		// None deletes the entry outright, discarding rating, memo and
		// collectedAt with it.
		if _, ok := entries[itemID]; ok {
			delete(entries, itemID)
			if err := ds.repo.Save(ctx, uid, entries); err != nil {
				return nil, errors.Join(errorvalues.ErrPersistence, err)
			}
		}
		return &DexMutationResult{}, nil
	}
	now := time.Now()
	entry, existed := entries[itemID]
	if !existed {
		entry = entity.DexEntry{ItemID: itemID}
	}
	entry.Status = status
	if entry.CollectedAt == nil {
		collectedAt := now
		entry.CollectedAt = &collectedAt
	}
	entry.UpdatedAt = now
	entries[itemID] = entry
	if err := ds.repo.Save(ctx, uid, entries); err != nil {
		return nil, errors.Join(errorvalues.ErrPersistence, err)
	}
	snap, err := ds.stats.Snapshot(ctx, uid)
	if err != nil {
		return nil, errors.New("assembling stats snapshot error: " + err.Error())
	}
	newBadges, events, err := ds.badges.CheckAndAward(ctx, uid, snap)
	if err != nil {
		return nil, errors.New("badge evaluation error: " + err.Error())
	}
	return &DexMutationResult{
		Entry:     &entry,
		NewBadges: newBadges,
		Events:    entity.StaggerEvents(events),
	}, nil
}

func (ds *DexService) SetRating(ctx context.Context, uid uuid.UUID, itemID string, rating *int) (*entity.DexEntry, error) {
	if _, ok := catalog.ItemByID(itemID); !ok {
		return nil, errorvalues.ErrItemNotFound
	}
	unlock := ds.locks.Lock(uid)
	defer unlock()
	entries, err := ds.repo.Get(ctx, uid)
	if err != nil {
		return nil, errors.New("dex repository error: " + err.Error())
	}
	entry, ok := entries[itemID]
	if !ok {
		return nil, errorvalues.ErrEntryNotFound
	}
	if rating != nil {
		clamped := *rating
		if clamped < 1 {
			clamped = 1
		}
		if clamped > 5 {
			clamped = 5
		}
		entry.Rating = &clamped
	} else {
		entry.Rating = nil
	}
	entry.UpdatedAt = time.Now()
	entries[itemID] = entry
	if err := ds.repo.Save(ctx, uid, entries); err != nil {
		return nil, errors.Join(errorvalues.ErrPersistence, err)
	}
	return &entry, nil
}

func (ds *DexService) SetMemo(ctx context.Context, uid uuid.UUID, itemID, memo string) (*entity.DexEntry, error) {
	if _, ok := catalog.ItemByID(itemID); !ok {
		return nil, errorvalues.ErrItemNotFound
	}
	unlock := ds.locks.Lock(uid)
	defer unlock()
	entries, err := ds.repo.Get(ctx, uid)
	if err != nil {
		return nil, errors.New("dex repository error: " + err.Error())
	}
	entry, ok := entries[itemID]
	if !ok {
		return nil, errorvalues.ErrEntryNotFound
	}
	entry.Memo = memo
	entry.UpdatedAt = time.Now()
	entries[itemID] = entry
	if err := ds.repo.Save(ctx, uid, entries); err != nil {
		return nil, errors.Join(errorvalues.ErrPersistence, err)
	}
	return &entry, nil
}

func (ds *DexService) GetEntry(ctx context.Context, uid uuid.UUID, itemID string) (*entity.DexEntry, error) {
	if _, ok := catalog.ItemByID(itemID); !ok {
		return nil, errorvalues.ErrItemNotFound
	}
	entries, err := ds.repo.Get(ctx, uid)
	if err != nil {
		return nil, errors.New("dex repository error: " + err.Error())
	}
	entry, ok := entries[itemID]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

func (ds *DexService) GetProgress(ctx context.Context, uid uuid.UUID) (*DexProgress, error) {
	entries, err := ds.repo.Get(ctx, uid)
	if err != nil {
		return nil, errors.New("dex repository error: " + err.Error())
	}
	progress := DexProgress{
		Total:   catalog.CatalogSize(),
		Entries: make([]entity.DexEntry, 0, len(entries)),
	}
	// Entries are listed in catalog order for stable rendering
	for _, item := range catalog.Items() {
		entry, ok := entries[item.ID]
		if !ok {
			continue
		}
		progress.Entries = append(progress.Entries, entry)
		switch entry.Status {
		case entity.DexTried:
			progress.Tried++
		case entity.DexMade:
			progress.Made++
		case entity.DexWant:
			progress.Want++
		}
	}
	progress.Collected = progress.Tried + progress.Made
	progress.Percent = int(math.Round(float64(progress.Collected) / float64(progress.Total) * 100))
	return &progress, nil
}
