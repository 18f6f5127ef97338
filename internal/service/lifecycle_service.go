package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"iso-rate-api/internal/constant"
	"iso-rate-api/internal/dao"
	"iso-rate-api/internal/dto"
	"iso-rate-api/internal/idgen"
	"iso-rate-api/internal/lock"
	"iso-rate-api/internal/logger"
	mainmodel "iso-rate-api/internal/model/main"
	"iso-rate-api/internal/notify"
	"iso-rate-api/internal/snapshot"
	"iso-rate-api/internal/sweep"
)

type LifecycleService struct {
	rateDao    *dao.RateDao
	partnerDao *dao.PartnerDao
	sink       *notify.Sink
	log        *logrus.Logger
}

func NewLifecycleService() *LifecycleService {
	return &LifecycleService{
		rateDao:    dao.NewRateDao(),
		partnerDao: dao.NewPartnerDao(),
		sink:       notify.NewSink(),
		log:        logger.NewLogger("lifecycle"),
	}
}

// CreateNewVersion forks the version chain: old head loses is_current,
// the copy becomes the head, the binding repoints — one transaction.
// In-flight links keep serving their bound version until propagation is
// accepted or auto-renew applies it.
func (s *LifecycleService) CreateNewVersion(tableID uint64, actor dto.Actor) (*dto.NewVersionResp, constant.Error) {
	parent, err := s.rateDao.GetRateTable(tableID)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, constant.NewError(constant.CodeRateTableNotFound)
		}
		return nil, constant.NewError(constant.CodeDBError)
	}
	if !parent.IsCurrent {
		return nil, constant.NewError(constant.CodeVersionNotCurrent)
	}

	cells, err := s.rateDao.ListCells(tableID)
	if err != nil {
		return nil, constant.NewError(constant.CodeDBError)
	}
	copied := make([]mainmodel.RateCell, 0, len(cells))
	for _, c := range cells {
		copied = append(copied, mainmodel.RateCell{
			ID:         idgen.New(),
			Brand:      c.Brand,
			Modality:   c.Modality,
			Channel:    c.Channel,
			PercentFee: c.PercentFee,
			FixedFee:   c.FixedFee,
		})
	}

	parentID := parent.ID
	next := &mainmodel.SupplierRateTable{
		ID:         idgen.New(),
		SupplierID: parent.SupplierID,
		CategoryID: parent.CategoryID,
		Version:    parent.Version + 1,
		ParentID:   &parentID,
		IsCurrent:  true,
		CreatedBy:  actor.ID,
	}
	if err := s.rateDao.ForkVersion(parent, next, copied); err != nil {
		if dao.IsNotFound(err) {
			// head moved under us
			return nil, constant.NewError(constant.CodeVersionNotCurrent)
		}
		return nil, constant.NewError(constant.CodeDBError)
	}

	s.log.Infof("rate table %d forked to %d (v%d)", tableID, next.ID, next.Version)
	return &dto.NewVersionResp{RateTableID: next.ID, Version: next.Version}, nil
}

// PropagateNewVersion flags every approved link on the binding with the
// pending version and emits one new_version notification per link.
// Served rates are never touched here.
func (s *LifecycleService) PropagateNewVersion(bindingID, newVersionID uint64) (int, constant.Error) {
	if _, err := s.rateDao.GetRateTable(newVersionID); err != nil {
		if dao.IsNotFound(err) {
			return 0, constant.NewError(constant.CodeRateTableNotFound)
		}
		return 0, constant.NewError(constant.CodeDBError)
	}
	links, err := s.partnerDao.ListApprovedByBinding(bindingID)
	if err != nil {
		return 0, constant.NewError(constant.CodeDBError)
	}

	notified := 0
	for _, link := range links {
		// replaying the same propagation is a no-op
		if pendingAlreadyQueued(&link, newVersionID) {
			continue
		}
		if err := s.partnerDao.MarkPendingUpdate(link.ID, newVersionID); err != nil {
			s.log.Errorf("mark pending on link %d failed: %v", link.ID, err)
			continue
		}
		sent, err := s.sink.Emit(link.PartnerID, constant.NotifyNewVersion,
			"New supplier rate version available",
			fmt.Sprintf("A new rate table version is pending for contract %d.", link.ID),
			link.ID, 0)
		if err != nil {
			s.log.Errorf("notify new_version for link %d failed: %v", link.ID, err)
			continue
		}
		if sent {
			notified++
		}
	}
	return notified, nil
}

// SweepExpirations is the scheduled expiration pass: bucket approved
// links by valid_until, notify with per-bucket lookback dedupe, and
// auto-renew expired links that have a pending version queued.
// Safe to run repeatedly; the lookback windows and the pending_update
// guard make replays no-ops.
func (s *LifecycleService) SweepExpirations(ctx context.Context) (*dto.SweepSummary, constant.Error) {
	mtx := lock.Sweep()
	if err := mtx.Lock(); err != nil {
		return nil, constant.NewError(constant.CodeLockError)
	}
	defer mtx.Unlock()

	links, err := s.partnerDao.ListApprovedWithExpiry()
	if err != nil {
		return nil, constant.NewError(constant.CodeDBError)
	}

	summary := &dto.SweepSummary{Scanned: len(links)}
	today := time.Now()
	for _, link := range links {
		bucket := sweep.Classify(link.ValidUntil, today)
		if bucket == sweep.BucketNone {
			continue
		}

		if bucket == sweep.BucketExpired && link.AutoRenew && link.PendingUpdate && link.PendingVersionID != nil {
			if err := s.applyPendingVersion(ctx, &link, today); err != nil {
				summary.Errors = append(summary.Errors, fmt.Sprintf("link %d: %v", link.ID, err))
				continue
			}
			summary.Renewed++
			continue
		}

		sent, nerr := s.sink.Emit(link.PartnerID, bucket.NotifyType(),
			expiryTitle(bucket),
			fmt.Sprintf("Contract %d expires on %s.", link.ID, link.ValidUntil.Format("2006-01-02")),
			link.ID, bucket.LookbackWindow())
		if nerr != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("link %d: %v", link.ID, nerr))
			continue
		}
		if sent {
			summary.Notified++
		}
		if bucket == sweep.BucketExpired {
			// no eligible pending version or no auto-renew: the link
			// keeps serving its last rates
			summary.Frozen++
		}
	}

	s.log.Infof("sweep: scanned=%d notified=%d renewed=%d frozen=%d errors=%d",
		summary.Scanned, summary.Notified, summary.Renewed, summary.Frozen, len(summary.Errors))
	return summary, nil
}

// pendingAlreadyQueued reports whether the link already queues exactly
// this version.
func pendingAlreadyQueued(l *mainmodel.PartnerRateLink, versionID uint64) bool {
	return l.PendingUpdate && l.PendingVersionID != nil && *l.PendingVersionID == versionID
}

func expiryTitle(b sweep.Bucket) string {
	switch b {
	case sweep.Bucket30d:
		return "Contract expires within 30 days"
	case sweep.Bucket7d:
		return "Contract expires within 7 days"
	default:
		return "Contract expired"
	}
}

// applyPendingVersion rebinds the link to its queued rate table version,
// bumps the contract version and restarts the validity term.
func (s *LifecycleService) applyPendingVersion(ctx context.Context, link *mainmodel.PartnerRateLink, today time.Time) error {
	var newUntil *time.Time
	if link.ValidFrom != nil && link.ValidUntil != nil {
		term := link.ValidUntil.Sub(*link.ValidFrom)
		u := today.Add(term)
		newUntil = &u
	}
	updates := map[string]interface{}{
		"rate_table_id":      *link.PendingVersionID,
		"version":            link.Version + 1,
		"valid_from":         today,
		"valid_until":        newUntil,
		"pending_update":     false,
		"pending_version_id": nil,
	}
	if err := s.partnerDao.ApplyPendingVersion(link, updates); err != nil {
		return err
	}
	// the link now serves new rates; drop the partner's snapshots in
	// the same call path
	if err := snapshot.InvalidatePartner(ctx, link.PartnerID); err != nil {
		return err
	}
	// dedupe window keeps a same-day second sweep from emitting twice
	_, err := s.sink.Emit(link.PartnerID, constant.NotifyVersionApplied,
		"Contract renewed on new rate version",
		fmt.Sprintf("Contract %d was renewed onto rate table version %d.", link.ID, *link.PendingVersionID),
		link.ID, 24*time.Hour)
	return err
}
