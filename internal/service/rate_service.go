package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"iso-rate-api/internal/cascade"
	"iso-rate-api/internal/constant"
	"iso-rate-api/internal/dao"
	"iso-rate-api/internal/dto"
	"iso-rate-api/internal/idgen"
	"iso-rate-api/internal/logger"
	mainmodel "iso-rate-api/internal/model/main"
	"iso-rate-api/internal/snapshot"
)

type RateService struct {
	rateDao    *dao.RateDao
	partnerDao *dao.PartnerDao
	log        *logrus.Logger
}

func NewRateService() *RateService {
	return &RateService{
		rateDao:    dao.NewRateDao(),
		partnerDao: dao.NewPartnerDao(),
		log:        logger.NewLogger("rates"),
	}
}

// QueryRate answers the baseCost/partnerMargin/finalRate triple for one
// (partner, brand, modality, channel) key, serving from the snapshot
// cache when warm.
func (s *RateService) QueryRate(ctx context.Context, req dto.QueryRateReq) (*dto.RateTriple, constant.Error) {
	if t, ok := snapshot.Get(ctx, req.PartnerID, req.Brand, req.Modality, req.Channel); ok {
		return t, nil
	}

	links, err := s.partnerDao.ListApprovedByPartner(req.PartnerID)
	if err != nil {
		return nil, constant.NewError(constant.CodeDBError)
	}
	if len(links) == 0 {
		return nil, constant.NewError(constant.CodeLinkNotFound)
	}

	// each link serves its own rate-stable table version; first link
	// whose table carries the cell answers
	for _, link := range links {
		cell, err := s.rateDao.GetCell(link.RateTableID, req.Brand, req.Modality, req.Channel)
		if err != nil {
			if dao.IsNotFound(err) {
				continue
			}
			return nil, constant.NewError(constant.CodeDBError)
		}
		t, cerr := s.computeTriple(&link, cell, req.Brand, req.Modality, req.Channel)
		if cerr != nil {
			return nil, cerr
		}
		snapshot.Set(ctx, req.PartnerID, req.Brand, req.Modality, req.Channel, *t)
		return t, nil
	}
	return nil, constant.NewError(constant.CodeCellNotFound)
}

func (s *RateService) computeTriple(link *mainmodel.PartnerRateLink, cell *mainmodel.RateCell, brand, modality, channel string) (*dto.RateTriple, constant.Error) {
	pm, err := s.partnerDao.GetPlatformMargin(link.PartnerID)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, constant.NewError(constant.CodeMarginNotFound)
		}
		return nil, constant.NewError(constant.CodeDBError)
	}

	partnerCell := cascade.Cell{Percent: decimal.Zero, Fixed: decimal.Zero}
	if m, err := s.partnerDao.GetPartnerMargin(link.ID, brand, modality, channel); err == nil {
		partnerCell = cascade.Cell{Percent: m.PercentFee, Fixed: m.FixedFee}
	} else if !dao.IsNotFound(err) {
		return nil, constant.NewError(constant.CodeDBError)
	}

	res := cascade.Compute(
		cascade.Cell{Percent: cell.PercentFee, Fixed: cell.FixedFee},
		cascade.PlatformMargins{Outbank: pm.MarginOutbank, Executive: pm.MarginExecutive, Core: pm.MarginCore},
		partnerCell,
	)

	overridden := false
	if o, err := s.partnerDao.GetOverride(link.ID, brand, modality, channel); err == nil && o.IsActive {
		res = res.WithOverride(o.PercentFee)
		overridden = true
	} else if err != nil && !dao.IsNotFound(err) {
		return nil, constant.NewError(constant.CodeDBError)
	}

	return &dto.RateTriple{
		BaseCostPercent:      res.BaseCost.Percent,
		BaseCostFixed:        res.BaseCost.Fixed,
		PartnerMarginPercent: res.PartnerMargin.Percent,
		PartnerMarginFixed:   res.PartnerMargin.Fixed,
		FinalRatePercent:     res.FinalRate.Percent,
		FinalRateFixed:       res.FinalRate.Fixed,
		Overridden:           overridden,
	}, nil
}

// UpsertPartnerMargin writes one partner margin cell. Rejects percents
// outside [0,100] and any resulting final rate outside [0,100], then
// invalidates the snapshot for the touched cell before returning.
func (s *RateService) UpsertPartnerMargin(ctx context.Context, linkID uint64, req dto.UpsertPartnerMarginReq) constant.Error {
	link, err := s.partnerDao.GetLink(linkID)
	if err != nil {
		if dao.IsNotFound(err) {
			return constant.NewError(constant.CodeLinkNotFound)
		}
		return constant.NewError(constant.CodeDBError)
	}

	percent, perr := decimal.NewFromString(req.PercentFee)
	if perr != nil || !cascade.PercentInRange(percent) {
		return constant.NewError(constant.CodeInvalidMargin)
	}
	fixed := decimal.Zero
	if req.FixedFee != "" {
		if fixed, perr = decimal.NewFromString(req.FixedFee); perr != nil || fixed.IsNegative() {
			return constant.NewError(constant.CodeInvalidMargin)
		}
	}

	cell, err := s.rateDao.GetCell(link.RateTableID, req.Brand, req.Modality, req.Channel)
	if err != nil {
		if dao.IsNotFound(err) {
			return constant.NewError(constant.CodeCellNotFound)
		}
		return constant.NewError(constant.CodeDBError)
	}

	// clamp policy: reject at write time instead of propagating an
	// invalid economic rate
	if pm, err := s.partnerDao.GetPlatformMargin(link.PartnerID); err == nil {
		res := cascade.Compute(
			cascade.Cell{Percent: cell.PercentFee, Fixed: cell.FixedFee},
			cascade.PlatformMargins{Outbank: pm.MarginOutbank, Executive: pm.MarginExecutive, Core: pm.MarginCore},
			cascade.Cell{Percent: percent, Fixed: fixed},
		)
		if !cascade.PercentInRange(res.FinalRate.Percent) {
			return constant.NewError(constant.CodeInvalidRateResult)
		}
	} else if !dao.IsNotFound(err) {
		return constant.NewError(constant.CodeDBError)
	}

	m := &mainmodel.PartnerMargin{
		ID:         idgen.New(),
		LinkID:     linkID,
		Brand:      req.Brand,
		Modality:   req.Modality,
		Channel:    req.Channel,
		PercentFee: percent,
		FixedFee:   fixed,
	}
	if err := s.partnerDao.UpsertPartnerMargin(m); err != nil {
		return constant.NewError(constant.CodeDBError)
	}
	if err := snapshot.InvalidateCell(ctx, link.PartnerID, req.Brand, req.Modality, req.Channel); err != nil {
		s.log.Warnf("snapshot invalidation failed for partner %d cell %s/%s/%s: %v",
			link.PartnerID, req.Brand, req.Modality, req.Channel, err)
		return constant.NewError(constant.CodeCacheError)
	}
	return nil
}

// UpsertPlatformMargin upserts the partner's three platform margins and
// invalidates every snapshot of that partner.
func (s *RateService) UpsertPlatformMargin(ctx context.Context, partnerID uint64, req dto.UpsertPlatformMarginReq) constant.Error {
	parse := func(raw string) (decimal.Decimal, bool) {
		v, err := decimal.NewFromString(raw)
		return v, err == nil && cascade.PercentInRange(v)
	}
	outbank, ok1 := parse(req.MarginOutbank)
	executive, ok2 := parse(req.MarginExecutive)
	core, ok3 := parse(req.MarginCore)
	if !ok1 || !ok2 || !ok3 {
		return constant.NewError(constant.CodeInvalidMargin)
	}

	m := &mainmodel.PlatformMarginConfig{
		ID:              idgen.New(),
		PartnerID:       partnerID,
		MarginOutbank:   outbank,
		MarginExecutive: executive,
		MarginCore:      core,
	}
	if err := s.partnerDao.UpsertPlatformMargin(m); err != nil {
		return constant.NewError(constant.CodeDBError)
	}
	if err := snapshot.InvalidatePartner(ctx, partnerID); err != nil {
		s.log.Warnf("snapshot invalidation failed for partner %d: %v", partnerID, err)
		return constant.NewError(constant.CodeCacheError)
	}
	return nil
}

// UpsertOverride writes a per-cell final-rate override with its
// append-only history entry.
func (s *RateService) UpsertOverride(ctx context.Context, linkID uint64, actor dto.Actor, req dto.UpsertOverrideReq) constant.Error {
	link, err := s.partnerDao.GetLink(linkID)
	if err != nil {
		if dao.IsNotFound(err) {
			return constant.NewError(constant.CodeLinkNotFound)
		}
		return constant.NewError(constant.CodeDBError)
	}
	percent, perr := decimal.NewFromString(req.PercentFee)
	if perr != nil || !cascade.PercentInRange(percent) {
		return constant.NewError(constant.CodeInvalidMargin)
	}

	var prev *decimal.Decimal
	action := mainmodel.OverrideActionCreated
	o, err := s.partnerDao.GetOverride(linkID, req.Brand, req.Modality, req.Channel)
	if err == nil {
		v := o.PercentFee
		prev = &v
		action = mainmodel.OverrideActionUpdated
		o.PercentFee = percent
		o.IsActive = true
	} else if dao.IsNotFound(err) {
		o = &mainmodel.RateOverride{
			ID:         idgen.New(),
			LinkID:     linkID,
			Brand:      req.Brand,
			Modality:   req.Modality,
			Channel:    req.Channel,
			PercentFee: percent,
			IsActive:   true,
		}
	} else {
		return constant.NewError(constant.CodeDBError)
	}

	h := &mainmodel.OverrideHistory{
		ID:        idgen.New(),
		PrevValue: prev,
		NewValue:  &percent,
		Action:    action,
		ActorID:   actor.ID,
	}
	if err := s.partnerDao.SaveOverride(o, h); err != nil {
		return constant.NewError(constant.CodeDBError)
	}
	if err := snapshot.InvalidateCell(ctx, link.PartnerID, req.Brand, req.Modality, req.Channel); err != nil {
		return constant.NewError(constant.CodeCacheError)
	}
	return nil
}

// RevertOverride deactivates an override, appending a REVERTED history
// entry; the cascade result takes over again.
func (s *RateService) RevertOverride(ctx context.Context, linkID uint64, actor dto.Actor, req dto.RevertOverrideReq) constant.Error {
	link, err := s.partnerDao.GetLink(linkID)
	if err != nil {
		if dao.IsNotFound(err) {
			return constant.NewError(constant.CodeLinkNotFound)
		}
		return constant.NewError(constant.CodeDBError)
	}
	o, err := s.partnerDao.GetOverride(linkID, req.Brand, req.Modality, req.Channel)
	if err != nil {
		if dao.IsNotFound(err) {
			return constant.NewError(constant.CodeOverrideNotFound)
		}
		return constant.NewError(constant.CodeDBError)
	}
	prev := o.PercentFee
	o.IsActive = false
	h := &mainmodel.OverrideHistory{
		ID:        idgen.New(),
		PrevValue: &prev,
		NewValue:  nil,
		Action:    mainmodel.OverrideActionReverted,
		ActorID:   actor.ID,
	}
	if err := s.partnerDao.SaveOverride(o, h); err != nil {
		return constant.NewError(constant.CodeDBError)
	}
	if err := snapshot.InvalidateCell(ctx, link.PartnerID, req.Brand, req.Modality, req.Channel); err != nil {
		return constant.NewError(constant.CodeCacheError)
	}
	return nil
}

// ImportCandidates turns untrusted OCR-extracted cells into a draft
// rate table + binding. Invalid cells are reported, valid cells kept;
// nothing is auto-approved.
func (s *RateService) ImportCandidates(actor dto.Actor, req dto.ImportCandidatesReq) (*dto.ImportCandidatesResp, constant.Error) {
	var cells []mainmodel.RateCell
	var rejected []string
	seen := map[string]bool{}
	for i, c := range req.Cells {
		key := c.Brand + "/" + c.Modality + "/" + c.Channel
		if c.Brand == "" || c.Modality == "" || c.Channel == "" {
			rejected = append(rejected, fmt.Sprintf("cell %d: missing key fields", i))
			continue
		}
		if seen[key] {
			rejected = append(rejected, fmt.Sprintf("cell %d: duplicate key %s", i, key))
			continue
		}
		percent, err := decimal.NewFromString(c.PercentFee)
		if err != nil || !cascade.PercentInRange(percent) {
			rejected = append(rejected, fmt.Sprintf("cell %d (%s): bad percent %q", i, key, c.PercentFee))
			continue
		}
		fixed := decimal.Zero
		if c.FixedFee != "" {
			if fixed, err = decimal.NewFromString(c.FixedFee); err != nil || fixed.IsNegative() {
				rejected = append(rejected, fmt.Sprintf("cell %d (%s): bad fixed fee %q", i, key, c.FixedFee))
				continue
			}
		}
		seen[key] = true
		cells = append(cells, mainmodel.RateCell{
			ID:         idgen.New(),
			Brand:      c.Brand,
			Modality:   c.Modality,
			Channel:    c.Channel,
			PercentFee: percent,
			FixedFee:   fixed,
		})
	}
	if len(cells) == 0 {
		return nil, constant.NewErrorf(constant.CodeInvalidCandidate, "no valid cells among %d candidates", len(req.Cells))
	}

	t := &mainmodel.SupplierRateTable{
		ID:         idgen.New(),
		SupplierID: req.SupplierID,
		CategoryID: req.CategoryID,
		Version:    1,
		IsCurrent:  true,
		CreatedBy:  actor.ID,
	}
	if err := s.rateDao.CreateTableWithCells(t, cells); err != nil {
		return nil, constant.NewError(constant.CodeDBError)
	}
	tableID := t.ID
	b := &mainmodel.CategoryRateBinding{
		ID:          idgen.New(),
		SupplierID:  req.SupplierID,
		CategoryID:  req.CategoryID,
		RateTableID: &tableID,
		Status:      constant.StatusDraft,
	}
	if err := s.rateDao.CreateBinding(b); err != nil {
		return nil, constant.NewError(constant.CodeDBError)
	}

	s.log.Infof("imported %d/%d candidate cells into draft table %d (supplier %d, category %d)",
		len(cells), len(req.Cells), t.ID, req.SupplierID, req.CategoryID)

	return &dto.ImportCandidatesResp{
		BindingID:   b.ID,
		RateTableID: t.ID,
		Accepted:    len(cells),
		Rejected:    rejected,
	}, nil
}
