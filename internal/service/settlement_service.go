package service

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"iso-rate-api/internal/config"
	"iso-rate-api/internal/constant"
	"iso-rate-api/internal/dal"
	"iso-rate-api/internal/dao"
	"iso-rate-api/internal/dto"
	"iso-rate-api/internal/idgen"
	"iso-rate-api/internal/lock"
	"iso-rate-api/internal/logger"
	mainmodel "iso-rate-api/internal/model/main"
	"iso-rate-api/internal/notify"
	"iso-rate-api/internal/settle"
)

type SettlementService struct {
	partnerDao *dao.PartnerDao
	settleDao  *dao.SettlementDao
	txnDao     *dao.TxnDao
	sink       *notify.Sink
	log        *logrus.Logger
}

func NewSettlementService() *SettlementService {
	return &SettlementService{
		partnerDao: dao.NewPartnerDao(),
		settleDao:  dao.NewSettlementDao(),
		txnDao:     dao.NewTxnDao(),
		sink:       notify.NewSink(),
		log:        logger.NewLogger("settlement"),
	}
}

// Consolidate builds one MonthlySettlement per active (user, partner)
// commission link for the period. Pairs are processed independently:
// one failing pair lands in errors[] and the batch continues. The
// per-period redsync mutex serializes concurrent triggers; the unique
// key on (user, partner, month, year) is the idempotency backstop when
// the lock is bypassed or expired.
func (s *SettlementService) Consolidate(month, year int) (*dto.ConsolidateSummary, constant.Error) {
	if !settle.ValidPeriod(month, year) {
		return nil, constant.NewError(constant.CodeInvalidPeriod)
	}

	mtx := lock.Consolidation(month, year)
	if err := mtx.Lock(); err != nil {
		return nil, constant.NewError(constant.CodeLockError)
	}
	defer mtx.Unlock()

	links, err := s.partnerDao.ListCommissionLinks()
	if err != nil {
		return nil, constant.NewError(constant.CodeDBError)
	}

	summary := &dto.ConsolidateSummary{}
	for _, link := range links {
		status, perr := s.consolidatePair(link, month, year)
		if perr != nil {
			summary.Errors = append(summary.Errors,
				fmt.Sprintf("user %d partner %d: %v", link.UserID, link.PartnerID, perr))
			continue
		}
		switch status {
		case constant.SettleStatusPendingInvoice:
			summary.Created++
		case constant.SettleStatusAccumulated:
			summary.Accumulated++
		default:
			summary.Skipped++
		}
	}

	s.log.Infof("consolidate %02d/%d: created=%d accumulated=%d skipped=%d errors=%d",
		month, year, summary.Created, summary.Accumulated, summary.Skipped, len(summary.Errors))
	return summary, nil
}

// consolidatePair runs steps 1-8 for one (user, partner). The existence
// pre-check, the carry-forward flips and the insert share one
// transaction so a crash can never drop an accumulated balance.
// Returns the new settlement's status, or "" when skipped.
func (s *SettlementService) consolidatePair(link mainmodel.UserCommissionLink, month, year int) (string, error) {
	// pre-check outside the tx is an optimization only
	exists, err := s.settleDao.Exists(link.UserID, link.PartnerID, month, year)
	if err != nil {
		return "", err
	}
	if exists {
		return "", nil
	}

	percent, err := s.commissionPercent(link)
	if err != nil {
		return "", err
	}

	from, to := settle.PeriodRange(month, year)
	count, sum, err := s.txnDao.Aggregate(link.PartnerID, from, to)
	if err != nil {
		return "", constant.NewError(constant.CodeTxnSourceError)
	}

	value := settle.Commission(sum, percent)
	invoiceDeadline, paymentDeadline := settle.Deadlines(month, year,
		config.C.Settlement.InvoiceDeadlineDay, config.C.Settlement.PaymentDeadlineDay)
	minimum, _ := decimal.NewFromString(config.C.Settlement.MinimumPayout)

	var status string
	txErr := dal.MainDB.Transaction(func(tx *gorm.DB) error {
		prior, err := s.settleDao.ListAccumulated(tx, link.UserID, link.PartnerID, month, year)
		if err != nil {
			return err
		}
		balances := make([]settle.Balance, 0, len(prior))
		for _, p := range prior {
			balances = append(balances, settle.Balance{ID: p.ID, Month: p.Month, Year: p.Year, Value: p.CommissionValue})
		}
		total, st, ids := settle.Fold(value, settle.PriorBalances(balances, month, year), minimum)
		// each prior balance folds into a payout exactly once
		if err := s.settleDao.CarryForward(tx, ids); err != nil {
			return err
		}

		status = st
		return s.settleDao.Create(tx, &mainmodel.MonthlySettlement{
			ID:                idgen.New(),
			UserID:            link.UserID,
			PartnerID:         link.PartnerID,
			Month:             month,
			Year:              year,
			TotalTransactions: count,
			TotalAmount:       sum,
			CommissionPercent: percent,
			CommissionValue:   total,
			Status:            status,
			InvoiceDeadline:   invoiceDeadline,
			PaymentDeadline:   paymentDeadline,
		})
	})
	if txErr != nil {
		if dao.IsDuplicateKey(txErr) {
			// a concurrent run won the insert: already done
			return "", nil
		}
		return "", txErr
	}

	if status == constant.SettleStatusPendingInvoice {
		_, _ = s.sink.Emit(link.PartnerID, constant.NotifySettlement,
			"Monthly settlement ready for invoicing",
			fmt.Sprintf("Commission settlement for %02d/%d is ready.", month, year),
			link.UserID, 0)
	}
	return status, nil
}

// commissionPercent resolves the user's cut from the partner's platform
// margin config by commission category. A partner with no approved rate
// links earns nothing yet, so the percent is zero.
func (s *SettlementService) commissionPercent(link mainmodel.UserCommissionLink) (decimal.Decimal, error) {
	approved, err := s.partnerDao.HasApprovedLink(link.PartnerID)
	if err != nil {
		return decimal.Zero, err
	}
	if !approved {
		return decimal.Zero, nil
	}
	pm, err := s.partnerDao.GetPlatformMargin(link.PartnerID)
	if err != nil {
		if dao.IsNotFound(err) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}
	switch link.Category {
	case constant.CommissionExecutive:
		return pm.MarginExecutive, nil
	case constant.CommissionCore:
		return pm.MarginCore, nil
	default:
		return decimal.Zero, constant.NewErrorf(constant.CodeInvalidCategory,
			"unknown commission category %q", link.Category)
	}
}

// ProcessAccumulation flips pending_invoice settlements of the period
// that stayed un-invoiced past their deadline into accumulated, turning
// the payable into a deferred balance the next consolidate run picks
// up. Pure status transition, no rows created or deleted.
func (s *SettlementService) ProcessAccumulation(month, year int) (*dto.AccumulationSummary, constant.Error) {
	if !settle.ValidPeriod(month, year) {
		return nil, constant.NewError(constant.CodeInvalidPeriod)
	}

	mtx := lock.Accumulation(month, year)
	if err := mtx.Lock(); err != nil {
		return nil, constant.NewError(constant.CodeLockError)
	}
	defer mtx.Unlock()

	rows, err := s.settleDao.ListPendingPastDeadline(month, year)
	if err != nil {
		return nil, constant.NewError(constant.CodeDBError)
	}

	summary := &dto.AccumulationSummary{}
	for _, row := range rows {
		flipped, err := s.settleDao.FlipToAccumulated(row.ID)
		if err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("settlement %d: %v", row.ID, err))
			continue
		}
		if flipped {
			summary.Flipped++
		}
	}

	s.log.Infof("processAccumulation %02d/%d: flipped=%d errors=%d",
		month, year, summary.Flipped, len(summary.Errors))
	return summary, nil
}
