package dao

import (
	"gorm.io/gorm"

	"iso-rate-api/internal/dal"
	mainmodel "iso-rate-api/internal/model/main"
)

type RateDao struct{}

func NewRateDao() *RateDao { return &RateDao{} }

func (r *RateDao) GetRateTable(id uint64) (*mainmodel.SupplierRateTable, error) {
	var t mainmodel.SupplierRateTable
	if err := dal.MainDB.Where("id=?", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *RateDao) GetBinding(id uint64) (*mainmodel.CategoryRateBinding, error) {
	var b mainmodel.CategoryRateBinding
	if err := dal.MainDB.Where("id=?", id).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *RateDao) GetCell(rateTableID uint64, brand, modality, channel string) (*mainmodel.RateCell, error) {
	var c mainmodel.RateCell
	err := dal.MainDB.
		Where("rate_table_id=? AND brand=? AND modality=? AND channel=?", rateTableID, brand, modality, channel).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *RateDao) ListCells(rateTableID uint64) ([]mainmodel.RateCell, error) {
	var cells []mainmodel.RateCell
	if err := dal.MainDB.Where("rate_table_id=?", rateTableID).Find(&cells).Error; err != nil {
		return nil, err
	}
	return cells, nil
}

// CreateTableWithCells inserts a rate table and its cells in one tx.
func (r *RateDao) CreateTableWithCells(t *mainmodel.SupplierRateTable, cells []mainmodel.RateCell) error {
	return dal.MainDB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(t).Error; err != nil {
			return err
		}
		for i := range cells {
			cells[i].RateTableID = t.ID
		}
		if len(cells) > 0 {
			if err := tx.Create(&cells).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *RateDao) CreateBinding(b *mainmodel.CategoryRateBinding) error {
	return dal.MainDB.Create(b).Error
}

// TransitionBindingStatus flips a binding's status and appends the
// audit row in one transaction, guarded against concurrent transitions.
func (r *RateDao) TransitionBindingStatus(bindingID uint64, prev, next string, audit *mainmodel.ContractAudit) error {
	return dal.MainDB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&mainmodel.CategoryRateBinding{}).
			Where("id=? AND status=?", bindingID, prev).
			Update("status", next)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Create(audit).Error
	})
}

// ForkVersion flips the current head and inserts the copied successor
// inside one transaction, keeping exactly one is_current per chain.
func (r *RateDao) ForkVersion(parent *mainmodel.SupplierRateTable, next *mainmodel.SupplierRateTable, cells []mainmodel.RateCell) error {
	return dal.MainDB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&mainmodel.SupplierRateTable{}).
			Where("id=? AND is_current=?", parent.ID, true).
			Update("is_current", false)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Create(next).Error; err != nil {
			return err
		}
		for i := range cells {
			cells[i].RateTableID = next.ID
		}
		if len(cells) > 0 {
			if err := tx.Create(&cells).Error; err != nil {
				return err
			}
		}
		// repoint the binding to the new head
		return tx.Model(&mainmodel.CategoryRateBinding{}).
			Where("supplier_id=? AND category_id=?", parent.SupplierID, parent.CategoryID).
			Update("rate_table_id", next.ID).Error
	})
}
