package repository

import (
	"gorm.io/gorm"

	"github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/attendance/service"
)

// GormTxRunner binds both stores to a single DB transaction, closing the
// partial-failure window between the attendance write and the log reconcile.
type GormTxRunner struct {
	DB *gorm.DB
}

func NewTxRunner(db *gorm.DB) *GormTxRunner {
	return &GormTxRunner{DB: db}
}

var _ service.TxRunner = (*GormTxRunner)(nil)

func (r *GormTxRunner) RunInTx(fn func(st service.Stores) error) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return fn(service.Stores{
			Attendance: NewAttendanceRepo(tx),
			ClassLogs:  NewClassLogRepo(tx),
		})
	})
}

// NewService wires the reconciliation engine onto a live DB handle.
func NewService(db *gorm.DB) *service.Service {
	return service.New(service.Stores{
		Attendance: NewAttendanceRepo(db),
		ClassLogs:  NewClassLogRepo(db),
	}, NewTxRunner(db))
}
